package game

import (
	"fmt"

	"github.com/JSilva6/PokerDuel/internal/log"
)

// CanDrawFromDeck checks if the deck has cards.
func (d *Duel) CanDrawFromDeck() bool {
	return len(d.state.Deck) > 0
}

// CanDrawFromCenter checks if the center has revealed cards.
func (d *Duel) CanDrawFromCenter() bool {
	return len(d.state.Central.Revealed) > 0
}

// CanRevealCentralCard checks if the center has face-down cards.
func (d *Duel) CanRevealCentralCard() bool {
	return len(d.state.Central.FaceDown) > 0
}

// DrawFromDeck moves the top deck card into the current player's hand.
func (d *Duel) DrawFromDeck() (Card, error) {
	const command = "draw from deck"
	p, err := d.state.currentPlayer()
	if err != nil {
		return Card{}, d.reject(command, err)
	}
	card, ok := d.state.drawInto(p)
	if !ok {
		return Card{}, d.reject(command, fmt.Errorf("%w: cannot draw", ErrDeckEmpty))
	}
	turn, player := d.turn()
	d.log(log.NewDrawEvent(turn, player, card.ID, card.String()))
	return card, nil
}

// DrawFromCenter moves the oldest revealed central card into the current
// player's hand.
func (d *Duel) DrawFromCenter() (Card, error) {
	const command = "draw from center"
	p, err := d.state.currentPlayer()
	if err != nil {
		return Card{}, d.reject(command, err)
	}
	if !d.CanDrawFromCenter() {
		return Card{}, d.reject(command, fmt.Errorf("%w: no revealed central cards to draw", ErrNotFound))
	}
	card := d.state.Central.Revealed[0]
	d.state.Central.Revealed = d.state.Central.Revealed[1:]
	p.Hand = append(p.Hand, card)

	turn, player := d.turn()
	d.log(log.NewDrawCenterEvent(turn, player, card.ID, card.String()))
	return card, nil
}

// RevealCentralCard turns a uniformly random face-down central card face-up
// and queues it for drawing. Reveal order is random; draw order is FIFO.
func (d *Duel) RevealCentralCard() (Card, error) {
	const command = "reveal central card"
	if !d.CanRevealCentralCard() {
		return Card{}, d.reject(command, fmt.Errorf("%w: no face-down central cards to reveal", ErrNotFound))
	}
	c := &d.state.Central
	idx := d.rng.Intn(len(c.FaceDown))
	var card Card
	c.FaceDown, card, _ = takeCard(c.FaceDown, c.FaceDown[idx].ID)
	c.Revealed = append(c.Revealed, card)

	turn, player := d.turn()
	d.log(log.NewRevealEvent(turn, player, card.ID, card.String()))
	return card, nil
}
