package game

import (
	"fmt"

	"github.com/JSilva6/PokerDuel/internal/log"
)

// PlaceCardFaceDown moves a J, Q, K or A from the current player's hand into
// their face-down zone for later activation.
func (d *Duel) PlaceCardFaceDown(cardID string) error {
	const command = "place face-down"
	p, err := d.state.currentPlayer()
	if err != nil {
		return d.reject(command, err)
	}
	i := indexOfCard(p.Hand, cardID)
	if i < 0 {
		return d.reject(command, fmt.Errorf("%w: card %s not in hand", ErrNotFound, cardID))
	}
	if r := p.Hand[i].Rank; !r.IsFace() {
		return d.reject(command, fmt.Errorf("%w: card rank %s cannot be placed face-down", ErrEngine, r))
	}

	card, _ := p.RemoveFromHand(cardID)
	p.FaceDownZone = append(p.FaceDownZone, card)

	turn, player := d.turn()
	d.log(log.NewSetFaceDownEvent(turn, player, card.ID, len(p.FaceDownZone)))
	return nil
}

// ActivateFaceDownCard activates a card from the current player's face-down
// zone. targetID names the card a King recovers or a Queen discards and is
// ignored by the other ranks.
func (d *Duel) ActivateFaceDownCard(cardID, targetID string) error {
	const command = "activate face-down"
	card, err := d.faceDownCard(cardID)
	if err != nil {
		return d.reject(command, err)
	}
	eff, err := faceDownEffectFor(card.Rank, targetID)
	if err != nil {
		return d.reject(command, err)
	}
	return d.activate(command, card, eff)
}

// ActivateFaceDown is ActivateFaceDownCard with the effect spelled out. The
// effect's rank must match the face-down card.
func (d *Duel) ActivateFaceDown(cardID string, eff FaceDownEffect) error {
	const command = "activate face-down"
	card, err := d.faceDownCard(cardID)
	if err != nil {
		return d.reject(command, err)
	}
	if eff == nil || eff.Rank() != card.Rank {
		return d.reject(command, fmt.Errorf("%w: %s needs a %s effect", ErrRequestAction, card, card.Rank))
	}
	return d.activate(command, card, eff)
}

func (d *Duel) faceDownCard(cardID string) (Card, error) {
	p, err := d.state.currentPlayer()
	if err != nil {
		return Card{}, err
	}
	i := indexOfCard(p.FaceDownZone, cardID)
	if i < 0 {
		return Card{}, fmt.Errorf("%w: card %s not in face-down zone", ErrNotFound, cardID)
	}
	return p.FaceDownZone[i], nil
}

// activate checks eff's preconditions, then removes card from the face-down
// zone, resolves the effect and discards card.
func (d *Duel) activate(command string, card Card, eff FaceDownEffect) error {
	p, err := d.state.currentPlayer()
	if err != nil {
		return d.reject(command, err)
	}
	if err := eff.canActivate(d, p); err != nil {
		return d.reject(command, err)
	}

	p.RemoveFromFaceDown(card.ID)
	turn, player := d.turn()
	d.log(log.NewActivateEvent(turn, player, card.ID, card.String(), eff.Describe()))

	eff.resolve(d, p)

	d.state.discard(card)
	d.log(log.NewDiscardEvent(turn, player, card.ID, card.String(), "activated"))
	return nil
}

// ApplySuitEffect discards a same-suit pair from the current player's hand
// and applies that suit's effect. targetID names the card clubs discards and
// is ignored by the other suits.
func (d *Duel) ApplySuitEffect(cardIDs []string, targetID string) error {
	const command = "suit effect"
	if len(cardIDs) != 2 {
		return d.reject(command, fmt.Errorf("%w: a suit effect needs exactly 2 cards, got %d", ErrRequestAction, len(cardIDs)))
	}
	pair := [2]string{cardIDs[0], cardIDs[1]}
	suit, err := d.pairSuit(pair)
	if err != nil {
		return d.reject(command, err)
	}
	eff, err := suitEffectFor(suit, targetID)
	if err != nil {
		return d.reject(command, err)
	}
	return d.applySuit(command, pair, eff)
}

// ApplySuit is ApplySuitEffect with the effect spelled out. The effect's suit
// must match the pair.
func (d *Duel) ApplySuit(pair [2]string, eff SuitEffect) error {
	const command = "suit effect"
	suit, err := d.pairSuit(pair)
	if err != nil {
		return d.reject(command, err)
	}
	if eff == nil || eff.Suit() != suit {
		return d.reject(command, fmt.Errorf("%w: a %s pair needs a %s effect", ErrInvalidCombination, suit, suit))
	}
	return d.applySuit(command, pair, eff)
}

// pairSuit returns the shared suit of two distinct cards in the current
// player's hand.
func (d *Duel) pairSuit(pair [2]string) (Suit, error) {
	p, err := d.state.currentPlayer()
	if err != nil {
		return 0, err
	}
	if pair[0] == pair[1] {
		return 0, fmt.Errorf("%w: card %s not in hand", ErrNotFound, pair[1])
	}
	var cards [2]Card
	for n, id := range pair {
		i := indexOfCard(p.Hand, id)
		if i < 0 {
			return 0, fmt.Errorf("%w: card %s not in hand", ErrNotFound, id)
		}
		cards[n] = p.Hand[i]
	}
	if cards[0].Suit != cards[1].Suit {
		return 0, fmt.Errorf("%w: %s and %s are not the same suit", ErrInvalidCombination, cards[0], cards[1])
	}
	return cards[0].Suit, nil
}

func (d *Duel) applySuit(command string, pair [2]string, eff SuitEffect) error {
	p, err := d.state.currentPlayer()
	if err != nil {
		return d.reject(command, err)
	}
	if err := eff.canApply(d, p, pair); err != nil {
		return d.reject(command, err)
	}

	cards, _ := extractFromHand(p, pair[:])
	d.state.discard(cards...)

	turn, player := d.turn()
	d.log(log.NewSuitEffectEvent(turn, player, eff.Suit().String(), labels(cards)))
	eff.apply(d, p)
	return nil
}
