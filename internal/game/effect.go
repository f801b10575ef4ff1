package game

import (
	"fmt"

	"github.com/JSilva6/PokerDuel/internal/log"
)

// FaceDownEffect is the effect of a face-down J, Q, K or A. The variant set
// is closed: JackEffect, AceEffect, KingEffect and QueenEffect.
//
// canActivate checks every precondition without touching state. resolve
// applies the effect and must not fail once canActivate has passed.
type FaceDownEffect interface {
	Rank() Rank
	Describe() string
	canActivate(d *Duel, p *Player) error
	resolve(d *Duel, p *Player)
}

// JackEffect raises the current player's attack bonus for the next duel.
type JackEffect struct{}

// AceEffect discards the current player's hand and redraws the same count.
type AceEffect struct{}

// KingEffect returns Target from the discard pile to the current player's hand.
type KingEffect struct {
	Target string
}

// QueenEffect discards Target from the opponent's hand.
type QueenEffect struct {
	Target string
}

// faceDownEffectFor builds the effect for a face-down card of the given rank.
// Targeted ranks require a non-empty targetID.
func faceDownEffectFor(rank Rank, targetID string) (FaceDownEffect, error) {
	switch rank {
	case RankJack:
		return JackEffect{}, nil
	case RankAce:
		return AceEffect{}, nil
	case RankKing:
		if targetID == "" {
			return nil, fmt.Errorf("%w: King requires a card from the discard pile", ErrRequestAction)
		}
		return KingEffect{Target: targetID}, nil
	case RankQueen:
		if targetID == "" {
			return nil, fmt.Errorf("%w: Queen requires a card from the opponent's hand", ErrRequestAction)
		}
		return QueenEffect{Target: targetID}, nil
	}
	return nil, fmt.Errorf("%w: effect for rank %s not implemented", ErrEngine, rank)
}

func (JackEffect) Rank() Rank { return RankJack }
func (e JackEffect) Describe() string {
	return "attack bonus"
}
func (JackEffect) canActivate(*Duel, *Player) error { return nil }
func (JackEffect) resolve(d *Duel, p *Player) {
	turn, player := d.turn()
	old := p.AttackBonus
	p.AttackBonus += d.rules.JackBonus
	d.log(log.NewAttackBonusEvent(turn, player, old, p.AttackBonus))
}

func (AceEffect) Rank() Rank { return RankAce }
func (AceEffect) Describe() string {
	return "redraw hand"
}
func (AceEffect) canActivate(d *Duel, _ *Player) error {
	if len(d.state.Deck) == 0 {
		return fmt.Errorf("%w: Ace needs cards in the deck", ErrDeckEmpty)
	}
	return nil
}
func (AceEffect) resolve(d *Duel, p *Player) {
	turn, player := d.turn()
	hand := p.Hand
	p.Hand = nil
	for _, c := range hand {
		d.log(log.NewDiscardEvent(turn, player, c.ID, c.String(), "Ace redraw"))
	}
	d.state.discard(hand...)
	for range hand {
		c, ok := d.state.drawInto(p)
		if !ok {
			break
		}
		d.log(log.NewDrawEvent(turn, player, c.ID, c.String()))
	}
}

func (KingEffect) Rank() Rank { return RankKing }
func (e KingEffect) Describe() string {
	return "recover " + e.Target
}
func (e KingEffect) canActivate(d *Duel, _ *Player) error {
	if e.Target == "" {
		return fmt.Errorf("%w: King requires a card to recover", ErrRequestAction)
	}
	if len(d.state.DiscardPile) == 0 {
		return fmt.Errorf("%w: discard pile is empty", ErrNotFound)
	}
	if indexOfCard(d.state.DiscardPile, e.Target) < 0 {
		return fmt.Errorf("%w: card %s not in discard pile", ErrNotFound, e.Target)
	}
	return nil
}
func (e KingEffect) resolve(d *Duel, p *Player) {
	var c Card
	d.state.DiscardPile, c, _ = takeCard(d.state.DiscardPile, e.Target)
	p.Hand = append(p.Hand, c)
	turn, player := d.turn()
	d.log(log.NewAddToHandEvent(turn, player, c.ID, c.String(), "discard pile"))
}

func (QueenEffect) Rank() Rank { return RankQueen }
func (e QueenEffect) Describe() string {
	return "discard " + e.Target + " from opponent"
}
func (e QueenEffect) canActivate(d *Duel, _ *Player) error {
	if e.Target == "" {
		return fmt.Errorf("%w: Queen requires a card to discard", ErrRequestAction)
	}
	opp, err := d.state.opponent()
	if err != nil {
		return err
	}
	if len(opp.Hand) == 0 {
		return fmt.Errorf("%w: opponent's hand is empty", ErrNotFound)
	}
	if !opp.HasInHand(e.Target) {
		return fmt.Errorf("%w: card %s not in opponent's hand", ErrNotFound, e.Target)
	}
	return nil
}
func (e QueenEffect) resolve(d *Duel, _ *Player) {
	opp, _ := d.state.opponent()
	c, _ := opp.RemoveFromHand(e.Target)
	d.state.discard(c)
	turn, _ := d.turn()
	d.log(log.NewDiscardEvent(turn, string(d.state.CurrentPlayer.Other()), c.ID, c.String(), "Queen"))
}

// SuitEffect is the effect of discarding a same-suit pair. The variant set is
// closed: HeartsEffect, DiamondsEffect, SpadesEffect and ClubsEffect.
type SuitEffect interface {
	Suit() Suit
	Describe() string
	canApply(d *Duel, p *Player, pair [2]string) error
	apply(d *Duel, p *Player)
}

// HeartsEffect heals the current player.
type HeartsEffect struct{}

// DiamondsEffect draws cards for the current player while the deck lasts.
type DiamondsEffect struct{}

// SpadesEffect damages both players, never below 1 life.
type SpadesEffect struct{}

// ClubsEffect discards Target from the current player's own hand.
type ClubsEffect struct {
	Target string
}

// suitEffectFor builds the effect for a pair of the given suit. Clubs
// requires a non-empty targetID.
func suitEffectFor(s Suit, targetID string) (SuitEffect, error) {
	switch s {
	case SuitHearts:
		return HeartsEffect{}, nil
	case SuitDiamonds:
		return DiamondsEffect{}, nil
	case SuitSpades:
		return SpadesEffect{}, nil
	case SuitClubs:
		if targetID == "" {
			return nil, fmt.Errorf("%w: clubs requires a card to discard", ErrRequestAction)
		}
		return ClubsEffect{Target: targetID}, nil
	}
	return nil, fmt.Errorf("%w: effect for suit %s not implemented", ErrEngine, s)
}

func (HeartsEffect) Suit() Suit       { return SuitHearts }
func (HeartsEffect) Describe() string { return "heal" }
func (HeartsEffect) canApply(*Duel, *Player, [2]string) error {
	return nil
}
func (HeartsEffect) apply(d *Duel, p *Player) {
	turn, player := d.turn()
	old := p.Life
	p.Life += d.rules.HeartsHeal
	d.log(log.NewLifeChangeEvent(turn, player, old, p.Life, "hearts"))
}

func (DiamondsEffect) Suit() Suit       { return SuitDiamonds }
func (DiamondsEffect) Describe() string { return "draw" }
func (DiamondsEffect) canApply(*Duel, *Player, [2]string) error {
	return nil
}
func (DiamondsEffect) apply(d *Duel, p *Player) {
	turn, player := d.turn()
	for i := 0; i < d.rules.DiamondsDraw; i++ {
		c, ok := d.state.drawInto(p)
		if !ok {
			return
		}
		d.log(log.NewDrawEvent(turn, player, c.ID, c.String()))
	}
}

func (SpadesEffect) Suit() Suit       { return SuitSpades }
func (SpadesEffect) Describe() string { return "damage both players" }
func (SpadesEffect) canApply(*Duel, *Player, [2]string) error {
	return nil
}
func (SpadesEffect) apply(d *Duel, _ *Player) {
	turn, _ := d.turn()
	for _, id := range PlayerIDs {
		p := d.state.Player(id)
		old := p.Life
		p.Life = max(1, p.Life-d.rules.SpadesDamage)
		if p.Life != old {
			d.log(log.NewLifeChangeEvent(turn, string(id), old, p.Life, "spades"))
		}
	}
}

func (ClubsEffect) Suit() Suit { return SuitClubs }
func (e ClubsEffect) Describe() string {
	return "discard " + e.Target
}
func (e ClubsEffect) canApply(_ *Duel, p *Player, pair [2]string) error {
	if e.Target == "" {
		return fmt.Errorf("%w: clubs requires a card to discard", ErrRequestAction)
	}
	if e.Target == pair[0] || e.Target == pair[1] || !p.HasInHand(e.Target) {
		return fmt.Errorf("%w: card %s not in hand", ErrNotFound, e.Target)
	}
	return nil
}
func (e ClubsEffect) apply(d *Duel, p *Player) {
	c, _ := p.RemoveFromHand(e.Target)
	d.state.discard(c)
	turn, player := d.turn()
	d.log(log.NewDiscardEvent(turn, player, c.ID, c.String(), "clubs"))
}
