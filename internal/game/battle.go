package game

import (
	"fmt"

	"github.com/JSilva6/PokerDuel/internal/log"
)

// Attack moves an exact combo from the current player's hand to the attack zone.
func (d *Duel) Attack(cardIDs []string) error {
	return d.declare("attack", cardIDs, &d.state.AttackZone)
}

// Defend moves an exact combo from the current player's hand to the defense zone.
func (d *Duel) Defend(cardIDs []string) error {
	return d.declare("defend", cardIDs, &d.state.DefenseZone)
}

// declare validates a combo submission and places it in zone. Any earlier
// submission still sitting in zone goes to the discard pile.
func (d *Duel) declare(command string, cardIDs []string, zone *[]Card) error {
	if len(cardIDs) > d.rules.MaxComboCards {
		return d.reject(command, fmt.Errorf("%w: up to %d cards allowed for %s", ErrRequestAction, d.rules.MaxComboCards, command))
	}
	p, err := d.state.currentPlayer()
	if err != nil {
		return d.reject(command, err)
	}

	before := cloneCards(p.Hand)
	cards, err := extractFromHand(p, cardIDs)
	if err != nil {
		return d.reject(command, err)
	}
	if !IsExactCombo(cards) {
		p.Hand = before
		return d.reject(command, fmt.Errorf("%w: selected cards do not form an exact combination", ErrInvalidCombination))
	}

	turn, player := d.turn()
	for _, c := range *zone {
		d.state.discard(c)
		d.log(log.NewDiscardEvent(turn, player, c.ID, c.String(), "replaced "+command))
	}
	*zone = cards

	rank := Classify(cards)
	if zone == &d.state.AttackZone {
		d.log(log.NewAttackDeclareEvent(turn, player, labels(cards), rank.String(), rank.Value()))
	} else {
		d.log(log.NewDefenseDeclareEvent(turn, player, labels(cards), rank.String(), rank.Value()))
	}
	return nil
}

// ResolveDuel scores the attack zone (plus the current player's attack bonus)
// against the defense zone and deals the difference to the opponent, never
// taking life below 0. Both zones are discarded and the bonus resets.
// It returns the damage dealt. Turn order and match end are left to the caller.
func (d *Duel) ResolveDuel() (int, error) {
	const command = "resolve duel"
	attacker, err := d.state.currentPlayer()
	if err != nil {
		return 0, d.reject(command, err)
	}
	defender, err := d.state.opponent()
	if err != nil {
		return 0, d.reject(command, err)
	}

	gs := d.state
	attack := ComboValue(gs.AttackZone) + attacker.AttackBonus
	defense := ComboValue(gs.DefenseZone)
	damage := max(0, attack-defense)

	turn, player := d.turn()
	d.log(log.NewDuelResolveEvent(turn, player, attack, defense, damage))

	if damage > 0 {
		old := defender.Life
		defender.Life = max(0, defender.Life-damage)
		d.log(log.NewLifeChangeEvent(turn, string(gs.CurrentPlayer.Other()), old, defender.Life, "duel damage"))
	}

	for _, c := range gs.AttackZone {
		d.log(log.NewDiscardEvent(turn, player, c.ID, c.String(), "duel resolved"))
	}
	for _, c := range gs.DefenseZone {
		d.log(log.NewDiscardEvent(turn, player, c.ID, c.String(), "duel resolved"))
	}
	gs.discard(gs.AttackZone...)
	gs.discard(gs.DefenseZone...)
	gs.AttackZone = nil
	gs.DefenseZone = nil

	if attacker.AttackBonus != 0 {
		d.log(log.NewAttackBonusEvent(turn, player, attacker.AttackBonus, 0))
		attacker.AttackBonus = 0
	}

	if out := gs.Outcome(); out.Over {
		d.log(log.NewWinEvent(turn, string(out.Winner), out.Result))
	}
	return damage, nil
}

// extractFromHand removes the named cards from p's hand in the order given.
// Every id is located first, so a missing or repeated id removes nothing.
func extractFromHand(p *Player, ids []string) ([]Card, error) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] || !p.HasInHand(id) {
			return nil, fmt.Errorf("%w: card %s not in hand", ErrNotFound, id)
		}
		seen[id] = true
	}
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		c, _ := p.RemoveFromHand(id)
		cards = append(cards, c)
	}
	return cards, nil
}
