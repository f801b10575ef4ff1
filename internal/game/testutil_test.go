package game

import (
	"testing"

	"github.com/JSilva6/PokerDuel/internal/log"
)

// newTestDuel creates an initialized duel over an unshuffled deck with the
// given cards forced to the top, so the deal is fully predictable. Dealing
// alternates player1, player2, so top[0] goes to player1, top[1] to player2
// and so on.
func newTestDuel(t *testing.T, top ...string) (*Duel, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	d, err := NewDuel(DuelConfig{Logger: logger, Seed: 1, NoShuffle: true, TopCards: top})
	if err != nil {
		t.Fatalf("NewDuel: %v", err)
	}
	d.Initialize()
	return d, logger
}

// card resolves a card id, failing the test on a typo.
func card(t *testing.T, id string) Card {
	t.Helper()
	c, ok := ParseCardID(id)
	if !ok {
		t.Fatalf("bad card id %q", id)
	}
	return c
}

func cards(t *testing.T, ids ...string) []Card {
	t.Helper()
	out := make([]Card, len(ids))
	for i, id := range ids {
		out[i] = card(t, id)
	}
	return out
}

func zonePtrs(gs *GameState) []*[]Card {
	return []*[]Card{
		&gs.Deck, &gs.DiscardPile,
		&gs.Central.FaceDown, &gs.Central.Revealed,
		&gs.AttackZone, &gs.DefenseZone,
		&gs.Players[0].Hand, &gs.Players[0].FaceDownZone,
		&gs.Players[1].Hand, &gs.Players[1].FaceDownZone,
	}
}

// moveCards pulls each card from whatever zone holds it and appends it to
// dst. Conservation is preserved, so tests can stage any position.
func moveCards(t *testing.T, d *Duel, dst *[]Card, ids ...string) {
	t.Helper()
	for _, id := range ids {
		found := false
		for _, z := range zonePtrs(d.state) {
			var c Card
			var ok bool
			if *z, c, ok = takeCard(*z, id); ok {
				*dst = append(*dst, c)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("card %s is in no zone", id)
		}
	}
}

// setHand replaces a player's hand with exactly ids. The old hand goes to the
// bottom of the deck.
func setHand(t *testing.T, d *Duel, pid PlayerID, ids ...string) {
	t.Helper()
	p := d.state.Player(pid)
	old := p.Hand
	p.Hand = nil
	d.state.Deck = append(d.state.Deck, old...)
	moveCards(t, d, &p.Hand, ids...)
}

// emptyDeck moves the whole deck to the discard pile.
func emptyDeck(d *Duel) {
	d.state.DiscardPile = append(d.state.DiscardPile, d.state.Deck...)
	d.state.Deck = nil
}

func handIDs(p *Player) []string {
	return cardIDs(p.Hand)
}

func cardIDs(cs []Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assertConserved(t *testing.T, d *Duel) {
	t.Helper()
	if err := d.state.CheckConservation(); err != nil {
		t.Fatalf("%v", err)
	}
}
