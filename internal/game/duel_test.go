package game

import (
	"errors"
	"reflect"
	"testing"

	"github.com/JSilva6/PokerDuel/internal/log"
)

// TestInitializeStructure: a fresh deal has the standard shape regardless of shuffle.
func TestInitializeStructure(t *testing.T) {
	d, err := NewDuel(DuelConfig{Seed: 42})
	if err != nil {
		t.Fatalf("NewDuel: %v", err)
	}
	gs := d.Initialize()

	for _, id := range PlayerIDs {
		p := gs.Player(id)
		if len(p.Hand) != 7 {
			t.Errorf("%s: expected 7 cards in hand, got %d", id, len(p.Hand))
		}
		if len(p.FaceDownZone) != 0 {
			t.Errorf("%s: expected empty face-down zone, got %d", id, len(p.FaceDownZone))
		}
		if p.Life != 10 || p.AttackBonus != 0 {
			t.Errorf("%s: expected life 10 bonus 0, got life %d bonus %d", id, p.Life, p.AttackBonus)
		}
	}
	if len(gs.Central.FaceDown) != 7 {
		t.Errorf("Expected 7 face-down central cards, got %d", len(gs.Central.FaceDown))
	}
	if len(gs.Central.Revealed) != 0 {
		t.Errorf("Expected no revealed central cards, got %d", len(gs.Central.Revealed))
	}
	if len(gs.Deck) != 31 {
		t.Errorf("Expected 31 cards in deck, got %d", len(gs.Deck))
	}
	if gs.CurrentPlayer != Player1 || gs.TurnCount != 0 {
		t.Errorf("Expected player1 on turn 0, got %s on turn %d", gs.CurrentPlayer, gs.TurnCount)
	}
	if len(gs.DiscardPile) != 0 || len(gs.AttackZone) != 0 || len(gs.DefenseZone) != 0 {
		t.Error("Expected empty discard, attack and defense zones")
	}
	if err := gs.CheckConservation(); err != nil {
		t.Fatal(err)
	}
}

// TestInitializeDealsAlternately: cards come off the top one at a time, player1 first.
func TestInitializeDealsAlternately(t *testing.T) {
	d, _ := newTestDuel(t, "spades-A", "hearts-2", "spades-K", "hearts-3")
	p1 := d.state.Player(Player1)
	p2 := d.state.Player(Player2)
	if p1.Hand[0].ID != "spades-A" || p1.Hand[1].ID != "spades-K" {
		t.Errorf("Unexpected player1 hand %v", handIDs(p1))
	}
	if p2.Hand[0].ID != "hearts-2" || p2.Hand[1].ID != "hearts-3" {
		t.Errorf("Unexpected player2 hand %v", handIDs(p2))
	}
}

// TestInitializeResets: a second Initialize discards every change made since the first.
func TestInitializeResets(t *testing.T) {
	d, _ := newTestDuel(t)
	d.state.Player(Player2).Life = 3
	d.state.Player(Player1).AttackBonus = 4
	if _, err := d.DrawFromDeck(); err != nil {
		t.Fatal(err)
	}
	d.NextTurn()

	gs := d.Initialize()
	if gs.TurnCount != 0 || gs.CurrentPlayer != Player1 {
		t.Errorf("Expected turn 0 for player1, got %d for %s", gs.TurnCount, gs.CurrentPlayer)
	}
	if gs.Player(Player2).Life != 10 || gs.Player(Player1).AttackBonus != 0 {
		t.Error("Expected players to be reset")
	}
	if len(gs.Player(Player1).Hand) != 7 || len(gs.Deck) != 31 {
		t.Error("Expected a fresh deal")
	}
}

// TestSeededShuffleIsReproducible: the same seed deals the same game.
func TestSeededShuffleIsReproducible(t *testing.T) {
	deal := func(seed int64) *GameState {
		d, err := NewDuel(DuelConfig{Seed: seed})
		if err != nil {
			t.Fatalf("NewDuel: %v", err)
		}
		return d.Initialize()
	}
	a, b := deal(7), deal(7)
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical deals for the same seed")
	}
	c := deal(8)
	if reflect.DeepEqual(cardIDs(a.Deck), cardIDs(c.Deck)) {
		t.Error("Expected different seeds to shuffle differently")
	}
}

func TestNewDuelRejectsBadConfig(t *testing.T) {
	if _, err := NewDuel(DuelConfig{TopCards: []string{"hearts-1"}}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for an unknown top card, got %v", err)
	}
	if _, err := NewDuel(DuelConfig{TopCards: []string{"hearts-2", "hearts-2"}}); !errors.Is(err, ErrEngine) {
		t.Errorf("Expected ErrEngine for a repeated top card, got %v", err)
	}
	bad := DefaultRules()
	bad.HandSize = 30
	if _, err := NewDuel(DuelConfig{Rules: bad}); err == nil {
		t.Error("Expected an error for a deal larger than the deck")
	}
}

// TestNewDuelRandomSeed: a zero seed is replaced with a random one.
func TestNewDuelRandomSeed(t *testing.T) {
	d, err := NewDuel(DuelConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Seed() == 0 {
		t.Error("Expected a non-zero seed")
	}
	if d.Rules() != DefaultRules() {
		t.Error("Expected default rules")
	}
}

func TestDrawFromDeck(t *testing.T) {
	d, logger := newTestDuel(t)
	top := d.state.Deck[0]
	got, err := d.DrawFromDeck()
	if err != nil {
		t.Fatal(err)
	}
	if got != top {
		t.Errorf("Expected top card %s, got %s", top.ID, got.ID)
	}
	p1 := d.state.Player(Player1)
	if len(p1.Hand) != 8 || p1.Hand[7] != top {
		t.Errorf("Expected %s appended to player1's hand, got %v", top.ID, handIDs(p1))
	}
	if len(d.state.Deck) != 30 {
		t.Errorf("Expected 30 cards in deck, got %d", len(d.state.Deck))
	}
	if e := logger.LastEvent(); e.Type != log.EventDraw || e.Card != top.ID {
		t.Errorf("Expected a draw event for %s, got %+v", top.ID, e)
	}
}

// TestDrawExhaustion: drawing from an empty deck fails without touching any zone.
func TestDrawExhaustion(t *testing.T) {
	d, logger := newTestDuel(t)
	for d.CanDrawFromDeck() {
		if _, err := d.DrawFromDeck(); err != nil {
			t.Fatal(err)
		}
	}
	before := d.Snapshot()
	for i := 0; i < 3; i++ {
		if _, err := d.DrawFromDeck(); !errors.Is(err, ErrDeckEmpty) {
			t.Fatalf("Expected ErrDeckEmpty, got %v", err)
		}
	}
	if !reflect.DeepEqual(before, d.Snapshot()) {
		t.Error("Failed draws changed the state")
	}
	if n := len(logger.EventsOfType(log.EventRejected)); n != 3 {
		t.Errorf("Expected 3 rejected events, got %d", n)
	}
	assertConserved(t, d)
}

// TestRevealThenDrawFIFO: revealed cards are drawn oldest first.
func TestRevealThenDrawFIFO(t *testing.T) {
	d, _ := newTestDuel(t)
	if d.CanDrawFromCenter() {
		t.Fatal("Nothing should be drawable before a reveal")
	}
	if _, err := d.DrawFromCenter(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	var revealed []Card
	for i := 0; i < 3; i++ {
		c, err := d.RevealCentralCard()
		if err != nil {
			t.Fatal(err)
		}
		revealed = append(revealed, c)
	}
	if len(d.state.Central.FaceDown) != 4 {
		t.Errorf("Expected 4 face-down central cards, got %d", len(d.state.Central.FaceDown))
	}
	if !sameIDs(cardIDs(d.state.Central.Revealed), cardIDs(revealed)) {
		t.Errorf("Revealed queue %v does not match reveal order %v", cardIDs(d.state.Central.Revealed), cardIDs(revealed))
	}

	got, err := d.DrawFromCenter()
	if err != nil {
		t.Fatal(err)
	}
	if got != revealed[0] {
		t.Errorf("Expected oldest reveal %s, got %s", revealed[0].ID, got.ID)
	}
	if !d.state.Player(Player1).HasInHand(got.ID) {
		t.Error("Expected the drawn card in player1's hand")
	}
	assertConserved(t, d)
}

func TestRevealExhaustion(t *testing.T) {
	d, _ := newTestDuel(t)
	for d.CanRevealCentralCard() {
		if _, err := d.RevealCentralCard(); err != nil {
			t.Fatal(err)
		}
	}
	if len(d.state.Central.Revealed) != 7 {
		t.Errorf("Expected 7 revealed cards, got %d", len(d.state.Central.Revealed))
	}
	if _, err := d.RevealCentralCard(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestNextTurn(t *testing.T) {
	d, logger := newTestDuel(t)
	gs := d.NextTurn()
	if gs.CurrentPlayer != Player2 || gs.TurnCount != 1 {
		t.Errorf("Expected player2 on turn 1, got %s on turn %d", gs.CurrentPlayer, gs.TurnCount)
	}
	gs = d.NextTurn()
	if gs.CurrentPlayer != Player1 || gs.TurnCount != 2 {
		t.Errorf("Expected player1 on turn 2, got %s on turn %d", gs.CurrentPlayer, gs.TurnCount)
	}
	if e := logger.LastEvent(); e.Type != log.EventNewTurn || e.Turn != 2 {
		t.Errorf("Expected a turn event for turn 2, got %+v", e)
	}
}

// TestUninitializedDuel: commands needing a current player fail; NextTurn starts with player1.
func TestUninitializedDuel(t *testing.T) {
	d, err := NewDuel(DuelConfig{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.DrawFromDeck(); !errors.Is(err, ErrEngine) {
		t.Errorf("Expected ErrEngine, got %v", err)
	}
	if _, err := d.ResolveDuel(); !errors.Is(err, ErrEngine) {
		t.Errorf("Expected ErrEngine, got %v", err)
	}
	if d.Outcome().Over {
		t.Error("An uninitialized duel is not over")
	}
	if err := d.Snapshot().CheckConservation(); err != nil {
		t.Errorf("An empty state should pass conservation: %v", err)
	}
	gs := d.NextTurn()
	if gs.CurrentPlayer != Player1 || gs.TurnCount != 1 {
		t.Errorf("Expected player1 on turn 1, got %s on turn %d", gs.CurrentPlayer, gs.TurnCount)
	}
}

// TestSnapshotIsolation: mutating a snapshot never reaches the engine.
func TestSnapshotIsolation(t *testing.T) {
	d, _ := newTestDuel(t)
	snap := d.Snapshot()
	snap.Player(Player1).Hand[0] = Card{}
	snap.Player(Player1).Life = -5
	snap.Deck = nil
	if d.state.Player(Player1).Life != 10 || len(d.state.Deck) != 31 {
		t.Error("Snapshot mutation leaked into the engine")
	}
	assertConserved(t, d)
}

func TestCheckConservationDetectsLoss(t *testing.T) {
	d, _ := newTestDuel(t)
	gs := d.Snapshot()
	gs.Deck = gs.Deck[1:]
	if err := gs.CheckConservation(); !errors.Is(err, ErrEngine) {
		t.Errorf("Expected a conservation error for a lost card, got %v", err)
	}
	gs = d.Snapshot()
	gs.DiscardPile = append(gs.DiscardPile, gs.Deck[0])
	gs.Deck[1] = gs.Deck[0]
	if err := gs.CheckConservation(); err == nil {
		t.Error("Expected a conservation error for a duplicated card")
	}
}

func TestOutcome(t *testing.T) {
	d, _ := newTestDuel(t)
	if d.Outcome().Over {
		t.Fatal("Fresh duel should not be over")
	}
	d.state.Player(Player2).Life = 0
	out := d.Outcome()
	if !out.Over || out.Winner != Player1 {
		t.Errorf("Expected player1 to win, got %+v", out)
	}
	d.state.Player(Player1).Life = 0
	out = d.Outcome()
	if !out.Over || out.Winner != PlayerNone {
		t.Errorf("Expected a draw, got %+v", out)
	}
}

func TestCardIDs(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("Expected %d cards, got %d", DeckSize, len(deck))
	}
	if deck[0].ID != "hearts-2" || deck[12].ID != "hearts-A" || deck[51].ID != "spades-A" {
		t.Errorf("Unexpected canonical order: %s %s %s", deck[0].ID, deck[12].ID, deck[51].ID)
	}
	for _, c := range deck {
		back, ok := ParseCardID(c.ID)
		if !ok || back != c {
			t.Errorf("ParseCardID(%q) = %v, %v", c.ID, back, ok)
		}
	}
	if c := card(t, "spades-10"); c.String() != "10♠" {
		t.Errorf("Expected 10♠, got %s", c)
	}
	for _, bad := range []string{"", "spades", "spades-1", "cups-A", "spades-a"} {
		if _, ok := ParseCardID(bad); ok {
			t.Errorf("Expected %q to be rejected", bad)
		}
	}
}
