package game

import (
	"fmt"
	"strings"
)

const (
	DeckSize = 52

	StartingLife  = 10
	HandSize      = 7
	CentralSize   = 7
	MaxComboCards = 5
)

// Player represents one player's entire state.
type Player struct {
	Hand         []Card
	FaceDownZone []Card
	Life         int
	AttackBonus  int
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// HasInHand reports whether the card with the given id is in hand.
func (p *Player) HasInHand(id string) bool {
	return indexOfCard(p.Hand, id) >= 0
}

// RemoveFromHand removes a card from the hand by ID.
func (p *Player) RemoveFromHand(id string) (Card, bool) {
	var card Card
	var ok bool
	p.Hand, card, ok = takeCard(p.Hand, id)
	return card, ok
}

// RemoveFromFaceDown removes a card from the face-down zone by ID.
func (p *Player) RemoveFromFaceDown(id string) (Card, bool) {
	var card Card
	var ok bool
	p.FaceDownZone, card, ok = takeCard(p.FaceDownZone, id)
	return card, ok
}

func (p *Player) clone() *Player {
	return &Player{
		Hand:         cloneCards(p.Hand),
		FaceDownZone: cloneCards(p.FaceDownZone),
		Life:         p.Life,
		AttackBonus:  p.AttackBonus,
	}
}

// CentralZone is the shared pool. FaceDown is an unordered reveal target;
// Revealed is drawn oldest-first.
type CentralZone struct {
	FaceDown []Card
	Revealed []Card
}

// --- GameState ---

// GameState holds the complete state of a duel.
type GameState struct {
	Deck        []Card // Deck[0] is the top card
	DiscardPile []Card
	Central     CentralZone
	Players     [2]*Player

	CurrentPlayer PlayerID
	TurnCount     int

	// Transient duel zones, emptied by every duel resolution.
	AttackZone  []Card
	DefenseZone []Card
}

// NewGameState creates an empty, uninitialized state.
func NewGameState() *GameState {
	return &GameState{
		Players: [2]*Player{
			{Life: StartingLife},
			{Life: StartingLife},
		},
	}
}

// Player returns the state for the given seat, or nil for an unknown seat.
func (gs *GameState) Player(id PlayerID) *Player {
	switch id {
	case Player1:
		return gs.Players[0]
	case Player2:
		return gs.Players[1]
	default:
		return nil
	}
}

// currentPlayer returns the turn player's state.
func (gs *GameState) currentPlayer() (*Player, error) {
	if !gs.CurrentPlayer.Valid() {
		return nil, fmt.Errorf("%w: current player undefined", ErrEngine)
	}
	return gs.Player(gs.CurrentPlayer), nil
}

// opponent returns the non-turn player's state.
func (gs *GameState) opponent() (*Player, error) {
	if !gs.CurrentPlayer.Valid() {
		return nil, fmt.Errorf("%w: current player undefined", ErrEngine)
	}
	return gs.Player(gs.CurrentPlayer.Other()), nil
}

// drawInto moves the top deck card to the end of p's hand.
func (gs *GameState) drawInto(p *Player) (Card, bool) {
	if len(gs.Deck) == 0 {
		return Card{}, false
	}
	card := gs.Deck[0]
	gs.Deck = gs.Deck[1:]
	p.Hand = append(p.Hand, card)
	return card, true
}

func (gs *GameState) discard(cards ...Card) {
	gs.DiscardPile = append(gs.DiscardPile, cards...)
}

// Clone returns a deep copy. Mutating the copy never affects gs.
func (gs *GameState) Clone() *GameState {
	out := &GameState{
		Deck:        cloneCards(gs.Deck),
		DiscardPile: cloneCards(gs.DiscardPile),
		Central: CentralZone{
			FaceDown: cloneCards(gs.Central.FaceDown),
			Revealed: cloneCards(gs.Central.Revealed),
		},
		CurrentPlayer: gs.CurrentPlayer,
		TurnCount:     gs.TurnCount,
		AttackZone:    cloneCards(gs.AttackZone),
		DefenseZone:   cloneCards(gs.DefenseZone),
	}
	for i, p := range gs.Players {
		if p != nil {
			out.Players[i] = p.clone()
		}
	}
	return out
}

// Zones returns every zone's contents keyed by a stable label.
func (gs *GameState) Zones() map[string][]Card {
	zones := map[string][]Card{
		"deck":             gs.Deck,
		"discard":          gs.DiscardPile,
		"central.faceDown": gs.Central.FaceDown,
		"central.revealed": gs.Central.Revealed,
		"attack":           gs.AttackZone,
		"defense":          gs.DefenseZone,
	}
	for _, id := range PlayerIDs {
		p := gs.Player(id)
		if p == nil {
			continue
		}
		zones[string(id)+".hand"] = p.Hand
		zones[string(id)+".faceDown"] = p.FaceDownZone
	}
	return zones
}

// CheckConservation verifies that the zones together hold the 52-card
// universe with every id exactly once. An uninitialized state holds no cards
// and is reported as valid.
func (gs *GameState) CheckConservation() error {
	seen := make(map[string]string, DeckSize)
	var problems []string
	total := 0
	for zone, cards := range gs.Zones() {
		for _, c := range cards {
			total++
			if c.ID != CardID(c.Suit, c.Rank) {
				problems = append(problems, fmt.Sprintf("card %q in %s has a forged id", c.ID, zone))
			}
			if prev, dup := seen[c.ID]; dup {
				problems = append(problems, fmt.Sprintf("card %s in both %s and %s", c.ID, prev, zone))
				continue
			}
			seen[c.ID] = zone
		}
	}
	if total != 0 && total != DeckSize {
		problems = append(problems, fmt.Sprintf("%d cards in play, want %d", total, DeckSize))
	}
	if total == DeckSize {
		for _, c := range NewDeck() {
			if _, ok := seen[c.ID]; !ok {
				problems = append(problems, fmt.Sprintf("card %s missing", c.ID))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: conservation violated: %s", ErrEngine, strings.Join(problems, "; "))
	}
	return nil
}

// Outcome describes whether the match is decided. It is observational only;
// the engine never stops accepting commands once a player reaches 0 life.
type Outcome struct {
	Over   bool
	Winner PlayerID // PlayerNone on a draw or while the match continues
	Result string
}

// Outcome checks if either player's life has hit 0.
func (gs *GameState) Outcome() Outcome {
	p1, p2 := gs.Players[0], gs.Players[1]
	if p1 == nil || p2 == nil || !gs.CurrentPlayer.Valid() {
		return Outcome{}
	}
	p1Dead := p1.Life <= 0
	p2Dead := p2.Life <= 0
	switch {
	case p1Dead && p2Dead:
		return Outcome{Over: true, Result: "Draw: both players' life reached 0"}
	case p1Dead:
		return Outcome{Over: true, Winner: Player2, Result: "player2 wins: player1's life reached 0"}
	case p2Dead:
		return Outcome{Over: true, Winner: Player1, Result: "player1 wins: player2's life reached 0"}
	}
	return Outcome{}
}

// --- slice helpers ---

func indexOfCard(cards []Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// takeCard removes the card with the given id, preserving order.
func takeCard(cards []Card, id string) ([]Card, Card, bool) {
	i := indexOfCard(cards, id)
	if i < 0 {
		return cards, Card{}, false
	}
	card := cards[i]
	return append(cards[:i], cards[i+1:]...), card, true
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
