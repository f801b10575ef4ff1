package game

import "fmt"

// --- Enums ---

type Suit int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

// Suits lists the suits in canonical deck order.
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "hearts"
	case SuitDiamonds:
		return "diamonds"
	case SuitClubs:
		return "clubs"
	case SuitSpades:
		return "spades"
	default:
		return "unknown"
	}
}

// Symbol returns the single-glyph form used in the text log.
func (s Suit) Symbol() string {
	switch s {
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	case SuitSpades:
		return "♠"
	default:
		return "?"
	}
}

// ParseSuit converts a suit name back to a Suit.
func ParseSuit(name string) (Suit, bool) {
	for _, s := range Suits {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

type Rank int

const (
	RankTwo Rank = iota + 2
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

// Ranks lists the ranks in canonical deck order.
var Ranks = []Rank{
	RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven, RankEight,
	RankNine, RankTen, RankJack, RankQueen, RankKing, RankAce,
}

func (r Rank) String() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		if r >= RankTwo && r <= RankTen {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Strength is the numeric value used for straights: 2-10 literal, J=11, Q=12, K=13, A=14.
// Aces are always high.
func (r Rank) Strength() int {
	return int(r)
}

// IsFace reports whether the rank may be placed in a face-down effect zone.
func (r Rank) IsFace() bool {
	switch r {
	case RankJack, RankQueen, RankKing, RankAce:
		return true
	default:
		return false
	}
}

// ParseRank converts a rank label ("2".."10", "J", "Q", "K", "A") back to a Rank.
func ParseRank(label string) (Rank, bool) {
	for _, r := range Ranks {
		if r.String() == label {
			return r, true
		}
	}
	return 0, false
}

// PlayerID names one of the two seats. The zero value means no player is active.
type PlayerID string

const (
	PlayerNone PlayerID = ""
	Player1    PlayerID = "player1"
	Player2    PlayerID = "player2"
)

// PlayerIDs lists both seats in dealing order.
var PlayerIDs = []PlayerID{Player1, Player2}

// Other returns the opposing seat.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Valid reports whether p names a real seat.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// --- Card ---

// Card is an immutable playing card. ID is derived from suit and rank and is
// unique across the 52-card universe.
type Card struct {
	Suit Suit
	Rank Rank
	ID   string
}

// NewCard builds the card for suit and rank with its canonical ID.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank, ID: CardID(suit, rank)}
}

// CardID returns the canonical "<suit>-<rank>" identifier, e.g. "spades-A".
func CardID(suit Suit, rank Rank) string {
	return suit.String() + "-" + rank.String()
}

// ParseCardID resolves an identifier produced by CardID.
func ParseCardID(id string) (Card, bool) {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] != '-' {
			continue
		}
		suit, ok := ParseSuit(id[:i])
		if !ok {
			return Card{}, false
		}
		rank, ok := ParseRank(id[i+1:])
		if !ok {
			return Card{}, false
		}
		return NewCard(suit, rank), true
	}
	return Card{}, false
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// --- Zone types ---

type ZoneType int

const (
	ZoneDeck ZoneType = iota
	ZoneDiscard
	ZoneCentralFaceDown
	ZoneCentralRevealed
	ZoneHand
	ZoneFaceDown
	ZoneAttack
	ZoneDefense
)

func (z ZoneType) String() string {
	switch z {
	case ZoneDeck:
		return "Deck"
	case ZoneDiscard:
		return "Discard Pile"
	case ZoneCentralFaceDown:
		return "Central (face-down)"
	case ZoneCentralRevealed:
		return "Central (revealed)"
	case ZoneHand:
		return "Hand"
	case ZoneFaceDown:
		return "Face-down Zone"
	case ZoneAttack:
		return "Attack Zone"
	case ZoneDefense:
		return "Defense Zone"
	default:
		return "Unknown"
	}
}
