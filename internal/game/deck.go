package game

import "math/rand"

// NewDeck returns the 52-card universe in canonical order: suit-major
// (hearts, diamonds, clubs, spades), rank-minor (2 through A).
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	return deck
}

// Shuffle permutes cards in place with Fisher-Yates. Every permutation is
// equally likely for a uniform rng; a seeded rng gives a reproducible order.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}
