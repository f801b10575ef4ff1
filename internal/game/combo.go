package game

import "sort"

// ComboRank is a scoring tier. The numeric values are the literal combo
// scores fed into damage arithmetic; 9, 10 and 11 are deliberately unused.
type ComboRank int

const (
	RankNone          ComboRank = 0
	RankHighCard      ComboRank = 1
	RankOnePair       ComboRank = 2
	RankTwoPair       ComboRank = 3
	RankThreeOfAKind  ComboRank = 4
	RankStraight      ComboRank = 5
	RankFlush         ComboRank = 6
	RankFullHouse     ComboRank = 7
	RankFourOfAKind   ComboRank = 8
	RankStraightFlush ComboRank = 12
)

func (r ComboRank) String() string {
	switch r {
	case RankNone:
		return "Nothing"
	case RankHighCard:
		return "High Card"
	case RankOnePair:
		return "One Pair"
	case RankTwoPair:
		return "Two Pair"
	case RankThreeOfAKind:
		return "Three of a Kind"
	case RankStraight:
		return "Straight"
	case RankFlush:
		return "Flush"
	case RankFullHouse:
		return "Full House"
	case RankFourOfAKind:
		return "Four of a Kind"
	case RankStraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Value returns the score of the tier.
func (r ComboRank) Value() int {
	return int(r)
}

// runLength is the number of cards a straight or a flush needs. Shorter
// sets never qualify: counting any single card as a straight flush would make
// every multi-card submission inexact.
const runLength = 5

// Classify returns the scoring tier of cards taken as a single hand.
func Classify(cards []Card) ComboRank {
	if len(cards) == 0 {
		return RankNone
	}

	countByRank := make(map[Rank]int, len(cards))
	for _, c := range cards {
		countByRank[c.Rank]++
	}
	counts := make([]int, 0, len(countByRank))
	for _, n := range countByRank {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	second := 0
	if len(counts) > 1 {
		second = counts[1]
	}

	flush := len(cards) == runLength
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straight := len(cards) == runLength
	if straight {
		values := make([]int, len(cards))
		for i, c := range cards {
			values[i] = c.Rank.Strength()
		}
		sort.Ints(values)
		for i := 1; i < len(values); i++ {
			if values[i] != values[i-1]+1 {
				straight = false
				break
			}
		}
	}

	switch {
	case straight && flush:
		return RankStraightFlush
	case counts[0] == 4:
		return RankFourOfAKind
	case counts[0] == 3 && second == 2:
		return RankFullHouse
	case flush:
		return RankFlush
	case straight:
		return RankStraight
	case counts[0] == 3:
		return RankThreeOfAKind
	case counts[0] == 2 && second == 2:
		return RankTwoPair
	case counts[0] == 2:
		return RankOnePair
	default:
		return RankHighCard
	}
}

// ComboValue scores cards by poker-like strength. Empty input scores 0.
func ComboValue(cards []Card) int {
	return Classify(cards).Value()
}

// Combo is a scored subset of submitted cards.
type Combo struct {
	Cards []Card
	Rank  ComboRank
}

// Value returns the combo's score.
func (c Combo) Value() int {
	return c.Rank.Value()
}

// BestCombo scores every non-empty subset of up to MaxComboCards cards and
// returns the highest. Subsets are visited depth-first in index order
// ({0}, {0,1}, {0,1,2}, ...) and the first subset reaching the maximum wins
// ties. ok is false for empty input.
func BestCombo(cards []Card) (best Combo, ok bool) {
	path := make([]Card, 0, MaxComboCards)
	var visit func(start int)
	visit = func(start int) {
		if len(path) > 0 {
			rank := Classify(path)
			if !ok || rank.Value() > best.Rank.Value() {
				best = Combo{Cards: cloneCards(path), Rank: rank}
				ok = true
			}
		}
		if len(path) == MaxComboCards {
			return
		}
		for i := start; i < len(cards); i++ {
			path = append(path, cards[i])
			visit(i + 1)
			path = path[:len(path)-1]
		}
	}
	visit(0)
	return best, ok
}

// IsExactCombo reports whether the best-scoring subset of cards is the whole
// submission, i.e. no card is dead weight.
func IsExactCombo(cards []Card) bool {
	best, ok := BestCombo(cards)
	return ok && len(best.Cards) == len(cards)
}
