package combination

import (
	"errors"
	"fmt"
	"pusoydos/pkg/deck"
)

// ErrInvalidCombination is returned when the cards do not form a playable combination
var ErrInvalidCombination = errors.New("not a valid combination")

// Combination is a scored set of cards
type Combination struct {
	Kind Kind
	// Cards in ascending value order
	Cards deck.Hand
	// Value is comparable across combinations of the same size
	Value int
}

// Len returns the number of cards in the combination
func (c Combination) Len() int {
	return len(c.Cards)
}

// Beats returns true if c can be played on top of other
func (c Combination) Beats(other Combination) bool {
	return c.Len() == other.Len() && c.Value > other.Value
}

// Evaluate classifies a set of 1, 2, 3, or 5 cards and computes its comparison value
func Evaluate(cards []deck.Card) (Combination, error) {
	sorted := deck.Hand(cards).Sorted()
	for _, c := range sorted {
		if !c.Valid() {
			return Combination{}, fmt.Errorf("%w: rank %d suit %d is not a card", ErrInvalidCombination, c.Rank, c.Suit)
		}
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return Combination{}, fmt.Errorf("%w: %s appears twice", ErrInvalidCombination, sorted[i])
		}
	}

	switch len(sorted) {
	case 1:
		return Combination{Kind: Single, Cards: sorted, Value: sorted[0].Value()}, nil
	case 2:
		if !sameRank(sorted) {
			return Combination{}, fmt.Errorf("%w: pair must share rank", ErrInvalidCombination)
		}

		// the higher card of the pair
		return Combination{Kind: Pair, Cards: sorted, Value: sorted[1].Value()}, nil
	case 3:
		if !sameRank(sorted) {
			return Combination{}, fmt.Errorf("%w: triple must share rank", ErrInvalidCombination)
		}

		// the lowest-suited card of the triple, unlike the pair
		low, _ := sorted.FirstCard()
		return Combination{Kind: Triple, Cards: sorted, Value: low.Value()}, nil
	case 5:
		return evaluateFive(sorted)
	default:
		return Combination{}, fmt.Errorf("%w: %d cards", ErrInvalidCombination, len(sorted))
	}
}

// evaluateFive expects the cards to already be sorted by value
func evaluateFive(sorted deck.Hand) (Combination, error) {
	kind, cmp := None, 0

	straight := isStraight(sorted)
	flush := isFlush(sorted)
	counts := rankCounts(sorted)

	switch {
	case straight && flush:
		kind, cmp = StraightFlush, straightValue(sorted)
	case counts[4] == 1:
		// the middle card always belongs to the quad
		kind, cmp = Quadro, sorted[2].Value()
	case counts[3] == 1 && counts[2] == 1:
		// the middle card always belongs to the trio
		kind, cmp = FullHouse, sorted[2].Value()
	case flush:
		kind, cmp = Flush, flushValue(sorted)
	case straight:
		kind, cmp = Straight, straightValue(sorted)
	default:
		return Combination{}, fmt.Errorf("%w: %s", ErrInvalidCombination, sorted)
	}

	return Combination{
		Kind:  kind,
		Cards: sorted,
		Value: kind.rank()*kindWeight + cmp,
	}, nil
}

func sameRank(cards deck.Hand) bool {
	for _, c := range cards {
		if c.Rank != cards[0].Rank {
			return false
		}
	}

	return true
}

// rankCounts maps a group size to how many ranks have that many cards
func rankCounts(cards deck.Hand) map[int]int {
	byRank := make(map[deck.Rank]int)
	for _, c := range cards {
		byRank[c.Rank]++
	}

	counts := make(map[int]int)
	for _, n := range byRank {
		counts[n]++
	}

	return counts
}

func isFlush(cards deck.Hand) bool {
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// isStraight checks for five consecutive ranks between 3 and K, or the J-Q-K-A-2 run
// The cards must be sorted by value
func isStraight(cards deck.Hand) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank == cards[i-1].Rank {
			return false
		}
	}

	if cards[len(cards)-1].Rank <= deck.King {
		for i := 1; i < len(cards); i++ {
			if cards[i].Rank != cards[i-1].Rank+1 {
				return false
			}
		}

		return true
	}

	wrap := []deck.Rank{deck.Jack, deck.Queen, deck.King, deck.Ace, deck.Two}
	for i, c := range cards {
		if c.Rank != wrap[i] {
			return false
		}
	}

	return true
}

// straightValue is the value of the top card of the run, which is also the highest valued card
func straightValue(sorted deck.Hand) int {
	top, _ := sorted.LastCard()
	return top.Value()
}

// flushValue weighs the suit of the highest card above its rank
func flushValue(sorted deck.Hand) int {
	top, _ := sorted.LastCard()
	return int(top.Suit)*deck.NumRanks + int(top.Rank)
}
