package dos

import (
	"pusoydos/pkg/combination"
	"pusoydos/pkg/deck"
)

// Candidates returns every combination the hand can form
func Candidates(hand deck.Hand) []combination.Combination {
	cards := hand.Sorted()
	n := len(cards)
	combos := make([]combination.Combination, 0, n)

	try := func(idx ...int) {
		set := make([]deck.Card, len(idx))
		for i, j := range idx {
			set[i] = cards[j]
		}

		if c, err := combination.Evaluate(set); err == nil {
			combos = append(combos, c)
		}
	}

	for a := 0; a < n; a++ {
		try(a)
		for b := a + 1; b < n; b++ {
			try(a, b)
			for c := b + 1; c < n; c++ {
				try(a, b, c)
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						try(a, b, c, d, e)
					}
				}
			}
		}
	}

	return combos
}

// ChooseMove picks the cheapest legal play for the seat, or a pass if nothing beats the table
// When leading, it sheds as many cards as it can
func ChooseMove(r *Round, seat Seat) Move {
	_, onTable := r.LastPlay()

	var best *combination.Combination
	for _, c := range Candidates(r.Hand(seat)) {
		if _, err := r.Validate(seat, c.Cards); err != nil {
			continue
		}

		if best == nil || preferred(c, *best, !onTable) {
			c := c
			best = &c
		}
	}

	if best == nil {
		return PassMove()
	}

	return PlayMove(best.Cards...)
}

func preferred(c, best combination.Combination, leading bool) bool {
	if leading && c.Len() != best.Len() {
		return c.Len() > best.Len()
	}

	return c.Value < best.Value
}
