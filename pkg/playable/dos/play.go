package dos

import (
	"pusoydos/pkg/combination"
	"pusoydos/pkg/deck"
)

// Play is a scored group of cards on the table
// Seat is NoSeat for a play built only for evaluation
type Play struct {
	Seat Seat
	combination.Combination
}

// NewPlay evaluates the cards and returns an unowned play
func NewPlay(cards []deck.Card) (Play, error) {
	c, err := combination.Evaluate(cards)
	if err != nil {
		return Play{}, err
	}

	return Play{Seat: NoSeat, Combination: c}, nil
}

// HasOwner returns true if the play was made by a seat
func (p Play) HasOwner() bool {
	return p.Seat != NoSeat
}
