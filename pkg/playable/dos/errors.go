package dos

import (
	"errors"
	"fmt"
	"pusoydos/pkg/combination"
)

// ErrNotInHand is returned when a seat plays cards it does not hold
var ErrNotInHand = errors.New("cards are not in the seat's hand")

// ErrInvalidCombination is returned when the cards do not form a playable combination
var ErrInvalidCombination = combination.ErrInvalidCombination

// ErrMustLeadWithLowestCard is returned when the first play of the round does not include the 3 of clubs
var ErrMustLeadWithLowestCard = errors.New("the first play of the round must include the 3C")

// ErrLengthMismatch is returned when a play has a different number of cards than the play on the table
var ErrLengthMismatch = errors.New("play must have the same number of cards as the table")

// ErrValueTooLow is returned when a play does not beat the play on the table
var ErrValueTooLow = errors.New("play does not beat the table")

// ErrNoActivePlayToPassOn is returned when a seat passes on an empty table
var ErrNoActivePlayToPassOn = errors.New("there is no play to pass on")

// ErrRoundIsOver is returned when a move is made after the round is complete
var ErrRoundIsOver = errors.New("the round is over")

// ErrNotSeatsTurn is returned when a seat moves out of turn
var ErrNotSeatsTurn = errors.New("not seat's turn")

// ErrInvalidSeat is returned for a seat that is not at the table
var ErrInvalidSeat = errors.New("invalid seat")

// ErrInvalidDeal is returned when the hands do not partition the deck
var ErrInvalidDeal = errors.New("hands must hold every card exactly once")

// ErrPlayerNotFound is returned when a player is not seated in the game
var ErrPlayerNotFound = errors.New("player not found")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d players, got %d", NumSeats, int(p))
}
