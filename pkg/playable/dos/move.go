package dos

import (
	"fmt"
	"pusoydos/pkg/deck"
)

// MoveType is either a play or a pass
type MoveType int

// move types
const (
	MovePlay MoveType = iota
	MovePass
)

func (m MoveType) String() string {
	switch m {
	case MovePlay:
		return "play"
	case MovePass:
		return "pass"
	default:
		return fmt.Sprintf("MoveType(%d)", int(m))
	}
}

// Move is an action proposed for a seat
type Move struct {
	Type  MoveType
	Cards []deck.Card
}

// PlayMove returns a move that plays the cards
func PlayMove(cards ...deck.Card) Move {
	return Move{Type: MovePlay, Cards: cards}
}

// PassMove returns a pass
func PassMove() Move {
	return Move{Type: MovePass}
}

// Outcome reports what an accepted move did and who acts next
type Outcome struct {
	// Seat made the move
	Seat Seat
	// Played is nil for a pass
	Played *Play
	// TableCleared is true if the next seat leads freely
	TableCleared bool
	// WentOut is true if the seat emptied its hand
	WentOut bool
	// RoundComplete is true once three seats have gone out
	RoundComplete bool
	// NextSeat is NoSeat once the round is complete
	NextSeat Seat
}

// ApplyMove dispatches the move to Play or Pass
func (r *Round) ApplyMove(seat Seat, m Move) (Outcome, error) {
	switch m.Type {
	case MovePlay:
		return r.Play(seat, m.Cards)
	case MovePass:
		return r.Pass(seat)
	default:
		return Outcome{}, fmt.Errorf("unknown move: %s", m.Type)
	}
}
