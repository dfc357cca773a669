package dos

import "fmt"

// NumSeats is the number of seats at a dos table
const NumSeats = 4

// Seat is one of the four fixed player slots, 0 through 3
type Seat int

// NoSeat is used when there is no seat, i.e., no next turn after the round ends
const NoSeat Seat = -1

// Valid returns true if the seat is at the table
func (s Seat) Valid() bool {
	return s >= 0 && s < NumSeats
}

func (s Seat) String() string {
	if s == NoSeat {
		return "none"
	}

	return fmt.Sprintf("seat %d", int(s))
}
