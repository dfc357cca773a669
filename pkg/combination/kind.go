package combination

import "fmt"

// Kind is the shape of a combination, i.e., pair or full house
type Kind int

// Constants for kind
// Five-card kinds are declared in ascending strength
const (
	None Kind = iota
	Single
	Pair
	Triple
	Straight
	Flush
	FullHouse
	Quadro
	StraightFlush
)

// kindWeight separates five-card kinds so that any higher kind outranks any lower kind
const kindWeight = 1000

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Single:
		return "Single"
	case Pair:
		return "Pair"
	case Triple:
		return "Triple"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case Quadro:
		return "Quadro"
	case StraightFlush:
		return "Straight flush"
	default:
		panic(fmt.Sprintf("unknown kind: %d", k))
	}
}

// IsFiveCard returns true for the five-card kinds
func (k Kind) IsFiveCard() bool {
	return k >= Straight && k <= StraightFlush
}

// rank returns the primary sort key of a five-card kind: Straight is 1, StraightFlush is 5
func (k Kind) rank() int {
	if !k.IsFiveCard() {
		return 0
	}

	return int(k-Straight) + 1
}
