package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card's text form cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Rank is the index of a card rank, ordered 3 (lowest) through 2 (highest)
type Rank int

// rank constants
const (
	Three Rank = iota
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

// Suit is the index of a card suit, ordered for tie-breaking
type Suit int

// suit constants
const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// NumRanks and NumSuits describe the standard deck
const (
	NumRanks = 13
	NumSuits = 4
	NumCards = NumRanks * NumSuits
)

const (
	rankChars = "3456789TJQKA2"
	suitChars = "CSHD"
)

// Char returns the single character used for the rank, or ? if the rank is out of range
func (r Rank) Char() byte {
	if r < Three || r > Two {
		return '?'
	}

	return rankChars[r]
}

// Char returns the single character used for the suit, or ? if the suit is out of range
func (s Suit) Char() byte {
	if s < Clubs || s > Diamonds {
		return '?'
	}

	return suitChars[s]
}

// Card is an individual playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// LowestCard is the three of clubs, the card that opens every round
var LowestCard = Card{Rank: Three, Suit: Clubs}

// Value orders all 52 cards: rank first, then suit
func (c Card) Value() int {
	return int(c.Rank)*NumSuits + int(c.Suit)
}

// Valid returns true if the card is one of the 52 in the deck
func (c Card) Valid() bool {
	return c.Rank >= Three && c.Rank <= Two && c.Suit >= Clubs && c.Suit <= Diamonds
}

// String returns the two character form, i.e., 3C or TD
func (c Card) String() string {
	return string([]byte{c.Rank.Char(), c.Suit.Char()})
}

// MarshalText encodes the card in its two character form
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, c.Rank, c.Suit)
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes the card from its two character form
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank in [3456789TJQKA2] and suit in [CSHD]
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	s = strings.ToUpper(s)
	rank := strings.IndexByte(rankChars, s[0])
	suit := strings.IndexByte(suitChars, s[1])
	if rank < 0 || suit < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return Card{Rank: Rank(rank), Suit: Suit(suit)}, nil
}

// ParseCards parses a string like 3C,4S,TD
// Spaces around each card are ignored, and an empty string is no cards
func ParseCards(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	ids := strings.Split(s, ",")
	cards := make([]Card, len(ids))
	for i, id := range ids {
		card, err := ParseCard(strings.TrimSpace(id))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString is like ParseCard, but panics on a bad card
// Useful for tests and constants
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString is like ParseCards, but panics on a bad card
func CardsFromString(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 3C,4S,TD,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
