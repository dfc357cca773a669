package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Permuter supplies the shuffle order
// Implementations must return an unbiased permutation of [0, n)
type Permuter interface {
	Perm(n int) []int
}

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards in ascending value order.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, NumCards)
	for rank := Three; rank <= Two; rank++ {
		for suit := Clubs; suit <= Diamonds; suit++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the full deck and reorders it with the permutation from p
func (d *Deck) Shuffle(p Permuter) {
	d.buildDeck()

	order := p.Perm(len(d.Cards))
	if len(order) != len(d.Cards) {
		panic(fmt.Sprintf("permutation has %d entries, expected %d", len(order), len(d.Cards)))
	}

	seen := make([]bool, len(d.Cards))
	shuffled := make([]Card, len(d.Cards))
	for i, j := range order {
		if j < 0 || j >= len(d.Cards) || seen[j] {
			panic(fmt.Sprintf("not a permutation: %v", order))
		}

		seen[j] = true
		shuffled[i] = d.Cards[j]
	}

	d.Cards = shuffled
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}
