package deck

import "sort"

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Value() < h[j].Value()
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Sorted returns a copy of the hand in ascending value order
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Sort(h2)
	return h2
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// HasCards returns true if the hand holds every card, counting duplicates
func (h Hand) HasCards(cards []Card) bool {
	counts := make(map[Card]int, len(h))
	for _, c := range h {
		counts[c]++
	}

	for _, c := range cards {
		if counts[c] == 0 {
			return false
		}

		counts[c]--
	}

	return true
}

// Without returns a new hand with each of the cards removed once
func (h Hand) Without(cards []Card) Hand {
	remove := make(map[Card]int, len(cards))
	for _, c := range cards {
		remove[c]++
	}

	out := make(Hand, 0, len(h))
	for _, c := range h {
		if remove[c] > 0 {
			remove[c]--
			continue
		}

		out = append(out, c)
	}

	return out
}

// FirstCard returns the first card in the hand and false if the hand is empty
func (h Hand) FirstCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	return h[0], true
}

// LastCard returns the last card in the hand and false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
