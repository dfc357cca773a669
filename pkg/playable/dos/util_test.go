package dos

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"io"
	"pusoydos/pkg/deck"
	"testing"
)

// identityPermuter leaves the deck in order, so seat 0 is dealt every club,
// seat 1 every spade, seat 2 every heart and seat 3 every diamond
type identityPermuter struct{}

func (identityPermuter) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setupRound seats the given hands at seats 0, 1, 2, ...
// Every card not listed is dealt round-robin to the seats without a listed hand
func setupRound(t *testing.T, opts Options, hands ...string) *Round {
	t.Helper()

	var dealt [NumSeats]deck.Hand
	used := make(map[deck.Card]bool)
	for i, h := range hands {
		dealt[i] = deck.CardsFromString(h)
		for _, card := range dealt[i] {
			used[card] = true
		}
	}

	if len(hands) >= NumSeats {
		t.Fatalf("at least one seat must take the rest of the deck")
	}

	next := len(hands)
	for _, card := range deck.New().Cards {
		if !used[card] {
			dealt[next].AddCard(card)
			next++
			if next == NumSeats {
				next = len(hands)
			}
		}
	}

	r, err := newRound(quietLogger(), dealt, opts)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return r
}

func cards(s string) []deck.Card {
	return deck.CardsFromString(s)
}

// assertRejected checks the error and that the round did not change
func assertRejected(t *testing.T, r *Round, expected error, move func() (Outcome, error)) {
	t.Helper()

	before := r.State()
	var hands [NumSeats]string
	for seat := Seat(0); seat < NumSeats; seat++ {
		hands[seat] = r.Hand(seat).String()
	}

	outcome, err := move()
	assert.ErrorIs(t, err, expected)
	assert.Equal(t, Outcome{}, outcome)
	assert.Equal(t, before, r.State())
	for seat := Seat(0); seat < NumSeats; seat++ {
		assert.Equal(t, hands[seat], r.Hand(seat).String())
	}
}

func mustPlay(t *testing.T, r *Round, seat Seat, s string) Outcome {
	t.Helper()

	outcome, err := r.Play(seat, cards(s))
	if !assert.NoError(t, err, "%s plays %s", seat, s) {
		t.FailNow()
	}

	return outcome
}

func mustPass(t *testing.T, r *Round, seat Seat) Outcome {
	t.Helper()

	outcome, err := r.Pass(seat)
	if !assert.NoError(t, err, "%s passes", seat) {
		t.FailNow()
	}

	return outcome
}
