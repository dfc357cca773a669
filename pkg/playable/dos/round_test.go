package dos

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"pusoydos/internal/rng"
	"pusoydos/pkg/combination"
	"pusoydos/pkg/deck"
	"testing"
)

func TestNewRound(t *testing.T) {
	a := assert.New(t)

	r, err := NewRound(quietLogger(), rng.NewSeeded(1), DefaultOptions())
	a.NoError(err)

	seen := make(map[deck.Card]bool)
	for seat := Seat(0); seat < NumSeats; seat++ {
		a.Equal(13, len(r.Hand(seat)))
		a.Equal(13, r.RemainingCount(seat))
		for _, card := range r.Hand(seat) {
			seen[card] = true
		}
	}
	a.Equal(52, len(seen))

	a.True(r.Hand(r.FirstTurnSeat()).HasCard(deck.LowestCard))
	a.Equal(r.FirstTurnSeat(), r.CurrentTurn())
	a.Equal(PhaseAwaitingFirstLead, r.Phase())
	a.False(r.HasStarted())
	a.False(r.IsComplete())
	a.Empty(r.Winners())
	a.Empty(r.DiscardHistory())
	_, ok := r.LastPlay()
	a.False(ok)
	_, ok = r.Loser()
	a.False(ok)

	// the same seed deals the same hands
	r2, err := NewRound(quietLogger(), rng.NewSeeded(1), DefaultOptions())
	a.NoError(err)
	for seat := Seat(0); seat < NumSeats; seat++ {
		a.Equal(r.Hand(seat), r2.Hand(seat))
	}
	a.Equal(r.DeckHash(), r2.DeckHash())

	r3, err := NewRound(quietLogger(), rng.NewSeeded(2), DefaultOptions())
	a.NoError(err)
	a.NotEqual(r.DeckHash(), r3.DeckHash())
}

func TestNewRound_identityDeal(t *testing.T) {
	a := assert.New(t)

	r, err := NewRound(quietLogger(), identityPermuter{}, DefaultOptions())
	a.NoError(err)
	a.Equal("3C,4C,5C,6C,7C,8C,9C,TC,JC,QC,KC,AC,2C", r.Hand(0).String())
	a.Equal("3D,4D,5D,6D,7D,8D,9D,TD,JD,QD,KD,AD,2D", r.Hand(3).String())
	a.Equal(Seat(0), r.FirstTurnSeat())
	a.Equal(deck.New().HashCode(), r.DeckHash())
	a.Equal("", setupRound(t, DefaultOptions()).DeckHash())
}

func Test_newRound_invalidDeal(t *testing.T) {
	a := assert.New(t)

	var hands [NumSeats]deck.Hand
	hands[0] = cards("3C,4C")
	_, err := newRound(nil, hands, DefaultOptions())
	a.ErrorIs(err, ErrInvalidDeal)

	d := deck.New()
	hands[0] = d.Cards[:26]
	hands[1] = d.Cards[25:]
	_, err = newRound(nil, hands, DefaultOptions())
	a.ErrorIs(err, ErrInvalidDeal)
	a.Contains(err.Error(), "dealt twice")
}

func TestRound_firstLead(t *testing.T) {
	a := assert.New(t)

	r, err := NewRound(quietLogger(), rng.NewSeeded(20), DefaultOptions())
	a.NoError(err)

	first := r.FirstTurnSeat()
	play, err := NewPlay([]deck.Card{deck.LowestCard})
	a.NoError(err)
	a.Equal(0, play.Value)
	a.False(play.HasOwner())

	outcome, err := r.Play(first, []deck.Card{deck.LowestCard})
	a.NoError(err)
	a.Equal(Seat((int(first)+1)%NumSeats), outcome.NextSeat)
	a.Equal(outcome.NextSeat, r.CurrentTurn())
	a.Equal(first, outcome.Seat)
	a.False(outcome.TableCleared)
	a.False(outcome.WentOut)
	a.True(r.HasStarted())
	a.Equal(PhaseInPlay, r.Phase())
	a.Equal(12, r.RemainingCount(first))

	last, ok := r.LastPlay()
	a.True(ok)
	a.Equal(first, last.Seat)
	a.True(last.HasOwner())
	a.Equal(0, last.Value)
}

func TestRound_mustLeadWithLowestCard(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, DefaultOptions(), "3C,3S,4C,4S")

	assertRejected(t, r, ErrMustLeadWithLowestCard, func() (Outcome, error) { return r.Play(0, cards("4C")) })
	assertRejected(t, r, ErrMustLeadWithLowestCard, func() (Outcome, error) { return r.Play(0, cards("4C,4S")) })
	a.False(r.HasStarted())

	// any valid combination holding the 3C may lead
	outcome := mustPlay(t, r, 0, "3S,3C")
	a.Equal(Seat(1), outcome.NextSeat)
	a.Equal(combination.Pair, outcome.Played.Kind)
}

func TestRound_threePassesClearTheTable(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, DefaultOptions(), "3C,5C,5S,7C,7S,7H", "6C,6S,6H,4C,4S")

	mustPlay(t, r, 0, "3C")
	a.False(mustPass(t, r, 1).TableCleared)
	a.False(mustPass(t, r, 2).TableCleared)

	outcome := mustPass(t, r, 3)
	a.True(outcome.TableCleared)
	a.Equal(Seat(0), outcome.NextSeat)
	a.Nil(outcome.Played)
	_, ok := r.LastPlay()
	a.False(ok)

	// the leader may now play any length
	outcome = mustPlay(t, r, 0, "5C,5S")
	last, _ := r.LastPlay()
	a.Equal(deck.CardFromString("5S").Value(), last.Value)
	a.Equal(Seat(1), outcome.NextSeat)

	assertRejected(t, r, ErrLengthMismatch, func() (Outcome, error) { return r.Play(1, cards("6C,6S,6H")) })
	assertRejected(t, r, ErrValueTooLow, func() (Outcome, error) { return r.Play(1, cards("4C,4S")) })
	mustPlay(t, r, 1, "6C,6S")
}

func TestRound_freeLeadAfterClear(t *testing.T) {
	r := setupRound(t, DefaultOptions(), "3C,5C,5S,7C,7S,7H")

	mustPlay(t, r, 0, "3C")
	mustPass(t, r, 1)
	mustPass(t, r, 2)
	mustPass(t, r, 3)

	outcome := mustPlay(t, r, 0, "7C,7S,7H")
	assert.Equal(t, combination.Triple, outcome.Played.Kind)
}

func TestRound_rejections(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, DefaultOptions(), "3C,5C,5S,9D", "6C,6S,6H,4D", "4C,7H")

	assertRejected(t, r, ErrNoActivePlayToPassOn, func() (Outcome, error) { return r.Pass(0) })
	assertRejected(t, r, ErrNotSeatsTurn, func() (Outcome, error) { return r.Play(1, cards("4D")) })
	assertRejected(t, r, ErrInvalidSeat, func() (Outcome, error) { return r.Play(4, cards("3C")) })
	assertRejected(t, r, ErrInvalidSeat, func() (Outcome, error) { return r.Pass(NoSeat) })
	assertRejected(t, r, ErrNotInHand, func() (Outcome, error) { return r.Play(0, cards("3C,6C")) })
	assertRejected(t, r, ErrNotInHand, func() (Outcome, error) { return r.Play(0, cards("3C,3C")) })
	assertRejected(t, r, ErrInvalidCombination, func() (Outcome, error) { return r.Play(0, cards("3C,5C")) })
	assertRejected(t, r, ErrInvalidCombination, func() (Outcome, error) { return r.Play(0, nil) })
	assertRejected(t, r, ErrInvalidCombination, func() (Outcome, error) { return r.Play(0, cards("3C,5C,5S,9D")) })
	assertRejected(t, r, ErrNotInHand, func() (Outcome, error) { return r.Play(0, []deck.Card{{Rank: 13}}) })
	assertRejected(t, r, ErrNotInHand, func() (Outcome, error) { return r.Play(0, []deck.Card{deck.LowestCard, {Suit: -1}}) })

	_, err := r.Play(0, cards("3C,5C"))
	a.True(errors.Is(err, combination.ErrInvalidCombination))

	mustPlay(t, r, 0, "3C")
	assertRejected(t, r, ErrNotInHand, func() (Outcome, error) { return r.Play(1, cards("3C")) })
	assertRejected(t, r, ErrNotSeatsTurn, func() (Outcome, error) { return r.Pass(0) })
	mustPlay(t, r, 1, "4D")
	assertRejected(t, r, ErrValueTooLow, func() (Outcome, error) { return r.Play(2, cards("4C")) })
	mustPlay(t, r, 2, "7H")
}

func TestRound_turnOrderNotEnforced(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, Options{EnforceTurnOrder: false}, "3C,5C", "6C,6S")

	mustPlay(t, r, 0, "3C")
	outcome := mustPlay(t, r, 0, "5C")
	a.Equal(Seat(1), outcome.NextSeat)

	outcome = mustPass(t, r, 2)
	a.False(outcome.TableCleared)
	a.Equal(Seat(3), outcome.NextSeat)
}

func TestRound_goingOut(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, DefaultOptions(), "3C", "4C,4S,9C", "5C,5S,9S")

	outcome := mustPlay(t, r, 0, "3C")
	a.True(outcome.WentOut)
	a.True(outcome.TableCleared)
	a.False(outcome.RoundComplete)
	a.Equal(Seat(1), outcome.NextSeat)
	a.Equal([]Seat{0}, r.Winners())
	a.Equal(0, r.RemainingCount(0))
	_, ok := r.LastPlay()
	a.False(ok, "nobody has to beat a seat that went out")

	// seat 1 leads anything
	mustPlay(t, r, 1, "4C,4S")
	mustPlay(t, r, 2, "5C,5S")
	outcome = mustPass(t, r, 3)
	a.Equal(Seat(1), outcome.NextSeat, "seat 0 is skipped")
	a.Equal(Seat(1), r.NextSeat(3))

	outcome = mustPass(t, r, 1)
	a.True(outcome.TableCleared)
	a.Equal(Seat(2), outcome.NextSeat)

	assertRejected(t, r, ErrNotSeatsTurn, func() (Outcome, error) { return r.Play(0, nil) })
	a.Equal([]Seat{0}, r.Winners())
}

func TestRound_complete(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, DefaultOptions(), "3C", "4C", "5C")

	outcome := mustPlay(t, r, 0, "3C")
	a.False(outcome.RoundComplete)
	a.Equal(Seat(1), outcome.NextSeat)

	outcome = mustPlay(t, r, 1, "4C")
	a.True(outcome.WentOut)
	a.False(outcome.RoundComplete)
	a.False(r.IsComplete())
	a.Equal(Seat(2), outcome.NextSeat)
	a.Equal(Seat(2), r.NextSeat(3))
	_, ok := r.Loser()
	a.False(ok)

	outcome = mustPlay(t, r, 2, "5C")
	a.True(outcome.WentOut)
	a.True(outcome.RoundComplete)
	a.Equal(NoSeat, outcome.NextSeat)
	a.Equal(NoSeat, r.CurrentTurn())
	a.True(r.IsComplete())
	a.Equal(PhaseRoundComplete, r.Phase())
	a.Equal([]Seat{0, 1, 2}, r.Winners())

	loser, ok := r.Loser()
	a.True(ok)
	a.Equal(Seat(3), loser)
	a.Equal(49, r.RemainingCount(3))

	assertRejected(t, r, ErrRoundIsOver, func() (Outcome, error) { return r.Play(3, cards("6C")) })
	assertRejected(t, r, ErrRoundIsOver, func() (Outcome, error) { return r.Pass(3) })
}

func TestRound_twoActiveSeats(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, DefaultOptions(), "3C", "4C", "5C,7C")

	mustPlay(t, r, 0, "3C")
	mustPlay(t, r, 1, "4C")
	a.Equal([]Seat{0, 1}, r.Winners())

	mustPlay(t, r, 2, "5C")
	outcome := mustPass(t, r, 3)
	a.True(outcome.TableCleared, "with two seats left, one pass returns to the leader")
	a.Equal(Seat(2), outcome.NextSeat)
}

func TestRound_ApplyMove(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, DefaultOptions(), "3C,5C")

	outcome, err := r.ApplyMove(0, PlayMove(deck.LowestCard))
	a.NoError(err)
	a.Equal(Seat(1), outcome.NextSeat)

	outcome, err = r.ApplyMove(1, PassMove())
	a.NoError(err)
	a.Equal(Seat(2), outcome.NextSeat)

	_, err = r.ApplyMove(2, Move{Type: MoveType(9)})
	a.EqualError(err, "unknown move: MoveType(9)")
	a.Equal("pass", MovePass.String())
}

func TestRound_DiscardHistory(t *testing.T) {
	a := assert.New(t)
	r := setupRound(t, DefaultOptions(), "3C,5C", "6C")

	mustPlay(t, r, 0, "3C")
	mustPlay(t, r, 1, "6C")

	history := r.DiscardHistory()
	a.Equal(2, len(history))
	a.Equal(Seat(0), history[0].Seat)
	a.Equal("3C", history[0].Cards.String())
	a.Equal(Seat(1), history[1].Seat)

	// the copy cannot change the round
	history[0].Seat = 3
	a.Equal(Seat(0), r.DiscardHistory()[0].Seat)
}

func TestRound_botsPlayToCompletion(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1000} {
		a := assert.New(t)
		r, err := NewRound(quietLogger(), rng.NewSeeded(seed), DefaultOptions())
		a.NoError(err)

		moves := 0
		for !r.IsComplete() {
			seat := r.CurrentTurn()
			_, err := r.ApplyMove(seat, ChooseMove(r, seat))
			if !a.NoError(err, "seed %d", seed) {
				return
			}

			moves++
			if moves > 1000 {
				t.Fatalf("seed %d did not finish", seed)
			}
		}

		winners := r.Winners()
		a.Equal(3, len(winners))
		unique := map[Seat]bool{}
		for _, w := range winners {
			unique[w] = true
			a.Equal(0, r.RemainingCount(w))
		}
		a.Equal(3, len(unique))

		loser, ok := r.Loser()
		a.True(ok)
		a.False(unique[loser])
		a.True(r.RemainingCount(loser) > 0)

		played := 0
		for _, p := range r.DiscardHistory() {
			played += p.Len()
		}
		a.Equal(52, played+r.RemainingCount(loser))
	}
}
