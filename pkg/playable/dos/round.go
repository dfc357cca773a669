package dos

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"pusoydos/pkg/combination"
	"pusoydos/pkg/deck"
)

// Phase is the lifecycle stage of a round
type Phase string

// phase constants
const (
	PhaseAwaitingFirstLead Phase = "awaitingFirstLead"
	PhaseInPlay            Phase = "inPlay"
	PhaseRoundComplete     Phase = "roundComplete"
)

// Round is the authoritative state of a single round of dos
// A round is not safe for concurrent use. Callers must serialize moves
type Round struct {
	options Options
	logger  logrus.FieldLogger
	// deckHash fingerprints the shuffled deck, empty for hand-built rounds
	deckHash string

	hands          [NumSeats]deck.Hand
	remainingCount [NumSeats]int

	firstTurnSeat Seat
	currentTurn   Seat
	hasStarted    bool

	// every accepted play, oldest first
	discardHistory []Play
	// lastPlay is nil when the table is clear and a free lead is due
	lastPlay *Play
	// winners in the order they emptied their hands
	winners []Seat
}

// NewRound shuffles a fresh deck with p and deals 13 cards to each seat
func NewRound(logger logrus.FieldLogger, p deck.Permuter, opts Options) (*Round, error) {
	d := deck.New()
	d.Shuffle(p)
	deckHash := d.HashCode()

	var hands [NumSeats]deck.Hand
	for i := 0; d.CanDraw(1); i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		hands[i%NumSeats].AddCard(card)
	}

	r, err := newRound(logger, hands, opts)
	if err != nil {
		return nil, err
	}

	r.deckHash = deckHash
	r.logger.WithField("deckHash", deckHash).Debug("deck shuffled")

	return r, nil
}

// newRound builds a round from hands that must hold the full deck between them
func newRound(logger logrus.FieldLogger, hands [NumSeats]deck.Hand, opts Options) (*Round, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := &Round{
		options:       opts,
		logger:        logger,
		firstTurnSeat: NoSeat,
	}

	seen := make(map[deck.Card]bool, deck.NumCards)
	for seat, hand := range hands {
		for _, card := range hand {
			if seen[card] {
				return nil, fmt.Errorf("%w: %s dealt twice", ErrInvalidDeal, card)
			}

			seen[card] = true
			if card == deck.LowestCard {
				r.firstTurnSeat = Seat(seat)
			}
		}

		r.hands[seat] = hand.Sorted()
		r.remainingCount[seat] = len(hand)
	}

	if len(seen) != deck.NumCards {
		return nil, fmt.Errorf("%w: dealt %d cards", ErrInvalidDeal, len(seen))
	}

	r.currentTurn = r.firstTurnSeat

	r.logger.WithFields(logrus.Fields{
		"firstTurnSeat": r.firstTurnSeat,
	}).Debug("round dealt")

	return r, nil
}

// DeckHash returns the hash of the shuffled deck the round was dealt from
// The same seed always produces the same hash
func (r *Round) DeckHash() string {
	return r.deckHash
}

// Phase returns the lifecycle stage of the round
func (r *Round) Phase() Phase {
	switch {
	case r.IsComplete():
		return PhaseRoundComplete
	case r.hasStarted:
		return PhaseInPlay
	default:
		return PhaseAwaitingFirstLead
	}
}

// FirstTurnSeat returns the seat that was dealt the 3 of clubs
func (r *Round) FirstTurnSeat() Seat {
	return r.firstTurnSeat
}

// CurrentTurn returns the seat that acts next, or NoSeat if the round is complete
func (r *Round) CurrentTurn() Seat {
	return r.currentTurn
}

// HasStarted returns true once the first play of the round has been accepted
func (r *Round) HasStarted() bool {
	return r.hasStarted
}

// Hand returns a copy of the seat's hand in ascending value order
func (r *Round) Hand(seat Seat) deck.Hand {
	if !seat.Valid() {
		return nil
	}

	return r.hands[seat].Clone()
}

// RemainingCount returns the number of cards the seat still holds
func (r *Round) RemainingCount(seat Seat) int {
	if !seat.Valid() {
		return 0
	}

	return r.remainingCount[seat]
}

// LastPlay returns the live play on the table
// If the table is clear, the second value is false
func (r *Round) LastPlay() (Play, bool) {
	if r.lastPlay == nil {
		return Play{}, false
	}

	return *r.lastPlay, true
}

// DiscardHistory returns every accepted play, oldest first
func (r *Round) DiscardHistory() []Play {
	return append([]Play{}, r.discardHistory...)
}

// Winners returns the seats that have emptied their hands, in finishing order
func (r *Round) Winners() []Seat {
	return append([]Seat{}, r.winners...)
}

// IsComplete returns true once three seats have emptied their hands
func (r *Round) IsComplete() bool {
	return len(r.winners) >= NumSeats-1
}

// Loser returns the seat still holding cards once the round is complete
func (r *Round) Loser() (Seat, bool) {
	if !r.IsComplete() {
		return NoSeat, false
	}

	for seat := Seat(0); seat < NumSeats; seat++ {
		if !r.isWinner(seat) {
			return seat, true
		}
	}

	panic("complete round has no loser")
}

func (r *Round) isWinner(seat Seat) bool {
	for _, w := range r.winners {
		if w == seat {
			return true
		}
	}

	return false
}

// NextSeat walks the rotation forward from seat, skipping seats that have gone out
// It returns NoSeat if no other seat is active
func (r *Round) NextSeat(seat Seat) Seat {
	for i := 1; i <= NumSeats; i++ {
		next := Seat((int(seat) + i) % NumSeats)
		if !r.isWinner(next) {
			return next
		}
	}

	return NoSeat
}

// checkMover returns an error if the seat may not move at all right now
func (r *Round) checkMover(seat Seat) error {
	if r.IsComplete() {
		return ErrRoundIsOver
	}

	if !seat.Valid() {
		return ErrInvalidSeat
	}

	if r.options.EnforceTurnOrder && seat != r.currentTurn {
		return ErrNotSeatsTurn
	}

	return nil
}

// Validate returns the scored combination if the seat may play the cards
// It never changes the round
func (r *Round) Validate(seat Seat, cards []deck.Card) (combination.Combination, error) {
	if err := r.checkMover(seat); err != nil {
		return combination.Combination{}, err
	}

	if !r.hands[seat].HasCards(cards) {
		return combination.Combination{}, ErrNotInHand
	}

	combo, err := combination.Evaluate(cards)
	if err != nil {
		return combination.Combination{}, err
	}

	if r.lastPlay == nil {
		if !r.hasStarted && !combo.Cards.HasCard(deck.LowestCard) {
			return combination.Combination{}, ErrMustLeadWithLowestCard
		}

		return combo, nil
	}

	if combo.Len() != r.lastPlay.Len() {
		return combination.Combination{}, ErrLengthMismatch
	}

	if combo.Value <= r.lastPlay.Value {
		return combination.Combination{}, ErrValueTooLow
	}

	return combo, nil
}

// Play plays the cards for the seat
// A rejected play leaves the round untouched
func (r *Round) Play(seat Seat, cards []deck.Card) (Outcome, error) {
	log := r.logger.WithFields(logrus.Fields{
		"seat":  seat,
		"cards": deck.CardsToString(cards),
	})

	combo, err := r.Validate(seat, cards)
	if err != nil {
		log.WithError(err).Debug("play rejected")
		return Outcome{}, err
	}

	play := Play{Seat: seat, Combination: combo}
	r.hands[seat] = r.hands[seat].Without(combo.Cards)
	r.remainingCount[seat] = len(r.hands[seat])
	r.discardHistory = append(r.discardHistory, play)
	r.lastPlay = &play
	r.hasStarted = true

	outcome := Outcome{Seat: seat, Played: &play}

	if len(r.hands[seat]) == 0 {
		// nobody can beat a seat that went out, so the next seat leads
		r.winners = append(r.winners, seat)
		r.lastPlay = nil
		outcome.WentOut = true
		outcome.TableCleared = true
	}

	r.advance(seat, &outcome)
	r.checkInvariants()

	log.WithFields(logrus.Fields{
		"kind":     combo.Kind,
		"value":    combo.Value,
		"nextSeat": outcome.NextSeat,
	}).Debug("play accepted")

	return outcome, nil
}

// Pass passes the turn for the seat
// If the play comes back around to the seat that made it, the table is cleared
func (r *Round) Pass(seat Seat) (Outcome, error) {
	log := r.logger.WithField("seat", seat)

	if err := r.checkMover(seat); err != nil {
		log.WithError(err).Debug("pass rejected")
		return Outcome{}, err
	}

	if r.lastPlay == nil {
		log.WithError(ErrNoActivePlayToPassOn).Debug("pass rejected")
		return Outcome{}, ErrNoActivePlayToPassOn
	}

	outcome := Outcome{Seat: seat}
	if r.NextSeat(seat) == r.lastPlay.Seat {
		r.lastPlay = nil
		outcome.TableCleared = true
	}

	r.advance(seat, &outcome)
	r.checkInvariants()

	log.WithFields(logrus.Fields{
		"tableCleared": outcome.TableCleared,
		"nextSeat":     outcome.NextSeat,
	}).Debug("pass accepted")

	return outcome, nil
}

// advance moves the turn along after an accepted move by seat
func (r *Round) advance(seat Seat, outcome *Outcome) {
	if r.IsComplete() {
		r.currentTurn = NoSeat
		outcome.NextSeat = NoSeat
		outcome.RoundComplete = true

		loser, _ := r.Loser()
		r.logger.WithFields(logrus.Fields{
			"winners": r.winners,
			"loser":   loser,
		}).Info("round complete")
		return
	}

	r.currentTurn = r.NextSeat(seat)
	outcome.NextSeat = r.currentTurn
}

// checkInvariants panics if the cards or winners no longer add up
func (r *Round) checkInvariants() {
	seen := make(map[deck.Card]bool, deck.NumCards)
	count := func(cards deck.Hand) {
		for _, card := range cards {
			if seen[card] {
				panic(fmt.Sprintf("card %s is in two places", card))
			}

			seen[card] = true
		}
	}

	for seat, hand := range r.hands {
		if r.remainingCount[seat] != len(hand) {
			panic(fmt.Sprintf("seat %d remaining count %d does not match hand %d", seat, r.remainingCount[seat], len(hand)))
		}

		count(hand)
	}

	for _, play := range r.discardHistory {
		count(play.Cards)
	}

	if len(seen) != deck.NumCards {
		panic(fmt.Sprintf("expected %d cards, found %d", deck.NumCards, len(seen)))
	}

	for _, w := range r.winners {
		if len(r.hands[w]) != 0 {
			panic(fmt.Sprintf("winner %s still holds cards", w))
		}
	}
}
