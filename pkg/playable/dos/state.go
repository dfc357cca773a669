package dos

import "pusoydos/pkg/deck"

// RoundState is the public view of a round
// This is safe for all seats to see
type RoundState struct {
	Phase          Phase         `json:"phase"`
	FirstTurnSeat  Seat          `json:"firstTurnSeat"`
	CurrentTurn    Seat          `json:"currentTurn"`
	HasStarted     bool          `json:"hasStarted"`
	RemainingCount [NumSeats]int `json:"remainingCount"`
	LastPlay       *PlayState    `json:"lastPlay"`
	DiscardHistory []*PlayState  `json:"discardHistory"`
	Winners        []Seat        `json:"winners"`
}

// PlayState is the public view of a play
type PlayState struct {
	Seat  Seat        `json:"seat"`
	Kind  string      `json:"kind"`
	Cards []deck.Card `json:"cards"`
	Value int         `json:"value"`
}

func newPlayState(p Play) *PlayState {
	return &PlayState{
		Seat:  p.Seat,
		Kind:  p.Kind.String(),
		Cards: p.Cards.Clone(),
		Value: p.Value,
	}
}

// State returns the public view of the round
func (r *Round) State() *RoundState {
	history := make([]*PlayState, len(r.discardHistory))
	for i, p := range r.discardHistory {
		history[i] = newPlayState(p)
	}

	var lastPlay *PlayState
	if r.lastPlay != nil {
		lastPlay = newPlayState(*r.lastPlay)
	}

	return &RoundState{
		Phase:          r.Phase(),
		FirstTurnSeat:  r.firstTurnSeat,
		CurrentTurn:    r.currentTurn,
		HasStarted:     r.hasStarted,
		RemainingCount: r.remainingCount,
		LastPlay:       lastPlay,
		DiscardHistory: history,
		Winners:        r.Winners(),
	}
}
