package dos

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"pusoydos/pkg/deck"
	"pusoydos/pkg/playable"
)

// Game adapts a Round to the playable.Playable interface
// Player IDs are seated in the order given
type Game struct {
	round    *Round
	seatToID [NumSeats]int64
	idToSeat map[int64]Seat
	logger   logrus.FieldLogger
	logChan  chan []*playable.LogMessage
}

// Result is the end of game log
type Result struct {
	FinishOrder []int64 `json:"finishOrder"`
	Loser       int64   `json:"loser"`
}

// Response is the response format for this game
type Response struct {
	RoundState *RoundState `json:"roundState"`
	// Data below is player specific, and must only be shown to the intended player
	Seat Seat        `json:"seat"`
	Hand []deck.Card `json:"hand"`
}

// NewGame deals a new round for exactly four players
func NewGame(logger logrus.FieldLogger, playerIDs []int64, p deck.Permuter, opts Options) (*Game, error) {
	if len(playerIDs) != NumSeats {
		return nil, PlayerCountError(len(playerIDs))
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	g := &Game{
		idToSeat: make(map[int64]Seat, NumSeats),
		logger:   logger,
		logChan:  make(chan []*playable.LogMessage, 256),
	}

	for i, pid := range playerIDs {
		if _, found := g.idToSeat[pid]; found {
			return nil, fmt.Errorf("player %d is seated twice", pid)
		}

		g.idToSeat[pid] = Seat(i)
		g.seatToID[i] = pid
	}

	round, err := NewRound(logger, p, opts)
	if err != nil {
		return nil, err
	}

	g.round = round

	first := g.seatToID[round.FirstTurnSeat()]
	g.sendLogMessages(
		playable.NewLogMessage(nil, nil, "New game of Dos started"),
		playable.NewLogMessage([]int64{first}, []deck.Card{deck.LowestCard}, "{} holds the 3C and leads"),
	)

	return g, nil
}

// Round returns the underlying round
func (g *Game) Round() *Round {
	return g.round
}

// Name returns "dos"
func (g *Game) Name() string {
	return "dos"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Action performs an action
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	seat, ok := g.idToSeat[playerID]
	if !ok {
		return nil, false, ErrPlayerNotFound
	}

	log := g.logger.WithField("playerID", playerID)

	var move Move
	switch message.Action {
	case "play":
		cards, err := payloadCards(message)
		if err != nil {
			return nil, false, err
		}

		move = PlayMove(cards...)
	case "pass":
		move = PassMove()
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	log.WithField("move", move.Type).Debug("player action")
	outcome, err := g.round.ApplyMove(seat, move)
	if err != nil {
		return nil, false, err
	}

	g.sendLogMessages(g.outcomeLogMessages(playerID, outcome)...)
	return playable.OK(message.Context), true, nil
}

// payloadCards returns the cards in the payload
// Hosts that cannot send a card list may send them as text in additionalData.cards, i.e., "5C,5S"
func payloadCards(message *playable.PayloadIn) ([]deck.Card, error) {
	if len(message.Cards) > 0 {
		return message.Cards, nil
	}

	text, ok := message.AdditionalData.GetString("cards")
	if !ok {
		return nil, nil
	}

	return deck.ParseCards(text)
}

func (g *Game) outcomeLogMessages(playerID int64, outcome Outcome) []*playable.LogMessage {
	messages := make([]*playable.LogMessage, 0, 3)
	if outcome.Played != nil {
		messages = append(messages, playable.NewLogMessage([]int64{playerID}, outcome.Played.Cards.Clone(), "{} played a %s", outcome.Played.Kind))
	} else {
		messages = append(messages, playable.SimpleLogMessage(playerID, "{} passed"))
	}

	if outcome.WentOut {
		messages = append(messages, playable.SimpleLogMessage(playerID, "{} is out of cards"))
	}

	if outcome.RoundComplete {
		loser, _ := g.round.Loser()
		messages = append(messages, playable.SimpleLogMessage(g.seatToID[loser], "The round is over and {} lost"))
	} else if outcome.TableCleared {
		messages = append(messages, playable.SimpleLogMessage(g.seatToID[outcome.NextSeat], "{} leads"))
	}

	return messages
}

// GetPlayerState returns the state for the given player
// Players who are not seated only see the public state
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	seat, ok := g.idToSeat[playerID]
	if !ok {
		seat = NoSeat
	}

	var hand []deck.Card
	if seat.Valid() {
		hand = g.round.Hand(seat)
	}

	return &playable.Response{
		Key:   "game",
		Value: "dos",
		Data: &Response{
			RoundState: g.round.State(),
			Seat:       seat,
			Hand:       hand,
		},
	}, nil
}

// GetEndOfGameDetails returns details at the end of the game
// Dos has no stakes, so every balance adjustment is zero
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if !g.round.IsComplete() {
		return nil, false
	}

	result := &Result{}
	for _, seat := range g.round.Winners() {
		result.FinishOrder = append(result.FinishOrder, g.seatToID[seat])
	}

	loser, _ := g.round.Loser()
	result.Loser = g.seatToID[loser]

	adjustments := make(map[int64]int, NumSeats)
	for _, pid := range g.seatToID {
		adjustments[pid] = 0
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                result,
	}, true
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan == nil {
		return
	}

	select {
	case g.logChan <- msg:
	default:
		g.logger.WithField("messages", len(msg)).Warn("log channel is full, dropping messages")
	}
}
