package room

import (
	"errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pusoydos/pkg/playable"
	"pusoydos/pkg/room/gamefactory"
	"sync"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
	stateGameEnded
)

// ErrGameInProgress is returned when a game is created while another is running
var ErrGameInProgress = errors.New("a game is already in progress")

// ErrNoGame is returned when a game action is sent with no game running
var ErrNoGame = errors.New("there is no game in progress")

// Dealer is responsible for controlling the game at a table
// Every game call happens on the run loop, so a game never sees two actions at once
type Dealer struct {
	// ID identifies the table in logs
	ID string

	logger  logrus.FieldLogger
	clients map[*Client]bool
	seated  []int64
	lock    sync.RWMutex

	// the following must only be touched from the run loop
	game        playable.Playable
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger) *Dealer {
	id := uuid.New().String()
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Dealer{
		ID:            id,
		logger:        logger.WithField("table", id),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// Seated returns the player IDs in the order they will be seated for the next game
func (d *Dealer) Seated() []int64 {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return append([]int64{}, d.seated...)
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendPlayerData()
			case stateGameEvent:
				d.sendGameData()
			case stateGameEnded:
				d.sendGameEnded()
				d.sendPlayerData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client
// The player takes the next seat unless they already hold one
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	if !containsID(d.seated, client.PlayerID) {
		d.seated = append(d.seated, client.PlayerID)
	}
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		if len(d.logMessages) > 0 {
			client.Send(&playable.Response{
				Key:  "logs",
				Data: append([]*playable.LogMessage{}, d.logMessages...),
			})
		}

		if d.game == nil {
			return
		}

		gs, err := d.game.GetPlayerState(client.PlayerID)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			return
		}

		client.Send(gs)
	}
}

// RemoveClient removes a client
// The player gives up their seat once no game is running
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		if d.game != nil {
			// endGame releases the seat
			return
		}

		d.releaseSeats()
	}

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// ReceivedMessage is called when a client sends a message to the dealer
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "createGame":
		d.execInRunLoop <- func() {
			if err := d.createGame(msg); err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(playable.OK(msg.Context))
		}
	case "terminateGame":
		d.execInRunLoop <- func() {
			if d.game == nil {
				c.Send(newErrorResponse(msg.Context, ErrNoGame))
				return
			}

			d.logger.WithField("client", c.String()).Info("game terminated")
			d.endGame()
			c.Send(playable.OK(msg.Context))
		}
	default:
		d.execInRunLoop <- func() {
			d.gameAction(c, msg)
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) createGame(msg *playable.PayloadIn) error {
	if d.game != nil {
		return ErrGameInProgress
	}

	factory, err := gamefactory.Get(msg.Subject)
	if err != nil {
		return err
	}

	game, err := factory.CreateGame(d.logger, d.Seated(), msg.AdditionalData)
	if err != nil {
		return err
	}

	d.game = game
	d.logMessages = nil
	d.drainGameLogs()
	d.stateChanged <- stateGameEvent
	d.stateChanged <- stateClientEvent

	return nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) gameAction(c *Client, msg *playable.PayloadIn) {
	game := d.game
	if game == nil {
		c.Send(newErrorResponse(msg.Context, ErrNoGame))
		return
	}

	response, updateState, err := game.Action(c.PlayerID, msg)
	if err != nil {
		d.logger.WithError(err).WithField("client", c.String()).Debug("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if response != nil {
		response.Context = msg.Context
		c.Send(response)
	}

	d.drainGameLogs()
	if updateState {
		d.stateChanged <- stateGameEvent
	}

	if details, isOver := game.GetEndOfGameDetails(); isOver {
		d.logger.WithField("game", game.Name()).Info("game over")
		d.broadcast(&playable.Response{
			Key:   "gameOver",
			Value: game.Name(),
			Data:  details.Log,
		})

		d.endGame()
	}
}

// endGame clears the game and gives up the seats of players who left while it ran
// NOTE: must only be called from the run loop
func (d *Dealer) endGame() {
	d.game = nil
	d.releaseSeats()
	d.stateChanged <- stateGameEnded
}

// releaseSeats drops every seated player without a connected client
// NOTE: must only be called from the run loop while no game is running
func (d *Dealer) releaseSeats() {
	d.lock.Lock()
	defer d.lock.Unlock()

	connected := make(map[int64]bool, len(d.clients))
	for client := range d.clients {
		connected[client.PlayerID] = true
	}

	seated := make([]int64, 0, len(d.seated))
	for _, id := range d.seated {
		if connected[id] {
			seated = append(seated, id)
		}
	}

	d.seated = seated
}

func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		client.Send(msg)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameEnded() {
	d.broadcast(&playable.Response{
		Key: "gameEnded",
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	if d.game == nil {
		// the game ended before the update went out
		return
	}

	for _, client := range d.Clients() {
		data, err := d.game.GetPlayerState(client.PlayerID)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			continue
		}

		client.Send(data)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendPlayerData() {
	d.broadcast(&playable.Response{
		Key: "clientState",
		Data: &clientState{
			TableID: d.ID,
			Seated:  d.Seated(),
			InGame:  d.game != nil,
		},
	})
}

func containsID(ids []int64, id int64) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}

	return false
}
