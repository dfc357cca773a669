package room

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"pusoydos/pkg/playable"
)

// Client is a player connected to a dealer
// Whatever carries messages to the player reads from SendChan
type Client struct {
	// PlayerID identifies the player behind the client
	PlayerID int64

	// send is a channel for sending messages to the client
	send chan interface{}

	dealer *Dealer
}

// NewClient returns a new client object
func NewClient(playerID int64) *Client {
	return &Client{
		PlayerID: playerID,
		send:     make(chan interface{}, 256),
	}
}

// Send send a message to the client
// If the client is not keeping up, the message is dropped and false is returned
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("client send buffer is full")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player
func (c *Client) String() string {
	return fmt.Sprintf("player:%d", c.PlayerID)
}

// ReceivedMessage is called when the client sends a message
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
