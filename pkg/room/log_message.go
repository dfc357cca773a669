package room

import (
	"pusoydos/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent log messages for clients that join late
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// drainGameLogs moves any pending game log messages to the buffer and out to the clients
// Note: this must only be called from within the run loop
func (d *Dealer) drainGameLogs() {
	if d.game == nil {
		return
	}

	for {
		select {
		case messages := <-d.game.LogChan():
			d.addLogMessages(messages)
			d.broadcast(&playable.Response{
				Key:  "logs",
				Data: messages,
			})
		default:
			return
		}
	}
}
