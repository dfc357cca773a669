package main

import (
	"flag"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"os"
	"pusoydos/internal/config"
	"pusoydos/internal/rng"
	"pusoydos/pkg/deck"
	"pusoydos/pkg/playable"
	"pusoydos/pkg/playable/dos"
	"strconv"
	"strings"
)

// a bot game should never come close to this
const maxMoves = 1000

var (
	seed  = flag.Int64("seed", 0, "seed for the deal, overrides the configured seed")
	games = flag.Int("games", 1, "number of games to play")
)

var playerIDs = []int64{1, 2, 3, 4}

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *seed == 0 {
		*seed = cfg.Round.Seed
	}

	opts := dos.DefaultOptions()
	opts.EnforceTurnOrder = cfg.Round.EnforceTurnOrder

	var p deck.Permuter = rng.Crypto{}
	if *seed != 0 {
		p = rng.NewSeeded(*seed)
		logrus.WithField("seed", *seed).Info("using seeded deal")
	}

	losses := make(map[int64]int, len(playerIDs))
	for i := 0; i < *games; i++ {
		result, err := play(p, opts)
		if err != nil {
			logrus.WithError(err).WithField("game", i+1).Fatal("could not finish game")
		}

		losses[result.Loser]++
		logrus.WithFields(logrus.Fields{
			"game":        i + 1,
			"finishOrder": result.FinishOrder,
			"loser":       result.Loser,
		}).Info("game over")
	}

	for _, pid := range playerIDs {
		logrus.WithFields(logrus.Fields{
			"playerID": pid,
			"losses":   losses[pid],
		}).Info("summary")
	}
}

func play(p deck.Permuter, opts dos.Options) (*dos.Result, error) {
	g, err := dos.NewGame(logrus.StandardLogger(), playerIDs, p, opts)
	if err != nil {
		return nil, err
	}

	// rerunning with the same seed must reproduce this hash
	logrus.WithFields(logrus.Fields{
		"seed":     *seed,
		"deckHash": g.Round().DeckHash(),
	}).Info("deck shuffled")

	seatToID := make(map[dos.Seat]int64, len(playerIDs))
	for i, pid := range playerIDs {
		seatToID[dos.Seat(i)] = pid
	}

	printLogs(g)
	for moves := 0; !g.Round().IsComplete(); moves++ {
		if moves > maxMoves {
			logrus.WithField("moves", moves).Panic("bots are stuck")
		}

		seat := g.Round().CurrentTurn()
		move := dos.ChooseMove(g.Round(), seat)

		payload := &playable.PayloadIn{Action: "play", Cards: move.Cards}
		if move.Type == dos.MovePass {
			payload.Action = "pass"
		}

		if _, _, err := g.Action(seatToID[seat], payload); err != nil {
			return nil, err
		}

		printLogs(g)
	}

	details, _ := g.GetEndOfGameDetails()
	return details.Log.(*dos.Result), nil
}

func printLogs(g *dos.Game) {
	for {
		select {
		case messages := <-g.LogChan():
			for _, msg := range messages {
				entry := logrus.WithField("uuid", msg.UUID)
				if len(msg.Cards) > 0 {
					entry = entry.WithField("cards", deck.CardsToString(msg.Cards))
				}

				entry.Info(render(msg))
			}
		default:
			return
		}
	}
}

func render(msg *playable.LogMessage) string {
	out := msg.Message
	for _, pid := range msg.PlayerIDs {
		out = strings.Replace(out, "{}", "player "+strconv.FormatInt(pid, 10), 1)
	}

	return out
}

func setupLogger() {
	logrus.SetOutput(os.Stdout)
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" || !term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
