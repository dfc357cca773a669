package gamefactory

import (
	"errors"
	"github.com/sirupsen/logrus"
	"pusoydos/internal/config"
	"pusoydos/internal/rng"
	"pusoydos/pkg/deck"
	"pusoydos/pkg/playable"
	"pusoydos/pkg/playable/dos"
)

type dosFactory struct{}

func (d dosFactory) CreateGame(logger logrus.FieldLogger, playerIDs []int64, additionalData playable.AdditionalData) (playable.Playable, error) {
	opts, seed, err := d.options(additionalData)
	if err != nil {
		return nil, err
	}

	var p deck.Permuter = rng.Crypto{}
	if seed != 0 {
		p = rng.NewSeeded(seed)
	}

	return dos.NewGame(logger, playerIDs, p, opts)
}

func (d dosFactory) Details(additionalData playable.AdditionalData) (string, error) {
	if _, _, err := d.options(additionalData); err != nil {
		return "", err
	}

	return "Dos", nil
}

// options starts from the configured round settings and applies any overrides
func (dosFactory) options(additionalData playable.AdditionalData) (dos.Options, int64, error) {
	cfg := config.Instance()
	opts := dos.DefaultOptions()
	opts.EnforceTurnOrder = cfg.Round.EnforceTurnOrder
	seed := cfg.Round.Seed

	if _, found := additionalData["seed"]; found {
		s, ok := additionalData.GetInt64("seed")
		if !ok {
			return opts, 0, errors.New("seed must be a number")
		}

		seed = s
	}

	if _, found := additionalData["enforceTurnOrder"]; found {
		enforce, ok := additionalData.GetBool("enforceTurnOrder")
		if !ok {
			return opts, 0, errors.New("enforceTurnOrder must be a boolean")
		}

		opts.EnforceTurnOrder = enforce
	}

	return opts, seed, nil
}
