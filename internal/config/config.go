package config

import (
	"errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"os"
	"pusoydos/internal/util"
)

// Config provides configuration for the dos engine and its tools
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log" envconfig:"log"`
	Round struct {
		// Seed for the deck shuffle. 0 means use the crypto random source
		Seed             int64 `yaml:"seed" envconfig:"seed"`
		EnforceTurnOrder bool  `yaml:"enforceTurnOrder" envconfig:"enforce_turn_order"`
	} `yaml:"round" envconfig:"round"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Round.EnforceTurnOrder = true

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("DOS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	} else {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("dos", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
