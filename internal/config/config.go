// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Frontend selects the chat surface the bot attaches to.
const (
	FrontendLocal  = "local"
	FrontendTwitch = "twitch"
)

// Twitch holds the Twitch chat credentials and chat behavior knobs.
type Twitch struct {
	Nick          string   `env:"ADBOT_TWITCH_NICK"`
	Channel       string   `env:"ADBOT_TWITCH_CHANNEL"`
	Token         string   `env:"ADBOT_TWITCH_TOKEN"`
	RefreshToken  string   `env:"ADBOT_TWITCH_REFRESH_TOKEN"`
	ClientID      string   `env:"ADBOT_TWITCH_CLIENT_ID"`
	ClientSecret  string   `env:"ADBOT_TWITCH_CLIENT_SECRET"`
	CommandPrefix string   `env:"ADBOT_TWITCH_COMMAND_PREFIX" envDefault:"!adbot"`
	ExcludedUsers []string `env:"ADBOT_TWITCH_EXCLUDED_USERS" envSeparator:","`
}

// Config holds application configuration loaded from environment variables.
type Config struct {
	GameConfigPath string `env:"ADBOT_GAME_CONFIG" envDefault:"game_config.json"`
	StateDir       string `env:"ADBOT_STATE_DIR" envDefault:"state"`
	Frontend       string `env:"ADBOT_FRONTEND" envDefault:"local"`
	ControlAddr    string `env:"ADBOT_CONTROL_ADDR" envDefault:"127.0.0.1:7455"`
	MetricsAddr    string `env:"ADBOT_METRICS_ADDR" envDefault:":9105"`
	Twitch         Twitch
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Frontend {
	case FrontendLocal:
	case FrontendTwitch:
		if c.Twitch.Nick == "" || c.Twitch.Channel == "" || c.Twitch.Token == "" {
			return fmt.Errorf("twitch frontend requires ADBOT_TWITCH_NICK, ADBOT_TWITCH_CHANNEL and ADBOT_TWITCH_TOKEN")
		}
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}
