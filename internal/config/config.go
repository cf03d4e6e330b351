package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
}

// ServerConfig holds transport settings.
type ServerConfig struct {
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

// WebSocketConfig holds the websocket listener settings.
type WebSocketConfig struct {
	Address string `mapstructure:"address"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig holds the match-results database settings. An empty URL
// disables match recording.
type DatabaseConfig struct {
	URL             string `mapstructure:"url"`
	MaxConns        int32  `mapstructure:"max_conns"`
	ConnectTimeoutS int    `mapstructure:"connect_timeout_s"`
}

// GameConfig holds the rule constants and data file locations.
type GameConfig struct {
	BiomeName      string `mapstructure:"biome_name"`
	CNBase         int    `mapstructure:"cn_base"`
	Lmax           int    `mapstructure:"lmax"`
	HandSize       int    `mapstructure:"hand_size"`
	ActionsPerTurn int    `mapstructure:"actions_per_turn"`
	CardsPath      string `mapstructure:"cards_path"`
	DecksPath      string `mapstructure:"decks_path"`
	Seed           int64  `mapstructure:"seed"`
}

// Load reads configuration from the given file, with DOMINION_-prefixed
// environment variables overriding file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("DOMINION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.websocket.address", ":17901")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.connect_timeout_s", 5)
	v.SetDefault("game.biome_name", "Forest")
	v.SetDefault("game.cn_base", 4)
	v.SetDefault("game.lmax", 0) // 0 derives lmax from the catalog
	v.SetDefault("game.hand_size", 8)
	v.SetDefault("game.actions_per_turn", 3)
	v.SetDefault("game.cards_path", "data/cards.csv")
	v.SetDefault("game.decks_path", "data/decks.yaml")
	v.SetDefault("game.seed", 0) // 0 seeds from the clock
}

func (c *Config) validate() error {
	if c.Game.CNBase < 0 {
		return fmt.Errorf("game.cn_base must not be negative")
	}
	if c.Game.HandSize < 1 {
		return fmt.Errorf("game.hand_size must be positive")
	}
	if c.Game.ActionsPerTurn < 1 {
		return fmt.Errorf("game.actions_per_turn must be positive")
	}
	if c.Game.CardsPath == "" || c.Game.DecksPath == "" {
		return fmt.Errorf("game.cards_path and game.decks_path are required")
	}
	return nil
}
