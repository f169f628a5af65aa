package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/crazyeights/internal/bot"
	"github.com/lox/crazyeights/internal/game"
)

// DefaultFile is the config file read when --config is not given
const DefaultFile = "crazyeights.hcl"

// Config represents the complete game configuration. Both blocks are
// optional in the file.
type Config struct {
	Game   *GameSettings   `hcl:"game,block"`
	Clever *CleverSettings `hcl:"clever,block"`
}

// GameSettings contains table and logging settings
type GameSettings struct {
	Opponent string `hcl:"opponent,optional"`
	HandSize int    `hcl:"hand_size,optional"`
	Seed     *int64 `hcl:"seed,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// CleverSettings tunes the card-counting bot
type CleverSettings struct {
	LongTerm  *float64 `hcl:"long_term,optional"`
	ShortTerm *float64 `hcl:"short_term,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	factors := bot.DefaultFactors()
	return &Config{
		Game: &GameSettings{
			Opponent: bot.Clever,
			HandSize: game.DefaultHandSize,
			LogLevel: "info",
			LogFile:  "crazyeights.log",
		},
		Clever: &CleverSettings{
			LongTerm:  &factors.LongTerm,
			ShortTerm: &factors.ShortTerm,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.Game == nil {
		config.Game = defaults.Game
	}
	if config.Game.Opponent == "" {
		config.Game.Opponent = defaults.Game.Opponent
	}
	if config.Game.HandSize == 0 {
		config.Game.HandSize = defaults.Game.HandSize
	}
	if config.Game.LogLevel == "" {
		config.Game.LogLevel = defaults.Game.LogLevel
	}
	if config.Game.LogFile == "" {
		config.Game.LogFile = defaults.Game.LogFile
	}

	if config.Clever == nil {
		config.Clever = defaults.Clever
	}
	if config.Clever.LongTerm == nil {
		config.Clever.LongTerm = defaults.Clever.LongTerm
	}
	if config.Clever.ShortTerm == nil {
		config.Clever.ShortTerm = defaults.Clever.ShortTerm
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !slices.Contains(bot.Names, c.Game.Opponent) {
		return fmt.Errorf("invalid opponent: %s", c.Game.Opponent)
	}

	if c.Game.HandSize < 1 || c.Game.HandSize > game.MaxHandSize {
		return fmt.Errorf("hand size must be between 1 and %d", game.MaxHandSize)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Game.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.Game.LogLevel)
	}

	factors := c.Factors()
	if factors.LongTerm < 0 || factors.ShortTerm < 0 {
		return fmt.Errorf("clever factors cannot be negative")
	}
	if factors == (bot.Factors{}) {
		return fmt.Errorf("clever factors cannot both be zero")
	}

	return nil
}

// Factors returns the configured CleverBot weighting
func (c *Config) Factors() bot.Factors {
	return bot.Factors{LongTerm: *c.Clever.LongTerm, ShortTerm: *c.Clever.ShortTerm}
}

// GetSeed returns the configured seed, if any
func (c *Config) GetSeed() (int64, bool) {
	if c.Game.Seed == nil {
		return 0, false
	}
	return *c.Game.Seed, true
}
