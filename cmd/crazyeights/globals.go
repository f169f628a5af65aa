package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/crazyeights/internal/config"
	"github.com/lox/crazyeights/internal/tui"
)

// Globals are the flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile  string `help:"Log file path, - for stderr (overrides config)"`
	Debug    bool   `help:"Shorthand for --log-level=debug"`
	NoColor  bool   `help:"Disable coloured output"`
}

// loadConfig reads the config file and applies the global overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if g.LogLevel != "" {
		cfg.Game.LogLevel = g.LogLevel
	}
	if g.Debug {
		cfg.Game.LogLevel = "debug"
	}
	if g.LogFile != "" {
		cfg.Game.LogFile = g.LogFile
	}

	tui.SetColor(!g.NoColor)
	return cfg, nil
}

// openLogger opens the configured log file. The returned func closes it.
func openLogger(settings *config.GameSettings) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if settings.LogFile != "-" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})
	return logger, closer, nil
}
