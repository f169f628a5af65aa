package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lox/crazyeights/internal/randutil"
	"github.com/lox/crazyeights/internal/simulator"
)

// SimulateCmd plays bots against each other and prints aggregate statistics
type SimulateCmd struct {
	Games    int           `short:"n" default:"1000" help:"Number of games to play"`
	Player   string        `default:"clever" enum:"${bots}" help:"Bot in the player seat"`
	Computer string        `help:"Bot in the computer seat (defaults to the configured opponent)"`
	Seed     *int64        `help:"Base seed; each game derives its own from it"`
	HandSize int           `help:"Cards dealt to each hand (overrides config)"`
	Workers  int           `default:"0" help:"Games played in parallel (0 = number of CPUs)"`
	Timeout  time.Duration `default:"30s" help:"Per-game timeout"`

	stdout io.Writer `kong:"-"`
}

func (cmd *SimulateCmd) Run(globals *Globals) error {
	out := cmd.stdout
	if out == nil {
		out = os.Stdout
	}

	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	if cmd.Computer != "" {
		cfg.Game.Opponent = cmd.Computer
	}
	if cmd.HandSize != 0 {
		cfg.Game.HandSize = cmd.HandSize
	}
	if cmd.Seed != nil {
		cfg.Game.Seed = cmd.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.Game)
	if err != nil {
		return err
	}
	defer closeLog()

	seed, fixed := cfg.GetSeed()
	if !fixed {
		seed, _ = randutil.Seed(nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := simulator.New(simulator.Config{
		Games:    cmd.Games,
		Player:   cmd.Player,
		Computer: cfg.Game.Opponent,
		Seed:     seed,
		HandSize: cfg.Game.HandSize,
		Factors:  cfg.Factors(),
		Workers:  cmd.Workers,
		Timeout:  cmd.Timeout,
		Logger:   logger,
	})

	logger.Info("Starting simulation",
		"games", cmd.Games,
		"player", cmd.Player,
		"computer", cfg.Game.Opponent,
		"seed", seed)

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	elapsed := time.Since(start)

	logger.Info("Simulation complete", "games", stats.Games, "duration", elapsed)

	simulator.PrintSummary(out, stats, cmd.Player, cfg.Game.Opponent)
	fmt.Fprintf(out, "\nSeed: %d (%s)\n", seed, elapsed.Round(time.Millisecond))
	return nil
}
