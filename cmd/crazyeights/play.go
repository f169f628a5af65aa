package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lox/crazyeights/internal/bot"
	"github.com/lox/crazyeights/internal/game"
	"github.com/lox/crazyeights/internal/gameid"
	"github.com/lox/crazyeights/internal/randutil"
	"github.com/lox/crazyeights/internal/tui"
)

// PlayCmd plays one interactive game against a computer opponent
type PlayCmd struct {
	Opponent   string `short:"o" help:"Computer opponent: lazy, random or clever (overrides config)"`
	HandSize   int    `help:"Cards dealt to each hand (overrides config)"`
	Seed       *int64 `help:"Seed for a reproducible deal (overrides config)"`
	Load       string `type:"existingfile" help:"Resume a saved game from a JSON file"`
	SaveOnExit string `help:"Save the game to this file if you quit before it ends"`
	Reveal     bool   `help:"Show the computer's hand"`
	Plain      bool   `help:"Use numbered prompts instead of the interactive picker"`
	History    bool   `help:"Print every turn when the game ends"`

	stdin  io.Reader `kong:"-"`
	stdout io.Writer `kong:"-"`
}

func (cmd *PlayCmd) Run(globals *Globals) error {
	in, out := cmd.stdin, cmd.stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	if cmd.Opponent != "" {
		cfg.Game.Opponent = cmd.Opponent
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
	rng := randutil.New(seed)
	logger.Info("Seeded game", "seed", seed, "fixed", fixed)

	var state *game.State
	if cmd.Load != "" {
		state, err = game.LoadFile(cmd.Load)
		if err != nil {
			return fmt.Errorf("failed to load game: %w", err)
		}
		logger.Info("Loaded saved game", "file", cmd.Load)
	} else {
		state, err = game.NewState(rng, cfg.Game.HandSize)
		if err != nil {
			return err
		}
	}

	if state.ID == "" {
		if state.ID, err = gameid.New(); err != nil {
			return err
		}
	}

	computer, err := bot.New(cfg.Game.Opponent, bot.Options{Factors: cfg.Factors(), Rng: rng}, logger)
	if err != nil {
		return err
	}
	human := tui.NewHumanAgent(out, cmd.prompter(in, out), logger, tui.WithReveal(cmd.Reveal))

	history := game.NewHistory()
	engine, err := game.NewEngine(state, human, computer, logger, game.WithRecorder(history))
	if err != nil {
		return err
	}

	result, err := engine.Run(context.Background())
	if errors.Is(err, tui.ErrQuit) {
		logger.Info("Player quit", "turns", len(history.Turns))
		fmt.Fprintln(out, "\nGame abandoned.")
		if cmd.SaveOnExit != "" {
			if err := game.SaveFile(cmd.SaveOnExit, engine.State()); err != nil {
				return fmt.Errorf("failed to save game: %w", err)
			}
			fmt.Fprintf(out, "Saved to %s, resume with --load %s\n", cmd.SaveOnExit, cmd.SaveOnExit)
		}
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("Game finished", "seed", seed, "result", result)
	if cmd.History {
		fmt.Fprintln(out)
		fmt.Fprint(out, history.Summary())
	}
	if !fixed && cmd.Load == "" {
		fmt.Fprintf(out, "\nReplay this deal with --seed %d\n", seed)
	}
	return nil
}

// prompter picks the interactive picker on a terminal and numbered line
// prompts everywhere else
func (cmd *PlayCmd) prompter(in io.Reader, out io.Writer) tui.Prompter {
	if f, ok := in.(*os.File); ok && !cmd.Plain && isatty.IsTerminal(f.Fd()) {
		return tui.NewTeaPrompter(in, out)
	}
	return tui.NewLinePrompter(in, out)
}
