package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/crazyeights/internal/game"
	"github.com/lox/crazyeights/internal/tui"
)

// ValidateCmd checks that a saved game loads and conserves the deck
type ValidateCmd struct {
	File string `arg:"" type:"existingfile" help:"Saved game JSON file"`

	stdout io.Writer `kong:"-"`
}

func (cmd *ValidateCmd) Run(globals *Globals) error {
	out := cmd.stdout
	if out == nil {
		out = os.Stdout
	}
	tui.SetColor(!globals.NoColor)

	state, err := game.LoadFile(cmd.File)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s is a valid saved game\n", cmd.File)
	if state.ID != "" {
		fmt.Fprintf(out, "  Game:          %s (started %s)\n", state.ID, state.ID.Time().Format(time.RFC1123))
	}
	fmt.Fprintf(out, "  Next play:     %s\n", tui.CardString(state.NextPlay))
	fmt.Fprintf(out, "  Cards in deck: %d\n", len(state.Deck))
	fmt.Fprintf(out, "  Discard pile:  %d\n", len(state.Discard))
	for _, seat := range game.Seats {
		fmt.Fprintf(out, "  %-13s  %d\n", seat.String()+" hand:", len(state.Hand(seat)))
	}
	if reason, over := state.Over(); over {
		fmt.Fprintf(out, "  Already over:  %s\n", reason)
	}
	return nil
}
