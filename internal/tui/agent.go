package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/crazyeights/internal/deck"
	"github.com/lox/crazyeights/internal/game"
)

// HumanAgent lets a person play a seat from the terminal
type HumanAgent struct {
	out      io.Writer
	prompter Prompter
	reveal   bool
	logger   *log.Logger
}

// AgentOption configures a HumanAgent
type AgentOption func(*HumanAgent)

// WithReveal shows the opponent's cards on the table
func WithReveal(reveal bool) AgentOption {
	return func(a *HumanAgent) {
		a.reveal = reveal
	}
}

// NewHumanAgent creates an agent that draws to out and asks prompter for
// every decision
func NewHumanAgent(out io.Writer, prompter Prompter, logger *log.Logger, opts ...AgentOption) *HumanAgent {
	a := &HumanAgent{
		out:      out,
		prompter: prompter,
		logger:   logger.WithPrefix("human"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *HumanAgent) OnReady(v game.View) {
	fmt.Fprintln(a.out, RenderTable(v, a.reveal))
	fmt.Fprintln(a.out, SuccessStyle.Render(seatNames[v.Seat]+"'s turn..."))
}

func (a *HumanAgent) OnPlay(v game.View, matches []deck.Card) (deck.Card, error) {
	options := make([]string, len(matches))
	for i, c := range matches {
		options[i] = CardString(c)
	}

	idx, err := a.prompter.Choose("Choose the card you would like to play", options)
	if err != nil {
		return deck.Card{}, err
	}

	a.logger.Debug("Human chose card", "card", matches[idx])
	return matches[idx], nil
}

func (a *HumanAgent) OnChangeSuit(v game.View) (deck.Suit, error) {
	options := make([]string, len(deck.Suits))
	for i, s := range deck.Suits {
		options[i] = SuitString(s)
	}

	idx, err := a.prompter.Choose("CRAZY EIGHTS! You played an 8, choose a suit", options)
	if err != nil {
		return 0, err
	}

	a.logger.Debug("Human named suit", "suit", deck.Suits[idx].Name())
	return deck.Suits[idx], nil
}

func (a *HumanAgent) OnDraw(v game.View, drawn []deck.Card, played deck.Card) {
	fmt.Fprintln(a.out, RenderDraw(drawn, played))
}

func (a *HumanAgent) OnBeforeWitness(v game.View) {
	fmt.Fprintln(a.out, InfoStyle.Render(seatNames[v.Seat.Other()]+"'s turn..."))
}

func (a *HumanAgent) OnWitness(v game.View, w game.Witness) {
	fmt.Fprintln(a.out, RenderWitness(w))
}

func (a *HumanAgent) OnGameOver(v game.View, r game.Result) {
	fmt.Fprintln(a.out, RenderTable(v, true))
	fmt.Fprintln(a.out, RenderGameOver(v, r))
}
