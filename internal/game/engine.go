package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/crazyeights/internal/deck"
)

// Reason explains why a game ended
type Reason int

const (
	// HandEmptied means a seat played its last card
	HandEmptied Reason = iota + 1
	// DeckEmpty means the deck was empty at the start of a turn
	DeckEmpty
	// DeckExhausted means the deck ran out during a forced draw without
	// turning up a playable card
	DeckExhausted
)

func (r Reason) String() string {
	switch r {
	case HandEmptied:
		return "hand_emptied"
	case DeckEmpty:
		return "deck_empty"
	case DeckExhausted:
		return "deck_exhausted"
	default:
		return "unknown"
	}
}

// OutOfCards reports whether the game ended because the deck ran out
func (r Reason) OutOfCards() bool {
	return r == DeckEmpty || r == DeckExhausted
}

// Result is reported to both agents when the game ends. The seat holding
// fewer cards wins whatever the reason; equal counts are a tie.
type Result struct {
	Reason   Reason
	Winner   Seat // meaningless when Tie
	Tie      bool
	Cards    [2]int // cards left in each seat's hand
	Turns    int
	Duration time.Duration

	// Set only for DeckExhausted: the seat whose forced draw emptied the
	// deck and the unplayable cards it drew, in draw order.
	ExhaustedBy Seat
	Drawn       []deck.Card
}

// String returns a one-line summary of the result
func (r Result) String() string {
	outcome := "tie"
	if !r.Tie {
		outcome = r.Winner.String() + " wins"
	}
	return fmt.Sprintf("%s (%s, player %d cards, computer %d cards, %d turns)",
		outcome, r.Reason, r.Cards[Player], r.Cards[Computer], r.Turns)
}

// Decide builds the result for a finished state
func Decide(s *State, reason Reason) Result {
	r := Result{
		Reason: reason,
		Cards:  [2]int{len(s.Hands[Player]), len(s.Hands[Computer])},
	}
	switch {
	case r.Cards[Player] < r.Cards[Computer]:
		r.Winner = Player
	case r.Cards[Computer] < r.Cards[Player]:
		r.Winner = Computer
	default:
		r.Tie = true
	}
	return r
}

// Recorder receives every completed turn and the final result
type Recorder interface {
	RecordTurn(t Turn)
	RecordResult(r Result)
}

// Engine runs a game between two agents. It owns the state for the whole
// game and is not safe for concurrent use.
type Engine struct {
	state    *State
	agents   [2]Agent
	logger   *log.Logger
	clock    quartz.Clock
	recorder Recorder
	turns    int
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock used for turn timestamps and game duration
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithRecorder attaches a recorder that sees every turn
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// NewEngine creates an engine for state. The state is validated first so a
// loaded game that fails card conservation never starts.
func NewEngine(state *State, player, computer Agent, logger *log.Logger, opts ...Option) (*Engine, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	if state.ID != "" {
		logger = logger.With("game", state.ID)
	}

	e := &Engine{
		state:  state,
		agents: [2]Agent{player, computer},
		logger: logger.WithPrefix("engine"),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// State returns the state the engine is mutating
func (e *Engine) State() *State {
	return e.state
}

// Run alternates turns, player first, until a hand empties or the deck runs
// out, then notifies both agents. The end condition is checked before every
// individual turn.
//
// Agent failures and protocol violations abort the game without a game-over
// notification and are returned as errors.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	start := e.clock.Now()
	e.logger.Info("Starting game",
		"deck", len(e.state.Deck),
		"playerCards", len(e.state.Hands[Player]),
		"computerCards", len(e.state.Hands[Computer]),
		"nextPlay", e.state.NextPlay)

	seat := Player
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if reason, over := e.state.Over(); over {
			return e.finish(reason, start, nil), nil
		}

		turn, err := PlayTurn(e.state, seat, e.agents[seat], e.agents[seat.Other()])
		if err != nil {
			e.logger.Error("Turn aborted", "turn", e.turns+1, "seat", seat, "error", err)
			return Result{}, fmt.Errorf("turn %d: %w", e.turns+1, err)
		}

		e.turns++
		turn.Number = e.turns
		turn.At = e.clock.Now()
		e.logger.Debug("Turn complete",
			"turn", turn.Number,
			"seat", seat,
			"drawn", len(turn.Drawn),
			"played", turn.Played,
			"wild", turn.Wild,
			"nextPlay", turn.NextPlay,
			"exhausted", turn.Exhausted)
		if e.recorder != nil {
			e.recorder.RecordTurn(turn)
		}

		if turn.Exhausted {
			return e.finish(DeckExhausted, start, &turn), nil
		}
		seat = seat.Other()
	}
}

func (e *Engine) finish(reason Reason, start time.Time, exhausted *Turn) Result {
	result := Decide(e.state, reason)
	result.Turns = e.turns
	result.Duration = e.clock.Since(start)
	if exhausted != nil {
		result.ExhaustedBy = exhausted.Seat
		result.Drawn = deck.Clone(exhausted.Drawn)
	}

	e.logger.Info("Game over",
		"reason", reason,
		"winner", result.Winner,
		"tie", result.Tie,
		"playerCards", result.Cards[Player],
		"computerCards", result.Cards[Computer],
		"turns", result.Turns)

	if e.recorder != nil {
		e.recorder.RecordResult(result)
	}
	for _, seat := range Seats {
		r := result
		r.Drawn = deck.Clone(result.Drawn)
		e.agents[seat].OnGameOver(e.state.ViewFor(seat), r)
	}
	return result
}
