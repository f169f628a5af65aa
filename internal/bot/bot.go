// Package bot provides the computer-controlled agents.
package bot

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/crazyeights/internal/game"
)

// Bot names accepted by New
const (
	Lazy   = "lazy"
	Random = "random"
	Clever = "clever"
)

// Names lists the registered bots in display order
var Names = []string{Lazy, Random, Clever}

// Options configures bot construction
type Options struct {
	// Factors weight CleverBot's card counting. Zero means DefaultFactors.
	Factors Factors

	// Rng drives RandBot. Required for "random".
	Rng *rand.Rand
}

// New creates the named bot
func New(name string, opts Options, logger *log.Logger) (game.Agent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Lazy:
		return NewLazyBot(logger), nil
	case Random:
		if opts.Rng == nil {
			return nil, fmt.Errorf("bot %q requires a random source", Random)
		}
		return NewRandBot(opts.Rng, logger), nil
	case Clever:
		factors := opts.Factors
		if factors == (Factors{}) {
			factors = DefaultFactors()
		}
		return NewCleverBot(factors, logger), nil
	default:
		return nil, fmt.Errorf("unknown bot %q (want one of %s)", name, strings.Join(Names, ", "))
	}
}
