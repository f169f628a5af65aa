package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/crazyeights/internal/deck"
	"github.com/lox/crazyeights/internal/game"
)

// RandBot is a simple bot that makes uniform random legal choices
type RandBot struct {
	game.BaseAgent
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger.WithPrefix("rand-bot")}
}

func (b *RandBot) OnPlay(v game.View, matches []deck.Card) (deck.Card, error) {
	card := matches[b.rng.IntN(len(matches))]
	b.logger.Debug("Playing random match", "card", card, "matches", len(matches))
	return card, nil
}

func (b *RandBot) OnChangeSuit(v game.View) (deck.Suit, error) {
	return deck.Suits[b.rng.IntN(len(deck.Suits))], nil
}
