package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/crazyeights/internal/deck"
	"github.com/lox/crazyeights/internal/game"
)

// LazyBot always plays its first match and names the first suit
type LazyBot struct {
	game.BaseAgent
	logger *log.Logger
}

// NewLazyBot creates a new LazyBot instance
func NewLazyBot(logger *log.Logger) *LazyBot {
	return &LazyBot{logger: logger.WithPrefix("lazy-bot")}
}

func (b *LazyBot) OnPlay(v game.View, matches []deck.Card) (deck.Card, error) {
	b.logger.Debug("Playing first match", "card", matches[0], "matches", len(matches))
	return matches[0], nil
}

func (b *LazyBot) OnChangeSuit(v game.View) (deck.Suit, error) {
	return deck.Suits[0], nil
}
