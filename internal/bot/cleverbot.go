package bot

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/crazyeights/internal/deck"
	"github.com/lox/crazyeights/internal/game"
)

// Factors weight the two sources CleverBot counts cards from
type Factors struct {
	// LongTerm weights cards still in the deck (future turns)
	LongTerm float64
	// ShortTerm weights cards in the opponent's hand (the next turn)
	ShortTerm float64
}

// DefaultFactors returns the standard weighting
func DefaultFactors() Factors {
	return Factors{LongTerm: 1.0, ShortTerm: 3.0}
}

// CleverBot counts cards to leave its opponent the hardest card to match.
// It prefers following suit with the rank the opponent is least likely to
// hold, then changing suit by rank, and plays an eight only as a last resort.
type CleverBot struct {
	game.BaseAgent
	factors Factors
	logger  *log.Logger
}

// NewCleverBot creates a new CleverBot instance
func NewCleverBot(factors Factors, logger *log.Logger) *CleverBot {
	return &CleverBot{factors: factors, logger: logger.WithPrefix("clever-bot")}
}

func (b *CleverBot) OnPlay(v game.View, matches []deck.Card) (deck.Card, error) {
	if len(matches) == 1 {
		return matches[0], nil
	}

	var suitMatches, rankMatches []deck.Card
	for _, c := range matches {
		if c.IsWild() {
			continue
		}
		if c.Suit == v.NextPlay.Suit {
			suitMatches = append(suitMatches, c)
			continue
		}
		rankMatches = append(rankMatches, c)
	}

	if len(suitMatches) > 0 {
		counts := b.RankCounts(v)
		slices.SortStableFunc(suitMatches, func(a, c deck.Card) int {
			return cmp.Compare(counts[a.Rank], counts[c.Rank])
		})
		b.logger.Debug("Following suit", "card", suitMatches[0], "candidates", suitMatches)
		return suitMatches[0], nil
	}

	if len(rankMatches) > 0 {
		counts := b.SuitCounts(v)
		slices.SortStableFunc(rankMatches, func(a, c deck.Card) int {
			return cmp.Compare(counts[a.Suit], counts[c.Suit])
		})
		b.logger.Debug("Changing suit by rank", "card", rankMatches[0], "candidates", rankMatches)
		return rankMatches[0], nil
	}

	b.logger.Debug("Only eights left to play", "card", matches[0])
	return matches[0], nil
}

// OnChangeSuit names the suit with the lowest weighted count. Ties go to the
// earlier suit in deck.Suits.
func (b *CleverBot) OnChangeSuit(v game.View) (deck.Suit, error) {
	counts := b.SuitCounts(v)

	best := deck.Suits[0]
	for _, suit := range deck.Suits[1:] {
		if counts[suit] < counts[best] {
			best = suit
		}
	}

	b.logger.Debug("Naming suit", "suit", best.Name(), "counts", counts)
	return best, nil
}

// SuitCounts weights every suit by how often it appears in the deck and in
// the opponent's hand
func (b *CleverBot) SuitCounts(v game.View) map[deck.Suit]float64 {
	counts := make(map[deck.Suit]float64, len(deck.Suits))
	for _, suit := range deck.Suits {
		counts[suit] = 0
	}
	for _, c := range v.Deck {
		counts[c.Suit] += b.factors.LongTerm
	}
	for _, c := range v.OpponentHand {
		counts[c.Suit] += b.factors.ShortTerm
	}
	return counts
}

// RankCounts is SuitCounts for ranks
func (b *CleverBot) RankCounts(v game.View) map[deck.Rank]float64 {
	counts := make(map[deck.Rank]float64, 13)
	for r := deck.Two; r <= deck.Ace; r++ {
		counts[r] = 0
	}
	for _, c := range v.Deck {
		counts[c.Rank] += b.factors.LongTerm
	}
	for _, c := range v.OpponentHand {
		counts[c.Rank] += b.factors.ShortTerm
	}
	return counts
}
