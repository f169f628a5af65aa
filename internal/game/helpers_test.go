package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/crazyeights/internal/deck"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// scriptedAgent plays the first match (or a forced card), names suit, and
// records every call in order.
type scriptedAgent struct {
	suit    deck.Suit
	pick    func(matches []deck.Card) deck.Card
	playErr error
	suitErr error

	calls     []string
	witnessed []Witness
	draws     [][]deck.Card
	views     []View
	results   []Result
}

func (a *scriptedAgent) OnReady(v View) {
	a.calls = append(a.calls, "ready")
	a.views = append(a.views, v)
}

func (a *scriptedAgent) OnPlay(v View, matches []deck.Card) (deck.Card, error) {
	a.calls = append(a.calls, "play")
	if a.playErr != nil {
		return deck.Card{}, a.playErr
	}
	if a.pick != nil {
		return a.pick(matches), nil
	}
	return matches[0], nil
}

func (a *scriptedAgent) OnChangeSuit(v View) (deck.Suit, error) {
	a.calls = append(a.calls, "suit")
	if a.suitErr != nil {
		return 0, a.suitErr
	}
	return a.suit, nil
}

func (a *scriptedAgent) OnDraw(v View, drawn []deck.Card, played deck.Card) {
	a.calls = append(a.calls, "draw")
	a.draws = append(a.draws, drawn)
}

func (a *scriptedAgent) OnBeforeWitness(v View) {
	a.calls = append(a.calls, "before-witness")
}

func (a *scriptedAgent) OnWitness(v View, w Witness) {
	a.calls = append(a.calls, "witness")
	a.witnessed = append(a.witnessed, w)
}

func (a *scriptedAgent) OnGameOver(v View, r Result) {
	a.calls = append(a.calls, "game-over")
	a.results = append(a.results, r)
}

// stateFrom builds a valid state from card lists; every card not listed
// lands in the discard pile so the 52-card total holds.
func stateFrom(t *testing.T, deckCards, playerHand, computerHand, nextPlay string) *State {
	t.Helper()

	s := &State{
		Deck:  deck.MustParseCards(deckCards),
		Hands: [2][]deck.Card{deck.MustParseCards(playerHand), deck.MustParseCards(computerHand)},
	}
	s.NextPlay = deck.MustParseCard(nextPlay)
	s.NextPrinted = s.NextPlay

	used := map[deck.Card]bool{s.NextPlay: true}
	for _, cards := range [][]deck.Card{s.Deck, s.Hands[Player], s.Hands[Computer]} {
		for _, c := range cards {
			used[c] = true
		}
	}
	for _, c := range deck.Generate() {
		if !used[c] {
			s.Discard = append(s.Discard, c)
		}
	}
	require.NoError(t, s.Validate())
	return s
}
