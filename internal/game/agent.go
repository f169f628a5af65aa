package game

import "github.com/lox/crazyeights/internal/deck"

// Witness describes a completed turn as seen by the opposing seat
type Witness struct {
	Seat   Seat        // seat that took the turn
	Drawn  []deck.Card // cards drawn before playing, in draw order; empty if none
	Played deck.Card   // the card as printed

	// ChangedSuit is the suit named for an eight. Only meaningful when Wild.
	ChangedSuit deck.Suit
	Wild        bool
}

// Agent represents any participant, human or computer. The engine calls an
// agent synchronously and waits for it to return; agents receive a fresh
// View on every call and must not keep references into engine state.
type Agent interface {
	// OnReady is called at the start of the agent's turn
	OnReady(v View)

	// OnPlay is called when the agent holds playable cards. matches is
	// non-empty and the returned card must be one of them. A non-nil error
	// (for example the human quitting) aborts the game.
	OnPlay(v View, matches []deck.Card) (deck.Card, error)

	// OnChangeSuit is called after the agent plays an eight. It must return
	// one of the four suits.
	OnChangeSuit(v View) (deck.Suit, error)

	// OnDraw reports a forced draw: every card drawn and the one played
	OnDraw(v View, drawn []deck.Card, played deck.Card)

	// OnBeforeWitness is called on the waiting agent before the opponent's turn
	OnBeforeWitness(v View)

	// OnWitness is called on the waiting agent after the opponent's turn
	OnWitness(v View, w Witness)

	// OnGameOver is called once on each agent when the game ends
	OnGameOver(v View, r Result)
}

// BaseAgent provides no-op notifications. Embed it in agents that only care
// about the decision methods.
type BaseAgent struct{}

func (BaseAgent) OnReady(View) {}
func (BaseAgent) OnDraw(View, []deck.Card, deck.Card) {}
func (BaseAgent) OnBeforeWitness(View) {}
func (BaseAgent) OnWitness(View, Witness) {}
func (BaseAgent) OnGameOver(View, Result) {}
