// Package game implements the turn-resolution engine for two-player Crazy
// Eights.
//
// The main types are State, which holds the deck, discard pile, both hands
// and the next-play card, and Engine, which alternates turns between the
// player and computer seats until a hand empties or the deck runs out.
//
// # Basic Usage
//
// Create a shuffled game and run it to completion:
//
//	rng := randutil.New(42)
//	state, err := game.NewState(rng, game.DefaultHandSize)
//	if err != nil {
//	    return err
//	}
//	engine, err := game.NewEngine(state, human, bot.NewCleverBot(bot.DefaultFactors(), logger), logger)
//	if err != nil {
//	    return err
//	}
//	result, err := engine.Run(ctx)
//
// # Rules
//
// A card is playable when it shares a suit or a rank with the next-play
// card. With no playable card the active seat draws from the top of the deck
// until it draws a playable card or an eight, and must play that card. An
// eight lets its player name the suit the opponent must follow.
//
// # Agents
//
// Every participant implements Agent. Agents receive a View, a deep copy of
// the state from their seat, on every call and never hold engine state
// between calls. Returning a card that is not among the offered matches, or
// an invalid suit, aborts the game with a ProtocolViolationError.
package game
