package game

import "github.com/lox/crazyeights/internal/deck"

// IsPlayable reports whether card may be played on target: same suit or same rank.
func IsPlayable(card, target deck.Card) bool {
	return card.Suit == target.Suit || card.Rank == target.Rank
}

// Matches returns the cards in hand that are playable on target, in hand order
func Matches(hand []deck.Card, target deck.Card) []deck.Card {
	var matches []deck.Card
	for _, card := range hand {
		if IsPlayable(card, target) {
			matches = append(matches, card)
		}
	}
	return matches
}

// DrawUntilPlayable draws from the top of cards until it draws an eight or a
// card playable on target. drawn holds every card taken, in draw order, and
// its last element is the card that must be played.
//
// If the deck runs out first, ok is false, remaining is empty and drawn holds
// the whole deck. That is deck exhaustion, not a play.
func DrawUntilPlayable(cards []deck.Card, target deck.Card) (remaining, drawn []deck.Card, ok bool) {
	remaining = cards
	for len(remaining) > 0 {
		var next []deck.Card
		remaining, next = deck.Draw(remaining, 1)
		card := next[0]
		drawn = append(drawn, card)
		if card.IsWild() || IsPlayable(card, target) {
			return remaining, drawn, true
		}
	}
	return remaining, drawn, false
}
