package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck
const Size = 52

// Generate returns a fresh, unshuffled 52-card deck
func Generate() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle randomizes the order of cards in place using Fisher-Yates
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Draw removes up to n cards from the top of the deck. The top of the deck is
// the last element of the slice. Drawn cards are returned in the order they
// came off the deck.
func Draw(cards []Card, n int) (remaining, drawn []Card) {
	if n > len(cards) {
		n = len(cards)
	}
	if n < 0 {
		n = 0
	}

	drawn = make([]Card, 0, n)
	for i := 0; i < n; i++ {
		drawn = append(drawn, cards[len(cards)-1-i])
	}
	return cards[:len(cards)-n], drawn
}

// Deal deals perHand cards to each of numHands hands, one card at a time
// round-robin from the top of the deck.
func Deal(cards []Card, numHands, perHand int) (remaining []Card, hands [][]Card) {
	hands = make([][]Card, numHands)
	for i := range hands {
		hands[i] = make([]Card, 0, perHand)
	}

	remaining = cards
	for round := 0; round < perHand; round++ {
		for h := range hands {
			var drawn []Card
			remaining, drawn = Draw(remaining, 1)
			if len(drawn) == 0 {
				return remaining, hands
			}
			hands[h] = append(hands[h], drawn[0])
		}
	}
	return remaining, hands
}

// Top returns the top card of the deck without removing it
func Top(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	return cards[len(cards)-1], true
}

// IndexOf returns the position of card in cards, or -1
func IndexOf(cards []Card, card Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}

// Contains reports whether card is in cards
func Contains(cards []Card, card Card) bool {
	return IndexOf(cards, card) >= 0
}

// Remove returns a new slice without the first occurrence of card, and
// whether the card was found. The input slice is not modified.
func Remove(cards []Card, card Card) ([]Card, bool) {
	i := IndexOf(cards, card)
	if i < 0 {
		return cards, false
	}
	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	out = append(out, cards[i+1:]...)
	return out, true
}

// Clone returns a copy of cards that shares no backing array
func Clone(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
