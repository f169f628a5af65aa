package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Suits lists the four suits in the order they are offered to players
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// String returns the symbol for a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Name returns the lower-case english name of a suit
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Diamonds
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Wild is the rank that stops a forced draw and lets its player name the next suit.
const Wild = Eight

// String returns the string representation of a rank
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card. Cards compare by value.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "8♥")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsWild returns true if the card has the wild rank
func (c Card) IsWild() bool {
	return c.Rank == Wild
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Valid reports whether both suit and rank are in range
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// MarshalText encodes a suit as its symbol
func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts symbols (with or without the emoji variation
// selector), single letters and names.
func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText encodes a rank as it is printed on the card
func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rank written as 2-10, T, J, Q, K or A
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseSuit parses a suit symbol, letter or name
func ParseSuit(s string) (Suit, error) {
	// The variation selector U+FE0F turns ♠ into the emoji form.
	key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "\ufe0f", "")))
	switch key {
	case "♠", "s", "spade", "spades":
		return Spades, nil
	case "♥", "❤", "h", "heart", "hearts":
		return Hearts, nil
	case "♣", "c", "club", "clubs":
		return Clubs, nil
	case "♦", "d", "diamond", "diamonds":
		return Diamonds, nil
	}
	return 0, fmt.Errorf("invalid suit %q", s)
}

// ParseRank parses a rank written as 2-10, T, J, Q, K or A
func ParseRank(s string) (Rank, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	switch key {
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	if len(key) == 1 && key[0] >= '2' && key[0] <= '9' {
		return Rank(key[0] - '0'), nil
	}
	return 0, fmt.Errorf("invalid rank %q", s)
}

// ParseCard parses a single card such as "8h", "Ts", "10s" or "A♠"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	for _, split := range []int{2, 1} {
		if len(s) <= split {
			continue
		}
		rank, err := ParseRank(s[:split])
		if err != nil {
			continue
		}
		suit, err := ParseSuit(s[split:])
		if err != nil {
			return Card{}, fmt.Errorf("card %q: %w", s, err)
		}
		return NewCard(suit, rank), nil
	}
	return Card{}, fmt.Errorf("invalid card %q", s)
}

// ParseCards parses a whitespace or comma separated list of cards
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// MustParseCard is like ParseCard but panics on error
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return card
}
