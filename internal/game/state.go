package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/crazyeights/internal/deck"
	"github.com/lox/crazyeights/internal/gameid"
)

// DefaultHandSize is the number of cards dealt to each seat
const DefaultHandSize = 7

// MaxHandSize leaves enough of the deck to turn up a starting card after all
// four eights.
const MaxHandSize = 20

// Seat identifies one of the two participants
type Seat int

const (
	Player Seat = iota
	Computer
)

// Seats lists both seats in turn order
var Seats = [2]Seat{Player, Computer}

func (s Seat) String() string {
	switch s {
	case Player:
		return "player"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// Other returns the opposing seat
func (s Seat) Other() Seat {
	if s == Player {
		return Computer
	}
	return Player
}

// State is the whole game: deck, discard pile, both hands and the next-play
// card. The Engine is its only mutator.
type State struct {
	ID      gameid.ID   // empty until assigned
	Deck    []deck.Card // top of deck is the last element
	Discard []deck.Card
	Hands   [2][]deck.Card

	// NextPlay is the card the active seat must match. After an eight is
	// played its Suit is the suit the player named.
	NextPlay deck.Card

	// NextPrinted is NextPlay as printed on the card. It differs from
	// NextPlay only in suit, and only while an eight's suit is overridden.
	NextPrinted deck.Card
}

// NewState shuffles a fresh deck, deals handSize cards to each seat and turns
// up the first non-eight card as next play. Eights turned up on the way go
// to the discard pile.
func NewState(rng *rand.Rand, handSize int) (*State, error) {
	if handSize < 1 || handSize > MaxHandSize {
		return nil, fmt.Errorf("hand size %d out of range 1-%d", handSize, MaxHandSize)
	}

	cards := deck.Generate()
	deck.Shuffle(cards, rng)

	remaining, hands := deck.Deal(cards, len(Seats), handSize)
	s := &State{
		Deck:  remaining,
		Hands: [2][]deck.Card{hands[Player], hands[Computer]},
	}

	if err := s.turnUpStartingCard(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) turnUpStartingCard() error {
	for {
		var drawn []deck.Card
		s.Deck, drawn = deck.Draw(s.Deck, 1)
		if len(drawn) == 0 {
			return errors.New("deck ran out before a starting card was found")
		}
		if drawn[0].IsWild() {
			s.Discard = append(s.Discard, drawn[0])
			continue
		}
		s.NextPlay = drawn[0]
		s.NextPrinted = drawn[0]
		return nil
	}
}

// Hand returns the hand held by seat
func (s *State) Hand(seat Seat) []deck.Card {
	return s.Hands[seat]
}

// CardCount returns the number of cards accounted for across every
// collection, including the next-play card.
func (s *State) CardCount() int {
	return len(s.Deck) + len(s.Discard) + len(s.Hands[Player]) + len(s.Hands[Computer]) + 1
}

// TopOfDiscard returns the most recently discarded card
func (s *State) TopOfDiscard() (deck.Card, bool) {
	return deck.Top(s.Discard)
}

// Over reports whether the game has reached an end condition
func (s *State) Over() (Reason, bool) {
	switch {
	case len(s.Hands[Player]) == 0 || len(s.Hands[Computer]) == 0:
		return HandEmptied, true
	case len(s.Deck) == 0:
		return DeckEmpty, true
	default:
		return 0, false
	}
}

// Validate checks that the state holds exactly the 52 cards of one deck with
// no duplicates, and that the next-play card is consistent with its printed
// form. Failures wrap ErrMalformedInput.
func (s *State) Validate() error {
	seen := make(map[deck.Card]string, deck.Size)
	add := func(where string, cards ...deck.Card) error {
		for _, c := range cards {
			if !c.Valid() {
				return fmt.Errorf("%w: %s holds invalid card {suit:%d rank:%d}", ErrMalformedInput, where, int(c.Suit), int(c.Rank))
			}
			if prev, dup := seen[c]; dup {
				return fmt.Errorf("%w: %s appears in both %s and %s", ErrMalformedInput, c, prev, where)
			}
			seen[c] = where
		}
		return nil
	}

	if err := add("deck", s.Deck...); err != nil {
		return err
	}
	if err := add("discard pile", s.Discard...); err != nil {
		return err
	}
	if err := add("player hand", s.Hands[Player]...); err != nil {
		return err
	}
	if err := add("computer hand", s.Hands[Computer]...); err != nil {
		return err
	}
	if err := add("next play", s.NextPrinted); err != nil {
		return err
	}

	if !s.NextPlay.Valid() {
		return fmt.Errorf("%w: next play {suit:%d rank:%d} is not a card", ErrMalformedInput, int(s.NextPlay.Suit), int(s.NextPlay.Rank))
	}
	if s.NextPlay != s.NextPrinted && (s.NextPlay.Rank != s.NextPrinted.Rank || !s.NextPrinted.IsWild()) {
		return fmt.Errorf("%w: next play %s does not match printed card %s", ErrMalformedInput, s.NextPlay, s.NextPrinted)
	}
	if len(seen) != deck.Size {
		return fmt.Errorf("%w: %d cards accounted for, want %d", ErrMalformedInput, len(seen), deck.Size)
	}
	return nil
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	return &State{
		ID:          s.ID,
		Deck:        deck.Clone(s.Deck),
		Discard:     deck.Clone(s.Discard),
		Hands:       [2][]deck.Card{deck.Clone(s.Hands[Player]), deck.Clone(s.Hands[Computer])},
		NextPlay:    s.NextPlay,
		NextPrinted: s.NextPrinted,
	}
}

// View is a read-only copy of the state from one seat's point of view.
// Mutating a View never affects the game.
type View struct {
	Seat         Seat
	Hand         []deck.Card
	OpponentHand []deck.Card
	Deck         []deck.Card
	Discard      []deck.Card
	NextPlay     deck.Card
}

// ViewFor builds a View for seat
func (s *State) ViewFor(seat Seat) View {
	return View{
		Seat:         seat,
		Hand:         deck.Clone(s.Hands[seat]),
		OpponentHand: deck.Clone(s.Hands[seat.Other()]),
		Deck:         deck.Clone(s.Deck),
		Discard:      deck.Clone(s.Discard),
		NextPlay:     s.NextPlay,
	}
}

// TopOfDiscard returns the most recently discarded card
func (v View) TopOfDiscard() (deck.Card, bool) {
	return deck.Top(v.Discard)
}
