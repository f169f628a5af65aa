package game

import (
	"fmt"
	"time"

	"github.com/lox/crazyeights/internal/deck"
)

// Turn records what happened during one seat's turn
type Turn struct {
	Number      int
	Seat        Seat
	Drawn       []deck.Card
	Played      deck.Card // as printed; zero when Exhausted
	ChangedSuit deck.Suit
	Wild        bool
	Exhausted   bool      // the deck ran out during a forced draw
	NextPlay    deck.Card // next play after the turn, suit override applied
	At          time.Time
}

// Witness returns the turn as reported to the opposing seat
func (t Turn) Witness() Witness {
	return Witness{
		Seat:        t.Seat,
		Drawn:       deck.Clone(t.Drawn),
		Played:      t.Played,
		ChangedSuit: t.ChangedSuit,
		Wild:        t.Wild,
	}
}

// PlayTurn resolves one turn for seat. active decides for seat and other is
// notified before and after. On success the state has been updated and the
// returned Turn describes the play; if the deck ran out during a forced draw
// the drawn cards stay in the seat's hand, nothing is played and
// Turn.Exhausted is set.
//
// Errors come from the agents: either an input failure they returned, or a
// *ProtocolViolationError when a decision was illegal. On error the state is
// left exactly as it was before the turn, forced draw included.
func PlayTurn(s *State, seat Seat, active, other Agent) (Turn, error) {
	turn := Turn{Seat: seat}

	active.OnReady(s.ViewFor(seat))
	other.OnBeforeWitness(s.ViewFor(seat.Other()))

	// The turn is staged on a copy and committed to s once it completes.
	next := s.Clone()

	var played deck.Card
	matches := Matches(next.Hands[seat], next.NextPlay)
	if len(matches) > 0 {
		choice, err := active.OnPlay(next.ViewFor(seat), deck.Clone(matches))
		if err != nil {
			return turn, fmt.Errorf("%s play: %w", seat, err)
		}
		if !deck.Contains(matches, choice) {
			return turn, &ProtocolViolationError{Seat: seat, Kind: UnplayableCard, Card: choice, Matches: matches}
		}
		played = choice
	} else {
		remaining, drawn, ok := DrawUntilPlayable(next.Deck, next.NextPlay)
		next.Deck = remaining
		next.Hands[seat] = append(next.Hands[seat], drawn...)
		turn.Drawn = drawn
		if !ok {
			turn.Exhausted = true
			turn.NextPlay = next.NextPlay
			*s = *next
			return turn, nil
		}
		played = drawn[len(drawn)-1]
		active.OnDraw(next.ViewFor(seat), deck.Clone(drawn), played)
	}
	turn.Played = played

	if played.IsWild() {
		suit, err := active.OnChangeSuit(next.ViewFor(seat))
		if err != nil {
			return turn, fmt.Errorf("%s change suit: %w", seat, err)
		}
		if !suit.Valid() {
			return turn, &ProtocolViolationError{Seat: seat, Kind: InvalidSuit, Suit: suit}
		}
		turn.Wild = true
		turn.ChangedSuit = suit
	}

	next.Hands[seat], _ = deck.Remove(next.Hands[seat], played)
	// Discard the printed card, never an overridden eight.
	next.Discard = append(next.Discard, next.NextPrinted)
	next.NextPlay = played
	next.NextPrinted = played

	other.OnWitness(next.ViewFor(seat.Other()), turn.Witness())

	if turn.Wild {
		next.NextPlay.Suit = turn.ChangedSuit
	}
	turn.NextPlay = next.NextPlay
	*s = *next
	return turn, nil
}
