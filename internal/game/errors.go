package game

import (
	"errors"
	"fmt"

	"github.com/lox/crazyeights/internal/deck"
)

var (
	// ErrMalformedInput is returned when a loaded state fails shape or card
	// conservation checks. The game refuses to start.
	ErrMalformedInput = errors.New("game: malformed input")

	// ErrProtocolViolation is matched by every ProtocolViolationError.
	ErrProtocolViolation = errors.New("game: agent protocol violation")
)

// ViolationKind describes how an agent broke the protocol
type ViolationKind int

const (
	// UnplayableCard means OnPlay returned a card outside the offered matches
	UnplayableCard ViolationKind = iota
	// InvalidSuit means OnChangeSuit returned something other than the four suits
	InvalidSuit
)

func (k ViolationKind) String() string {
	switch k {
	case UnplayableCard:
		return "unplayable card"
	case InvalidSuit:
		return "invalid suit"
	default:
		return "unknown"
	}
}

// ProtocolViolationError reports an agent that returned an illegal decision
type ProtocolViolationError struct {
	Seat    Seat
	Kind    ViolationKind
	Card    deck.Card   // for UnplayableCard
	Suit    deck.Suit   // for InvalidSuit
	Matches []deck.Card // the cards that were on offer
}

func (e *ProtocolViolationError) Error() string {
	switch e.Kind {
	case UnplayableCard:
		return fmt.Sprintf("agent protocol violation: %s played %s, which is not one of %v", e.Seat, e.Card, e.Matches)
	case InvalidSuit:
		return fmt.Sprintf("agent protocol violation: %s chose invalid suit %d", e.Seat, int(e.Suit))
	default:
		return fmt.Sprintf("agent protocol violation by %s", e.Seat)
	}
}

// Unwrap lets errors.Is match ErrProtocolViolation
func (e *ProtocolViolationError) Unwrap() error {
	return ErrProtocolViolation
}
