package game

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lox/crazyeights/internal/deck"
	"github.com/lox/crazyeights/internal/fileutil"
	"github.com/lox/crazyeights/internal/gameid"
)

// Snapshot is the saved-game record. Cards are {"suit": "♠", "rank": "8"}.
// The top of the deck is the last element.
type Snapshot struct {
	GameID       gameid.ID   `json:"gameId,omitempty"`
	Deck         []deck.Card `json:"deck"`
	DiscardPile  []deck.Card `json:"discardPile"`
	PlayerHand   []deck.Card `json:"playerHand"`
	ComputerHand []deck.Card `json:"computerHand"`
	NextPlay     deck.Card   `json:"nextPlay"`

	// NextPlayPrinted is set only when NextPlay is an eight whose suit was
	// changed. Files without it are resolved by inferPrinted.
	NextPlayPrinted *deck.Card `json:"nextPlayPrinted,omitempty"`
}

// Snapshot captures the state for saving
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		GameID:       s.ID,
		Deck:         nonNil(s.Deck),
		DiscardPile:  nonNil(s.Discard),
		PlayerHand:   nonNil(s.Hands[Player]),
		ComputerHand: nonNil(s.Hands[Computer]),
		NextPlay:     s.NextPlay,
	}
	if s.NextPrinted != s.NextPlay {
		printed := s.NextPrinted
		snap.NextPlayPrinted = &printed
	}
	return snap
}

// State converts the snapshot into a validated State
func (snap Snapshot) State() (*State, error) {
	if snap.GameID != "" {
		if _, err := gameid.Parse(string(snap.GameID)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}

	s := &State{
		ID:       snap.GameID,
		Deck:     deck.Clone(snap.Deck),
		Discard:  deck.Clone(snap.DiscardPile),
		Hands:    [2][]deck.Card{deck.Clone(snap.PlayerHand), deck.Clone(snap.ComputerHand)},
		NextPlay: snap.NextPlay,
	}
	if snap.NextPlayPrinted != nil {
		s.NextPrinted = *snap.NextPlayPrinted
	} else {
		s.NextPrinted = inferPrinted(s)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// inferPrinted recovers the printed next-play card for files that only
// record the effective one. An eight whose effective card is held elsewhere
// must be the one eight missing from every collection.
func inferPrinted(s *State) deck.Card {
	if !s.NextPlay.IsWild() {
		return s.NextPlay
	}

	held := make(map[deck.Card]bool)
	for _, cards := range [][]deck.Card{s.Deck, s.Discard, s.Hands[Player], s.Hands[Computer]} {
		for _, c := range cards {
			held[c] = true
		}
	}
	if !held[s.NextPlay] {
		return s.NextPlay
	}
	for _, suit := range deck.Suits {
		candidate := deck.NewCard(suit, deck.Wild)
		if !held[candidate] {
			return candidate
		}
	}
	return s.NextPlay
}

// LoadSnapshot decodes and validates a saved game
func LoadSnapshot(r io.Reader) (*State, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return snap.State()
}

// LoadFile reads a saved game from path
func LoadFile(path string) (*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open saved game: %w", err)
	}
	defer f.Close()

	s, err := LoadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// SaveFile writes the state to path atomically
func SaveFile(path string, s *State) error {
	return fileutil.WriteJSONAtomic(path, s.Snapshot(), 0644)
}

func nonNil(cards []deck.Card) []deck.Card {
	if cards == nil {
		return []deck.Card{}
	}
	return deck.Clone(cards)
}
