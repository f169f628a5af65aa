package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/crazyeights/internal/deck"
	"github.com/lox/crazyeights/internal/gameid"
	"github.com/lox/crazyeights/internal/randutil"
)

func TestSaveAndLoadFile(t *testing.T) {
	s, err := NewState(randutil.New(3), DefaultHandSize)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, SaveFile(path, s))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Snapshot(), loaded.Snapshot())
	assert.Equal(t, s.NextPrinted, loaded.NextPrinted)
}

func TestSnapshotKeepsGameID(t *testing.T) {
	s := stateFrom(t, "2c", "Kh", "Ad", "5h")
	id, err := gameid.New()
	require.NoError(t, err)
	s.ID = id

	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, SaveFile(path, s))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, id, loaded.ID)
}

func TestSnapshotKeepsOverriddenEight(t *testing.T) {
	s := stateFrom(t, "2c 3c", "Kh 5s", "8s Qd", "8h")
	s.NextPlay.Suit = deck.Spades

	snap := s.Snapshot()
	require.NotNil(t, snap.NextPlayPrinted)
	assert.Equal(t, deck.MustParseCard("8h"), *snap.NextPlayPrinted)

	loaded, err := snap.State()
	require.NoError(t, err)
	assert.Equal(t, s.NextPlay, loaded.NextPlay)
	assert.Equal(t, s.NextPrinted, loaded.NextPrinted)
}

func TestLoadInfersPrintedEight(t *testing.T) {
	s := stateFrom(t, "2c 3c", "Kh 5s", "8s Qd", "8h")
	snap := s.Snapshot()
	snap.NextPlay = deck.NewCard(deck.Spades, deck.Eight)
	snap.NextPlayPrinted = nil

	loaded, err := snap.State()
	require.NoError(t, err)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Eight), loaded.NextPlay)
	assert.Equal(t, deck.MustParseCard("8h"), loaded.NextPrinted)
}

func TestLoadSnapshotAcceptsEmojiSuits(t *testing.T) {
	s := stateFrom(t, "2c", "Kh", "Ad", "5h")

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)
	// Hearts and diamonds written with the emoji variation selector.
	text := strings.NewReplacer("♥", "♥\ufe0f", "♦", "♦\ufe0f").Replace(string(data))

	loaded, err := LoadSnapshot(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, s.Snapshot(), loaded.Snapshot())
}

func TestLoadSnapshotMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "{"},
		{"bad suit", `{"deck":[{"suit":"stars","rank":"2"}]}`},
		{"bad rank", `{"deck":[{"suit":"♠","rank":"1"}]}`},
		{"missing cards", `{"deck":[],"discardPile":[],"playerHand":[],"computerHand":[],"nextPlay":{"suit":"♠","rank":"5"}}`},
		{"missing next play", `{"deck":[]}`},
		{"bad game id", `{"gameId":"NOT-AN-ID"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSnapshot(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrMalformedInput)
}
