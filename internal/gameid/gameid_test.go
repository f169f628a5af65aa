package gameid

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id, err := New()
	require.NoError(t, err)

	assert.Len(t, string(id), length)
	_, err = Parse(string(id))
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), id.Time(), time.Minute)
}

func TestGeneratorUsesClock(t *testing.T) {
	clock := quartz.NewMock(t)
	issued := time.Date(2024, 3, 1, 12, 0, 0, 123*int(time.Millisecond), time.UTC)
	clock.Set(issued)

	gen := NewGenerator(clock, bytes.NewReader(bytes.Repeat([]byte{0xab}, 20)))

	first, err := gen.New()
	require.NoError(t, err)
	assert.True(t, issued.Equal(first.Time()), "got %s", first.Time())

	clock.Advance(time.Second)
	second, err := gen.New()
	require.NoError(t, err)
	assert.Less(t, string(first), string(second))
}

func TestGeneratorIsDeterministic(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	entropy := bytes.Repeat([]byte{1, 2, 3, 4, 5}, 2)
	a, err := NewGenerator(clock, bytes.NewReader(entropy)).New()
	require.NoError(t, err)
	b, err := NewGenerator(clock, bytes.NewReader(entropy)).New()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGeneratorShortEntropy(t *testing.T) {
	_, err := NewGenerator(nil, strings.NewReader("short")).New()
	assert.Error(t, err)
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for range 100 {
		id, err := New()
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		hi, lo uint64
	}{
		{"zero", 0, 0},
		{"max", ^uint64(0), ^uint64(0)},
		{"mixed", 0x0123456789abcdef, 0xfedcba9876543210},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := encode(tt.hi, tt.lo)
			hi, lo, err := decode(string(id))
			require.NoError(t, err)
			assert.Equal(t, tt.hi, hi)
			assert.Equal(t, tt.lo, lo)
		})
	}

	assert.Equal(t, ID("00000000000000000000000000"), encode(0, 0))
	assert.Equal(t, ID("7zzzzzzzzzzzzzzzzzzzzzzzzz"), encode(^uint64(0), ^uint64(0)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr string
	}{
		{"valid", "01h5n0et5q6mt3v7ms1234abcd", ""},
		{"too short", "01h5n0et5q6mt3v7ms123", "exactly 26"},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", "exactly 26"},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", "first character"},
		{"invalid character", "01h5n0et5q6mt3v7ms1234abci", "invalid character"},
		{"uppercase", "01H5N0ET5Q6MT3V7MS1234ABCD", "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.id)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, id.String())
		})
	}
}

func TestInvalidIDHasZeroTime(t *testing.T) {
	assert.True(t, ID("nope").Time().IsZero())
}
