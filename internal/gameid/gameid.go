// Package gameid issues identifiers for games: a UUIDv7 written as 26
// characters of lowercase Crockford base32, so IDs sort by creation time.
package gameid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	length   = 26
)

// ID is a validated game identifier
type ID string

// Generator issues IDs from a clock and an entropy source
type Generator struct {
	clock   quartz.Clock
	entropy io.Reader
}

// NewGenerator creates a generator. A nil clock uses the wall clock and a nil
// entropy source uses crypto/rand.
func NewGenerator(clock quartz.Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{clock: clock, entropy: entropy}
}

// New returns an ID from the wall clock and crypto/rand
func New() (ID, error) {
	return NewGenerator(nil, nil).New()
}

// New returns the next ID
func (g *Generator) New() (ID, error) {
	var b [16]byte

	// 48-bit millisecond timestamp
	ms := uint64(g.clock.Now().UnixMilli())
	binary.BigEndian.PutUint64(b[:8], ms<<16)

	if _, err := io.ReadFull(g.entropy, b[6:]); err != nil {
		return "", fmt.Errorf("failed to read entropy: %w", err)
	}
	b[6] = (b[6] & 0x0f) | 0x70 // version 7
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encode(binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:])), nil
}

// Parse validates s and returns it as an ID
func Parse(s string) (ID, error) {
	if _, _, err := decode(s); err != nil {
		return "", err
	}
	return ID(s), nil
}

// Time returns when the ID was issued, to the millisecond
func (id ID) Time() time.Time {
	hi, _, err := decode(string(id))
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(int64(hi >> 16))
}

func (id ID) String() string {
	return string(id)
}

// encode writes the 128-bit value hi:lo as 130 bits, two of them leading
// zeros, five bits per character
func encode(hi, lo uint64) ID {
	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return ID(out)
}

func decode(s string) (hi, lo uint64, err error) {
	if len(s) != length {
		return 0, 0, fmt.Errorf("game ID must be exactly %d characters, got %d", length, len(s))
	}
	if s[0] > '7' {
		return 0, 0, fmt.Errorf("game ID first character must be 0-7, got %c", s[0])
	}
	for i := 0; i < len(s); i++ {
		v := strings.IndexByte(alphabet, s[i])
		if v < 0 {
			return 0, 0, fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(v)
	}
	return hi, lo, nil
}
