package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "letters",
			input: "As 8h Tc 2d",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: Eight},
				{Suit: Clubs, Rank: Ten},
				{Suit: Diamonds, Rank: Two},
			},
		},
		{
			name:  "ten written as 10",
			input: "10s,10h",
			expected: []Card{
				{Suit: Spades, Rank: Ten},
				{Suit: Hearts, Rank: Ten},
			},
		},
		{
			name:  "symbols",
			input: "8♥ K♠ 3♣ 9♦",
			expected: []Card{
				{Suit: Hearts, Rank: Eight},
				{Suit: Spades, Rank: King},
				{Suit: Clubs, Rank: Three},
				{Suit: Diamonds, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "qD jS",
			expected: []Card{
				{Suit: Diamonds, Rank: Queen},
				{Suit: Spades, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:    "missing suit",
			input:   "A",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardPanics(t *testing.T) {
	assert.Equal(t, Card{Suit: Hearts, Rank: Eight}, MustParseCard("8h"))
	assert.Panics(t, func() { MustParseCard("invalid") })
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "8♥", MustParseCard("8h").String())
	assert.Equal(t, "10♠", MustParseCard("Ts").String())
	assert.Equal(t, "A♦", MustParseCard("Ad").String())
}

func TestCardIsWild(t *testing.T) {
	for _, suit := range Suits {
		assert.True(t, NewCard(suit, Eight).IsWild())
		assert.False(t, NewCard(suit, Nine).IsWild())
	}
}

func TestCardJSON(t *testing.T) {
	data, err := json.Marshal(MustParseCard("10h"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":"♥","rank":"10"}`, string(data))

	var card Card
	require.NoError(t, json.Unmarshal(data, &card))
	assert.Equal(t, MustParseCard("10h"), card)
}

func TestSuitUnmarshalEmojiForm(t *testing.T) {
	tests := map[string]Suit{
		"♠️": Spades,
		"❤️": Hearts,
		"♣️": Clubs,
		"♦️": Diamonds,

		"spades":  Spades,
		"H":       Hearts,
	}
	for input, want := range tests {
		var s Suit
		require.NoError(t, s.UnmarshalText([]byte(input)), input)
		assert.Equal(t, want, s, input)
	}

	var s Suit
	assert.Error(t, s.UnmarshalText([]byte("stars")))
}

func TestMarshalInvalid(t *testing.T) {
	_, err := Suit(9).MarshalText()
	assert.Error(t, err)
	_, err = Rank(1).MarshalText()
	assert.Error(t, err)
}
