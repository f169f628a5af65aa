package simulator

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/crazyeights/internal/bot"
	"github.com/lox/crazyeights/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{Games: 10, Player: bot.Lazy, Computer: bot.Lazy})
	assert.Equal(t, game.DefaultHandSize, s.config.HandSize)
	assert.Positive(t, s.config.Workers)
	assert.NotNil(t, s.config.Logger)
}

func TestRun(t *testing.T) {
	s := New(Config{
		Games:    40,
		Player:   bot.Clever,
		Computer: bot.Random,
		Seed:     12345,
		Workers:  4,
		Timeout:  5 * time.Second,
		Logger:   quietLogger(),
	})

	stats, err := s.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	assert.Equal(t, 40, stats.Games)
	assert.Equal(t, 40, stats.Wins[game.Player]+stats.Wins[game.Computer]+stats.Ties)
	assert.Positive(t, stats.MeanTurns())
}

func TestRunIsDeterministic(t *testing.T) {
	config := Config{
		Games:    25,
		Player:   bot.Random,
		Computer: bot.Clever,
		Seed:     99,
		Logger:   quietLogger(),
	}

	config.Workers = 1
	serial, err := New(config).Run(context.Background())
	require.NoError(t, err)

	config.Workers = 8
	parallel, err := New(config).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestRunDifferentSeedsDiffer(t *testing.T) {
	run := func(seed int64) []float64 {
		stats, err := New(Config{
			Games:    20,
			Player:   bot.Random,
			Computer: bot.Random,
			Seed:     seed,
			Logger:   quietLogger(),
		}).Run(context.Background())
		require.NoError(t, err)
		return stats.Turns
	}

	assert.NotEqual(t, run(1), run(2))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"no games", Config{Games: 0, Player: bot.Lazy, Computer: bot.Lazy}, "games must be positive"},
		{"unknown player", Config{Games: 1, Player: "smart", Computer: bot.Lazy}, `unknown bot "smart"`},
		{"unknown computer", Config{Games: 1, Player: bot.Lazy, Computer: "dumb"}, `unknown bot "dumb"`},
		{"bad hand size", Config{Games: 1, Player: bot.Lazy, Computer: bot.Lazy, HandSize: 40}, "hand size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Logger = quietLogger()
			_, err := New(tt.config).Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Games: 5, Player: bot.Lazy, Computer: bot.Lazy, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintSummary(t *testing.T) {
	stats, err := New(Config{
		Games:    10,
		Player:   bot.Clever,
		Computer: bot.Lazy,
		Seed:     7,
		Logger:   quietLogger(),
	}).Run(context.Background())
	require.NoError(t, err)

	var out strings.Builder
	PrintSummary(&out, stats, bot.Clever, bot.Lazy)

	summary := out.String()
	assert.Contains(t, summary, "clever (player) vs lazy (computer)")
	assert.Contains(t, summary, "Games played: 10")
	assert.Contains(t, summary, "player wins:")
	assert.Contains(t, summary, "Player share of decided games:")
	assert.Contains(t, summary, "hand_emptied:")
	assert.Contains(t, summary, "Mean:")
}
