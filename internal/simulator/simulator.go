package simulator

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/crazyeights/internal/bot"
	"github.com/lox/crazyeights/internal/game"
	"github.com/lox/crazyeights/internal/randutil"
	"github.com/lox/crazyeights/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Player   string // bot name for the player seat
	Computer string // bot name for the computer seat
	Seed     int64
	HandSize int
	Factors  bot.Factors
	Workers  int           // zero means runtime.NumCPU
	Timeout  time.Duration // per game; zero means no limit
	Logger   *log.Logger
}

// Simulator runs batches of bot-vs-bot games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.HandSize == 0 {
		config.HandSize = game.DefaultHandSize
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the tallies. Games run in parallel but
// each has its own seed derived from the configured one, so the results do
// not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	for _, name := range []string{s.config.Player, s.config.Computer} {
		if _, err := s.newBot(name, randutil.New(0)); err != nil {
			return nil, err
		}
	}

	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Games {
		g.Go(func() error {
			result, err := s.playGame(ctx, i)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGame plays game i to completion
func (s *Simulator) playGame(ctx context.Context, i int) (statistics.GameResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	seed := randutil.Derive(s.config.Seed, i)
	rng := randutil.New(seed)

	state, err := game.NewState(rng, s.config.HandSize)
	if err != nil {
		return statistics.GameResult{}, err
	}

	player, err := s.newBot(s.config.Player, rng)
	if err != nil {
		return statistics.GameResult{}, err
	}
	computer, err := s.newBot(s.config.Computer, rng)
	if err != nil {
		return statistics.GameResult{}, err
	}

	history := game.NewHistory()
	engine, err := game.NewEngine(state, player, computer, s.config.Logger, game.WithRecorder(history))
	if err != nil {
		return statistics.GameResult{}, err
	}

	result, err := engine.Run(ctx)
	if err != nil {
		return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
	}

	s.config.Logger.Debug("Game finished", "game", i+1, "seed", seed, "result", result)

	return statistics.GameResult{
		Seed:   seed,
		Reason: result.Reason,
		Winner: result.Winner,
		Tie:    result.Tie,
		Turns:  result.Turns,
		Cards:  result.Cards,
		Eights: history.Eights(),
		Drawn:  history.Drawn(),
	}, nil
}

func (s *Simulator) newBot(name string, rng *rand.Rand) (game.Agent, error) {
	return bot.New(name, bot.Options{Factors: s.config.Factors, Rng: rng}, s.config.Logger)
}

// PrintSummary writes a summary of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, player, computer string) {
	fmt.Fprintf(w, "\n=== FINAL RESULTS: %s (player) vs %s (computer) ===\n", player, computer)
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	for _, seat := range game.Seats {
		low, high := stats.WinRateInterval95(seat)
		fmt.Fprintf(w, "%s wins: %d (%.1f%%, 95%% CI [%.1f%%, %.1f%%])\n",
			seat, stats.Wins[seat], stats.WinRate(seat)*100, low*100, high*100)
	}
	fmt.Fprintf(w, "Ties: %d (%.1f%%)\n", stats.Ties, stats.TieRate()*100)
	if cmp := stats.CompareSeats(); cmp.Decided > 0 {
		fmt.Fprintf(w, "Loser's cards left: %.2f avg\n", float64(stats.LosingCards)/float64(cmp.Decided))
		fmt.Fprintf(w, "Player share of decided games: %.1f%% (z=%.2f, p=%.4f, %s)\n",
			cmp.Share*100, cmp.ZScore, cmp.PValue, statistics.InterpretPValue(cmp.PValue, 0.05))
	}

	fmt.Fprintf(w, "\n=== END REASONS ===\n")
	for _, reason := range []game.Reason{game.HandEmptied, game.DeckEmpty, game.DeckExhausted} {
		n := stats.Reasons[reason]
		fmt.Fprintf(w, "%s: %d (%.1f%%)\n", reason, n, float64(n)/float64(stats.Games)*100)
	}

	low, high := stats.ConfidenceInterval95()
	fmt.Fprintf(w, "\n=== GAME LENGTH ===\n")
	fmt.Fprintf(w, "Mean: %.2f turns\n", stats.MeanTurns())
	fmt.Fprintf(w, "Median: %.1f turns\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.2f turns\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.2f, %.2f] turns\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== PLAY ===\n")
	for _, seat := range game.Seats {
		fmt.Fprintf(w, "%s: %.2f eights, %.2f cards drawn per game\n", seat,
			float64(stats.Eights[seat])/float64(stats.Games),
			float64(stats.Drawn[seat])/float64(stats.Games))
	}
}
