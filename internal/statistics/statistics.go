package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/crazyeights/internal/game"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Seed   int64 // RNG seed for this game (for replay)
	Reason game.Reason
	Winner game.Seat
	Tie    bool
	Turns  int
	Cards  [2]int // cards left in each hand
	Eights [2]int // eights played by each seat
	Drawn  [2]int // cards drawn by each seat
}

// Statistics tracks bot-vs-bot simulation statistics
type Statistics struct {
	Games int
	Wins  [2]int
	Ties  int

	// Turn-length distribution
	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Turns     []float64 // Store all values for median/percentile calculation

	Reasons map[game.Reason]int
	Eights  [2]int
	Drawn   [2]int

	// Cards left in the loser's hand, summed over decided games
	LosingCards int
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	if s.Reasons == nil {
		s.Reasons = make(map[game.Reason]int)
	}

	s.Games++
	turns := float64(result.Turns)
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Turns = append(s.Turns, turns)

	if result.Tie {
		s.Ties++
	} else {
		s.Wins[result.Winner]++
		s.LosingCards += result.Cards[result.Winner.Other()]
	}

	s.Reasons[result.Reason]++
	for _, seat := range game.Seats {
		s.Eights[seat] += result.Eights[seat]
		s.Drawn[seat] += result.Drawn[seat]
	}
}

// WinRate returns the fraction of games won by seat
func (s *Statistics) WinRate(seat game.Seat) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins[seat]) / float64(s.Games)
}

// TieRate returns the fraction of tied games
func (s *Statistics) TieRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Ties) / float64(s.Games)
}

// WinRateInterval95 returns the normal-approximation 95% confidence
// interval for a seat's win rate, clamped to [0, 1]
func (s *Statistics) WinRateInterval95(seat game.Seat) (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	p := s.WinRate(seat)
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Games))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// MeanTurns returns the arithmetic mean game length in turns
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of game length
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanTurns()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game length
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean game length
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean game
// length using Student's t with n-1 degrees of freedom
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.MeanTurns()
	if s.Games < 2 {
		return mean, mean
	}

	tDist := distuv.StudentsT{
		Nu:    float64(s.Games - 1),
		Mu:    0,
		Sigma: 1,
	}
	// Two-tailed 95% CI uses 97.5th percentile
	margin := tDist.Quantile(0.975) * s.StdError()
	return mean - margin, mean + margin
}

// SeatComparison tests the player seat's share of decided games against an
// even split
type SeatComparison struct {
	Decided int
	Share   float64 // player wins / decided games
	ZScore  float64
	PValue  float64 // two-tailed
}

// CompareSeats runs a normal-approximation test of whether one seat wins
// decided games more often than the other
func (s *Statistics) CompareSeats() SeatComparison {
	c := SeatComparison{Decided: s.Wins[game.Player] + s.Wins[game.Computer], PValue: 1}
	if c.Decided == 0 {
		return c
	}

	n := float64(c.Decided)
	c.Share = float64(s.Wins[game.Player]) / n
	c.ZScore = (float64(s.Wins[game.Player]) - n/2) / math.Sqrt(n/4)

	p := 2 * (1 - distuv.UnitNormal.CDF(math.Abs(c.ZScore)))
	c.PValue = math.Max(0, math.Min(1, p))
	return c
}

// InterpretPValue returns a human-readable interpretation of p-value
func InterpretPValue(p float64, alpha float64) string {
	switch {
	case p < 0.001:
		return "highly significant"
	case p < 0.01:
		return "very significant"
	case p < alpha:
		return "significant"
	case p < 0.10:
		return "marginally significant"
	default:
		return "not significant"
	}
}

// Median returns the median game length
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Turns))
	copy(sorted, s.Turns)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate performs consistency checks on the tallies
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Turns) != s.Games {
		return fmt.Errorf("turns array length (%d) does not match games count (%d)",
			len(s.Turns), s.Games)
	}

	if decided := s.Wins[game.Player] + s.Wins[game.Computer] + s.Ties; decided != s.Games {
		return fmt.Errorf("wins and ties (%d) do not match games count (%d)", decided, s.Games)
	}

	reasons := 0
	for _, n := range s.Reasons {
		reasons += n
	}
	if reasons != s.Games {
		return fmt.Errorf("end reasons (%d) do not match games count (%d)", reasons, s.Games)
	}

	return nil
}
