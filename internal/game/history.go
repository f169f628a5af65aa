package game

import (
	"fmt"
	"strings"
)

// History is an in-memory Recorder that keeps every turn of a game
type History struct {
	Turns  []Turn
	Result *Result
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// RecordTurn appends a completed turn
func (h *History) RecordTurn(t Turn) {
	h.Turns = append(h.Turns, t)
}

// RecordResult stores the final result
func (h *History) RecordResult(r Result) {
	h.Result = &r
}

// Eights returns how many eights each seat played
func (h *History) Eights() [2]int {
	var n [2]int
	for _, t := range h.Turns {
		if t.Wild {
			n[t.Seat]++
		}
	}
	return n
}

// Drawn returns how many cards each seat was forced to draw
func (h *History) Drawn() [2]int {
	var n [2]int
	for _, t := range h.Turns {
		n[t.Seat] += len(t.Drawn)
	}
	return n
}

// Summary renders the game as plain text, one line per turn
func (h *History) Summary() string {
	var b strings.Builder
	b.WriteString("*** TURNS ***\n")
	for _, t := range h.Turns {
		fmt.Fprintf(&b, "%3d %-8s ", t.Number, t.Seat)
		switch {
		case t.Exhausted:
			fmt.Fprintf(&b, "drew %d, deck exhausted", len(t.Drawn))
		case len(t.Drawn) > 0:
			fmt.Fprintf(&b, "drew %d, played %s", len(t.Drawn), t.Played)
		default:
			fmt.Fprintf(&b, "played %s", t.Played)
		}
		if t.Wild {
			fmt.Fprintf(&b, ", named %s", t.ChangedSuit.Name())
		}
		b.WriteString("\n")
	}
	if h.Result != nil {
		b.WriteString("*** RESULT ***\n")
		b.WriteString(h.Result.String())
		b.WriteString("\n")
	}
	return b.String()
}
