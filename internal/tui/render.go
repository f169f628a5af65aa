package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/crazyeights/internal/deck"
	"github.com/lox/crazyeights/internal/game"
)

var seatNames = map[game.Seat]string{
	game.Player:   "Player",
	game.Computer: "Computer",
}

// CardString renders a card in its suit colour
func CardString(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// HandString renders cards separated by spaces
func HandString(cards []deck.Card) string {
	if len(cards) == 0 {
		return InfoStyle.Render("(none)")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = CardString(c)
	}
	return strings.Join(parts, " ")
}

// SuitString renders a suit symbol with its name, e.g. "♥ hearts"
func SuitString(s deck.Suit) string {
	label := s.String() + " " + s.Name()
	if s.IsRed() {
		return RedCardStyle.Render(label)
	}
	return BlackCardStyle.Render(label)
}

// RenderTable draws the table from the viewing seat. The opponent's cards
// are only shown when reveal is set.
func RenderTable(v game.View, reveal bool) string {
	top := InfoStyle.Render("(empty)")
	if c, ok := v.TopOfDiscard(); ok {
		top = CardString(c)
	}

	opponent := fmt.Sprintf("%d cards", len(v.OpponentHand))
	if reveal {
		opponent = HandString(v.OpponentHand)
	}

	row := func(label, value string) string {
		return LabelStyle.Render(label) + value
	}

	rows := []string{
		HeaderStyle.Render(" CRAZY 8's "),
		"",
		row("Next play:", NextPlayStyle.Render("➜")+" "+CardString(v.NextPlay)),
		row("Top of discard:", top),
		row("Cards in deck:", fmt.Sprintf("%d", len(v.Deck))),
		"",
		row(seatNames[v.Seat.Other()]+" hand:", opponent),
		row(seatNames[v.Seat]+" hand:", HandString(v.Hand)),
	}
	return TableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderDraw describes a forced draw for the seat that drew
func RenderDraw(drawn []deck.Card, played deck.Card) string {
	return strings.Join([]string{
		WarningStyle.Render("You have no playable cards"),
		"Cards drawn: " + HandString(drawn),
		"Card played: " + CardString(played),
	}, "\n")
}

// RenderWitness describes the opponent's completed turn
func RenderWitness(w game.Witness) string {
	name := seatNames[w.Seat]

	var b strings.Builder
	if len(w.Drawn) > 0 {
		fmt.Fprintf(&b, "%s drew %d %s: %s\n", name, len(w.Drawn), plural(len(w.Drawn), "card", "cards"), HandString(w.Drawn))
	}
	fmt.Fprintf(&b, "%s played %s", name, CardString(w.Played))
	if w.Wild {
		fmt.Fprintf(&b, " and named %s", SuitString(w.ChangedSuit))
	}
	return b.String()
}

// RenderGameOver announces the result to the viewing seat
func RenderGameOver(v game.View, r game.Result) string {
	var lines []string
	if r.Reason.OutOfCards() || len(v.Deck) == 0 {
		lines = append(lines, WarningStyle.Render("The deck is out of cards!"))
	}
	if r.Reason == game.DeckExhausted {
		if len(r.Drawn) > 0 {
			lines = append(lines, fmt.Sprintf("%s drew %d %s before the deck ran out: %s",
				seatNames[r.ExhaustedBy], len(r.Drawn), plural(len(r.Drawn), "card", "cards"), HandString(r.Drawn)))
		}
		lines = append(lines, InfoStyle.Render("No card left in the deck could be played."))
	}
	lines = append(lines, HeaderStyle.Render(" GAME OVER "))

	switch {
	case r.Tie:
		lines = append(lines, InfoStyle.Render("It's a draw!"))
	case r.Winner == v.Seat:
		lines = append(lines, SuccessStyle.Render(seatNames[r.Winner]+" is the winner!"))
	default:
		lines = append(lines, ErrorStyle.Render(seatNames[r.Winner]+" is the winner!"))
	}

	lines = append(lines, InfoStyle.Render(fmt.Sprintf("%s %d cards, %s %d cards, %d turns",
		seatNames[game.Player], r.Cards[game.Player],
		seatNames[game.Computer], r.Cards[game.Computer], r.Turns)))
	return strings.Join(lines, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
