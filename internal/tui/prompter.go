package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrQuit is returned when the human asks to leave the game or input ends
var ErrQuit = errors.New("player quit")

// Prompter asks the human to choose one of several options
type Prompter interface {
	// Choose returns the 0-based index of the chosen option
	Choose(title string, options []string) (int, error)
}

// TeaPrompter runs a Picker program for every choice
type TeaPrompter struct {
	opts []tea.ProgramOption
}

// NewTeaPrompter creates a prompter reading keys from in and drawing to out
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{opts: []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}}
}

func (p *TeaPrompter) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to choose from")
	}

	final, err := tea.NewProgram(NewPicker(title, options), p.opts...).Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}

	picker, ok := final.(*Picker)
	if !ok {
		return 0, fmt.Errorf("unexpected model %T", final)
	}
	if idx, ok := picker.Choice(); ok {
		return idx, nil
	}
	return 0, ErrQuit
}

// LinePrompter asks for a numbered choice one line at a time. It suits
// piped input and terminals without cursor support.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLinePrompter creates a prompter reading answers from in
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(in), out: out}
}

// Choose repeats the question until the answer is a valid option number.
// "q" or the end of input returns ErrQuit.
func (p *LinePrompter) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to choose from")
	}

	for {
		fmt.Fprintf(p.out, "\n%s\n\n", title)
		for i, option := range options {
			fmt.Fprintf(p.out, "  %d: %s\n", i+1, option)
		}
		fmt.Fprint(p.out, "> ")

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, ErrQuit
		}

		answer := strings.TrimSpace(p.scanner.Text())
		if strings.EqualFold(answer, "q") || strings.EqualFold(answer, "quit") {
			return 0, ErrQuit
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(p.out, ErrorStyle.Render(fmt.Sprintf("Enter a number from 1 to %d", len(options))))
	}
}
