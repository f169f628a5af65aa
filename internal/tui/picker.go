package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Choose, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Prev: key.NewBinding(
		key.WithKeys("up", "left", "k", "h", "shift+tab"),
		key.WithHelp("←/↑", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "right", "j", "l", "tab"),
		key.WithHelp("→/↓", "next"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/1-9", "choose"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Picker is a Bubble Tea model that asks the user to choose one option.
// Options can be picked with the cursor or by their 1-based number.
type Picker struct {
	title   string
	options []string
	cursor  int
	chosen  int
	quit    bool

	keys keyMap
	help help.Model
}

// NewPicker creates a picker over options
func NewPicker(title string, options []string) *Picker {
	return &Picker{
		title:   title,
		options: options,
		chosen:  -1,
		keys:    defaultKeys,
		help:    help.New(),
	}
}

// Init implements tea.Model
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || p.done() {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Quit):
		p.quit = true
		return p, tea.Quit
	case key.Matches(keyMsg, p.keys.Choose):
		p.chosen = p.cursor
		return p, tea.Quit
	case key.Matches(keyMsg, p.keys.Prev):
		p.cursor = (p.cursor - 1 + len(p.options)) % len(p.options)
	case key.Matches(keyMsg, p.keys.Next):
		p.cursor = (p.cursor + 1) % len(p.options)
	default:
		if n, err := strconv.Atoi(keyMsg.String()); err == nil && n >= 1 && n <= len(p.options) {
			p.cursor = n - 1
			p.chosen = p.cursor
			return p, tea.Quit
		}
	}
	return p, nil
}

// View renders the options with the cursor
func (p *Picker) View() string {
	var b strings.Builder
	b.WriteString(p.title)
	b.WriteString("\n\n")

	for i, option := range p.options {
		line := fmt.Sprintf("%d: %s", i+1, option)
		switch {
		case i == p.chosen:
			b.WriteString(SelectedStyle.Render("✔") + " " + SelectedStyle.Render(line))
		case i == p.cursor && !p.done():
			b.WriteString(SelectedStyle.Render(">") + " " + line)
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if !p.done() {
		b.WriteString("\n")
		b.WriteString(p.help.View(p.keys))
		b.WriteString("\n")
	}
	return b.String()
}

// Choice returns the chosen index once the user has picked one
func (p *Picker) Choice() (int, bool) {
	return p.chosen, p.chosen >= 0
}

// Quit reports whether the user asked to quit
func (p *Picker) Quit() bool {
	return p.quit
}

func (p *Picker) done() bool {
	return p.quit || p.chosen >= 0
}
