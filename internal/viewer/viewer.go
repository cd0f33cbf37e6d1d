// Package viewer shows rendered decodings in a scrollable full-screen
// pager. The document is re-wrapped whenever the window is resized.
package viewer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stlalpha/strinspect/internal/decoding"
	"github.com/stlalpha/strinspect/internal/logging"
	"github.com/stlalpha/strinspect/internal/render"
)

// KeyMap defines key bindings for the pager. Scrolling keys are handled
// by the viewport's own key map.
type KeyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("15")).
	Background(lipgloss.Color("8"))

// Model is the pager state.
type Model struct {
	seqs     []decoding.Sequence
	palette  render.Palette
	keys     KeyMap
	viewport viewport.Model
	ready    bool
	width    int
}

// New creates a pager for the given decodings.
func New(seqs []decoding.Sequence, palette render.Palette) Model {
	return Model{
		seqs:    seqs,
		palette: palette,
		keys:    DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 1 // status line
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		if msg.Width != m.width {
			m.width = msg.Width
			logging.Debug("pager: re-wrapping for %d columns", msg.Width)
			m.viewport.SetContent(render.Document(m.seqs, msg.Width, m.palette))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	status := fmt.Sprintf(" %d encoding(s)  %3.0f%%  q quit ", len(m.seqs), m.viewport.ScrollPercent()*100)
	return m.viewport.View() + "\n" + statusStyle.Width(m.width).Render(status)
}

// Run shows the pager until the user quits. When standard input was
// consumed as data, ttyInput makes the program read keys from the
// controlling terminal instead.
func Run(seqs []decoding.Sequence, palette render.Palette, out io.Writer, ttyInput bool) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(out)}
	if ttyInput {
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(New(seqs, palette), opts...).Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}
