// Package editor provides the single-line cell editor with optional
// completion suggestions.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tracklist/internal/completion"
	"github.com/llehouerou/tracklist/internal/ui"
	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/popup"
	"github.com/llehouerou/tracklist/internal/ui/render"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// DefaultMaxSuggestions is the dropdown height when none is set.
const DefaultMaxSuggestions = 6

func suggestionStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func selectedStyle() lipgloss.Style {
	return styles.T().S().Cursor
}

// Model edits one cell. Esc cancels, Enter commits the text (or the
// highlighted suggestion), Tab copies the highlighted suggestion into the
// input.
type Model struct {
	ui.Base
	input     textinput.Model
	completer *completion.Completer
	matches   []string
	selected  int
	maxShown  int
	context   any
}

// New creates an editor holding initial. completer may be nil.
func New(initial string, context any, completer *completion.Completer) *Model {
	in := textinput.New()
	in.Prompt = "> "
	in.SetValue(initial)
	in.CursorEnd()
	in.Focus()

	return &Model{
		input:     in,
		completer: completer,
		selected:  -1,
		maxShown:  DefaultMaxSuggestions,
		context:   context,
	}
}

// SetMaxSuggestions sets how many suggestions the dropdown shows.
func (m *Model) SetMaxSuggestions(n int) {
	m.maxShown = max(n, 0)
}

// Value returns the text being edited.
func (m *Model) Value() string {
	return m.input.Value()
}

// Context returns the value passed to New.
func (m *Model) Context() any {
	return m.context
}

// Completer returns the suggestion source, nil for a plain editor.
func (m *Model) Completer() *completion.Completer {
	return m.completer
}

// Matches returns the current suggestions.
func (m *Model) Matches() []string {
	return m.matches
}

// Selected returns the highlighted suggestion index, -1 for none.
func (m *Model) Selected() int {
	return m.selected
}

// SetSize implements popup.Popup. The height bounds the dropdown.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-3, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, action.Cmd(Source, Result{Canceled: true, Context: m.context})

		case "enter":
			text := m.input.Value()
			if m.selected >= 0 && m.selected < len(m.matches) {
				text = m.matches[m.selected]
			}
			return m, action.Cmd(Source, Result{Text: text, Context: m.context})

		case "tab":
			m.accept()
			return m, nil

		case "up", "ctrl+p":
			m.moveSelection(-1)
			return m, nil

		case "down", "ctrl+n":
			m.moveSelection(1)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *Model) refresh() {
	m.selected = -1
	if m.completer == nil {
		m.matches = nil
		return
	}
	m.matches = m.completer.Match(m.input.Value())
}

func (m *Model) visibleMatches() []string {
	if len(m.matches) > m.maxShown {
		return m.matches[:m.maxShown]
	}
	return m.matches
}

func (m *Model) moveSelection(delta int) {
	n := len(m.visibleMatches())
	if n == 0 {
		return
	}
	switch {
	case m.selected < 0 && delta > 0:
		m.selected = 0
	case m.selected < 0:
		m.selected = n - 1
	default:
		m.selected = (m.selected + delta + n) % n
	}
}

func (m *Model) accept() {
	if len(m.matches) == 0 {
		return
	}
	pick := m.selected
	if pick < 0 {
		pick = 0
	}
	m.input.SetValue(m.matches[pick])
	m.input.CursorEnd()
	m.matches = nil
	m.selected = -1
}

// View implements popup.Popup: the input line followed by the dropdown.
func (m *Model) View() string {
	if m.Hidden() {
		return ""
	}

	lines := []string{m.input.View()}
	visible := m.visibleMatches()
	if h := m.Height() - 1; h >= 0 && len(visible) > h {
		visible = visible[:h]
	}
	for i, s := range visible {
		text := render.TruncateAndPad(s, m.Width())
		if i == m.selected {
			lines = append(lines, selectedStyle().Render(text))
		} else {
			lines = append(lines, suggestionStyle().Render(text))
		}
	}
	return strings.Join(lines, "\n")
}
