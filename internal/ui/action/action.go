// Package action carries the results of UI components up to the program.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result reported by a component. ActionType names it as
// "<source>.<name>".
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that emitted it:
// "playlistview" or "editor".
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}

// From returns the action carried by msg when msg comes from source.
func From(msg tea.Msg, source string) (Action, bool) {
	m, ok := msg.(Msg)
	if !ok || m.Source != source {
		return nil, false
	}
	return m.Action, true
}
