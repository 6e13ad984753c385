package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/popup"
)

// PopupHarness drives a popup with key presses and keeps the last command
// it returned.
type PopupHarness struct {
	popup popup.Popup
	last  tea.Cmd
}

// NewPopupHarness sizes p and runs its Init.
func NewPopupHarness(p popup.Popup, width, height int) *PopupHarness {
	p.SetSize(width, height)
	return &PopupHarness{popup: p, last: p.Init()}
}

// Popup returns the driven popup.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the popup's plain rendering.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// Send delivers msg. A nil command does not replace the last one.
func (h *PopupHarness) Send(msg tea.Msg) {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.last = cmd
	}
}

// Press sends each named key, as printed by tea.KeyMsg.String.
func (h *PopupHarness) Press(keys ...string) {
	for _, k := range keys {
		h.Send(Key(k))
	}
}

// Type sends s one rune at a time.
func (h *PopupHarness) Type(s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// LastCmd returns the last non-nil command.
func (h *PopupHarness) LastCmd() tea.Cmd {
	return h.last
}

// LastAction runs the last command and returns the action it emitted.
func (h *PopupHarness) LastAction() (action.Msg, bool) {
	msg, ok := ExecuteCmd(h.last).(action.Msg)
	return msg, ok
}

// ExecuteCmd runs cmd, returning nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
