package editor

import (
	"github.com/llehouerou/tracklist/internal/ui/action"
)

// Source names the editor in the action messages it emits.
const Source = "editor"

// Result is emitted when the edit session ends.
type Result struct {
	Text     string
	Context  any  // passed through from New
	Canceled bool // escape pressed
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "editor.result" }

// ActionMsg creates an action.Msg for an editor action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
