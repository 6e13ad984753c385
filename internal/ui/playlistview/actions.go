package playlistview

import (
	"github.com/llehouerou/tracklist/internal/playlist"
)

// Source names the view in the action messages it emits.
const Source = "playlistview"

// SessionChanged signals that the current row, the queue, the stop-after
// flag or the cursor changed and need persisting.
type SessionChanged struct{}

// ActionType implements action.Action.
func (a SessionChanged) ActionType() string { return "playlistview.session_changed" }

// TrackEdited reports a committed cell edit.
type TrackEdited struct {
	Edit playlist.Edit
}

// ActionType implements action.Action.
func (a TrackEdited) ActionType() string { return "playlistview.track_edited" }

// Quit requests the program to persist its state and exit.
type Quit struct{}

// ActionType implements action.Action.
func (a Quit) ActionType() string { return "playlistview.quit" }
