// Package keymap defines key bindings and action dispatch for the playlist.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"

	// Grid navigation, handled by the cursor
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionFirstCol  Action = "first_column"
	ActionLastCol   Action = "last_column"

	// Playback markers
	ActionPlay            Action = "play"             // enter - make the row current
	ActionNext            Action = "next"             // n - advance like the player would
	ActionToggleQueue     Action = "toggle_queue"     // a
	ActionToggleStopAfter Action = "toggle_stop_after" // s
	ActionClearQueue      Action = "clear_queue"      // c

	// Editing
	ActionEdit Action = "edit" // e
	ActionUndo Action = "undo" // u
	ActionRedo Action = "redo" // ctrl+r
	ActionCopy Action = "copy" // y - displayed text to the clipboard

	// Help
	ActionToolTip   Action = "tooltip"    // ?
	ActionWhatsThis Action = "whats_this" // i
	ActionDismiss   Action = "dismiss"    // esc
)
