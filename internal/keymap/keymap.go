package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "navigation", "playlist", "edit", "help"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},

	{ActionMoveDown, []string{"j", "down"}, "Next row", "navigation"},
	{ActionMoveUp, []string{"k", "up"}, "Previous row", "navigation"},
	{ActionMoveLeft, []string{"h", "left"}, "Previous column", "navigation"},
	{ActionMoveRight, []string{"l", "right"}, "Next column", "navigation"},
	{ActionJumpStart, []string{"g", "home"}, "First row", "navigation"},
	{ActionJumpEnd, []string{"G", "end"}, "Last row", "navigation"},
	{ActionPageDown, []string{"ctrl+d"}, "Half page down", "navigation"},
	{ActionPageUp, []string{"ctrl+u"}, "Half page up", "navigation"},
	{ActionFirstCol, []string{"0"}, "First column", "navigation"},
	{ActionLastCol, []string{"$"}, "Last column", "navigation"},

	{ActionPlay, []string{"enter"}, "Play row", "playlist"},
	{ActionNext, []string{"n"}, "Next track", "playlist"},
	{ActionToggleQueue, []string{"a"}, "Toggle queued", "playlist"},
	{ActionToggleStopAfter, []string{"s"}, "Toggle stop after", "playlist"},
	{ActionClearQueue, []string{"c"}, "Clear queue", "playlist"},

	{ActionEdit, []string{"e"}, "Edit cell", "edit"},
	{ActionUndo, []string{"u"}, "Undo edit", "edit"},
	{ActionRedo, []string{"ctrl+r"}, "Redo edit", "edit"},
	{ActionCopy, []string{"y"}, "Copy cell text", "edit"},

	{ActionToolTip, []string{"?"}, "Show cell tooltip", "help"},
	{ActionWhatsThis, []string{"i"}, "What's this", "help"},
	{ActionDismiss, []string{"esc"}, "Dismiss help", "help"},
}

// ByContext returns the bindings of one context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
