package delegate

import (
	"github.com/llehouerou/tracklist/internal/completion"
	"github.com/llehouerou/tracklist/internal/ui/editor"
)

// CreateEditor returns an editor holding the cell's natural string value.
// The tag completion variant attaches suggestions read from the library
// index at this point; the list lives as long as the editor.
func (d Delegate) CreateEditor(ref CellRef) *editor.Model {
	initial := ref.Value().String()

	var completer *completion.Completer
	if d.Variant == VariantTagCompletion {
		opts := d.options()
		completer = completion.ForColumn(opts.Completion, ref.Column, opts.CompletionLimit)
	}
	return editor.New(initial, ref, completer)
}
