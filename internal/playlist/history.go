package playlist

// Edit records one committed cell edit.
type Edit struct {
	Row    int
	Column Column
	Old    string
	New    string
}

// EditHistory keeps committed edits for undo/redo.
type EditHistory struct {
	edits   []Edit
	next    int // index of the next redo entry
	maxSize int
}

// NewEditHistory creates a new history with the given maximum size.
func NewEditHistory(maxSize int) *EditHistory {
	return &EditHistory{
		edits:   make([]Edit, 0, maxSize),
		maxSize: maxSize,
	}
}

// Push records an edit, dropping any redo entries and the oldest edit
// once the limit is reached.
func (h *EditHistory) Push(e Edit) {
	h.edits = append(h.edits[:h.next], e)
	if h.maxSize > 0 && len(h.edits) > h.maxSize {
		h.edits = h.edits[len(h.edits)-h.maxSize:]
	}
	h.next = len(h.edits)
}

// Undo reverts the last edit on p and returns it.
func (h *EditHistory) Undo(p *Playlist) (Edit, bool) {
	if !h.CanUndo() {
		return Edit{}, false
	}
	e := h.edits[h.next-1]
	if !p.SetData(e.Row, e.Column, e.Old) {
		return Edit{}, false
	}
	h.next--
	return e, true
}

// Redo re-applies the last undone edit on p and returns it.
func (h *EditHistory) Redo(p *Playlist) (Edit, bool) {
	if !h.CanRedo() {
		return Edit{}, false
	}
	e := h.edits[h.next]
	if !p.SetData(e.Row, e.Column, e.New) {
		return Edit{}, false
	}
	h.next++
	return e, true
}

// CanUndo returns true if there is an edit to revert.
func (h *EditHistory) CanUndo() bool {
	return h.next > 0
}

// CanRedo returns true if there is an undone edit to re-apply.
func (h *EditHistory) CanRedo() bool {
	return h.next < len(h.edits)
}
