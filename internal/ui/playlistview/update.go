package playlistview

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/errmsg"
	"github.com/llehouerou/tracklist/internal/keymap"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/tags"
	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/delegate"
	"github.com/llehouerou/tracklist/internal/ui/editor"
)

// Update handles messages for the playlist view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case action.Msg:
		if a, ok := action.From(msg, editor.Source); ok {
			if r, ok := a.(editor.Result); ok {
				return m.finishEdit(r)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blink and other editor internals
	if m.editor != nil {
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.Msg) (Model, tea.Cmd) {
	p, cmd := m.editor.Update(msg)
	if ed, ok := p.(*editor.Model); ok {
		m.editor = ed
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editor != nil {
		return m.updateEditor(msg)
	}

	key := msg.String()
	act := m.keys.Resolve(key)

	// any key closes the help box; esc does nothing else
	if m.help.Visible() {
		m.help.Hide()
		if act == keymap.ActionDismiss {
			return m, nil
		}
	}

	rows := m.list.Len()
	oldRow, oldCol := m.Cursor()
	if m.cursor.HandleKey(key, rows, m.visibleRows(), m.widths, m.Width()) {
		if row, col := m.Cursor(); row != oldRow || col != oldCol {
			return m, emit(SessionChanged{})
		}
		return m, nil
	}

	row := m.cursor.Row()
	switch act {
	case keymap.ActionQuit:
		return m, emit(Quit{})

	case keymap.ActionPlay:
		t := m.list.SetCurrent(row)
		if t == nil {
			return m, nil
		}
		m.SetStatus("Playing: "+t.Title, false)
		return m, emit(SessionChanged{})

	case keymap.ActionNext:
		t := m.list.Next()
		if t == nil {
			m.SetStatus("Stopped", false)
		} else {
			m.cursor.JumpRow(m.list.CurrentIndex(), rows, m.visibleRows())
			m.SetStatus("Playing: "+t.Title, false)
		}
		return m, emit(SessionChanged{})

	case keymap.ActionToggleQueue:
		if row >= rows {
			return m, nil
		}
		if m.list.ToggleQueued(row) {
			m.SetStatus(fmt.Sprintf("Queued at position %d", m.list.QueuePosition(row)+1), false)
		} else {
			m.SetStatus("Removed from queue", false)
		}
		return m, emit(SessionChanged{})

	case keymap.ActionToggleStopAfter:
		if row >= rows {
			return m, nil
		}
		m.list.ToggleStopAfter(row)
		if m.list.StopAfter(row) {
			m.SetStatus("Stopping after this track", false)
		} else {
			m.SetStatus("", false)
		}
		return m, emit(SessionChanged{})

	case keymap.ActionClearQueue:
		m.list.ClearQueue()
		m.SetStatus("Queue cleared", false)
		return m, emit(SessionChanged{})

	case keymap.ActionEdit:
		return m.startEdit()

	case keymap.ActionUndo:
		if e, ok := m.history.Undo(m.list); ok {
			m.SetStatus("Undid "+e.Column.Title()+" edit", false)
			m.persist(e.Row)
			return m, emit(TrackEdited{Edit: e})
		}

	case keymap.ActionRedo:
		if e, ok := m.history.Redo(m.list); ok {
			m.SetStatus("Redid "+e.Column.Title()+" edit", false)
			m.persist(e.Row)
			return m, emit(TrackEdited{Edit: e})
		}

	case keymap.ActionCopy:
		m.copyCell()

	case keymap.ActionToolTip:
		m.showHelp(delegate.HelpToolTip)

	case keymap.ActionWhatsThis:
		m.showHelp(delegate.HelpWhatsThis)
	}

	return m, nil
}

// startEdit opens the column's editor over the selected cell.
func (m Model) startEdit() (Model, tea.Cmd) {
	ref, ok := m.selectedRef()
	if !ok {
		return m, nil
	}
	if !ref.Column.Editable() {
		m.SetStatus(ref.Column.Title()+" cannot be edited", false)
		return m, nil
	}

	ed := m.table.For(ref.Column).CreateEditor(ref)
	r := m.cellRect(ref.Row, m.cursor.Col())
	x := max(r.Min.X, 0)
	width := min(max(r.Dx(), editorMinWidth), m.Width()-x)
	height := min(editorMaxHeight, m.Height()-r.Min.Y)
	ed.SetSize(max(width, 1), max(height, 1))

	m.editor = ed
	m.SetStatus("", false)
	return m, ed.Init()
}

// finishEdit commits or drops the editor's text.
func (m Model) finishEdit(r editor.Result) (Model, tea.Cmd) {
	m.editor = nil
	if r.Canceled {
		return m, nil
	}
	ref, ok := r.Context.(delegate.CellRef)
	if !ok {
		return m, nil
	}

	old := ref.Value().String()
	if !m.list.SetData(ref.Row, ref.Column, r.Text) {
		err := fmt.Errorf("%q is not a valid value", r.Text)
		m.SetStatus(errmsg.FormatWith(errmsg.OpTagEdit, ref.Column.Title(), err), true)
		return m, nil
	}

	e := playlist.Edit{Row: ref.Row, Column: ref.Column, Old: old, New: ref.Value().String()}
	if e.Old == e.New {
		return m, nil
	}
	m.history.Push(e)
	m.persist(ref.Row)
	return m, emit(TrackEdited{Edit: e})
}

// persist writes the row's tags to the music file when enabled, then to
// the track store.
func (m *Model) persist(row int) {
	t := m.list.Track(row)
	if t == nil {
		return
	}
	if m.tagger != nil && tags.Writable(t.Path) {
		if err := m.tagger(t.Path, t.Tag()); err != nil {
			m.SetStatus(errmsg.FormatWith(errmsg.OpTagWrite, t.Path, err), true)
		} else if info, err := os.Stat(t.Path); err == nil {
			t.Modified = info.ModTime()
			t.Filesize = info.Size()
		}
	}
	if m.store == nil {
		return
	}
	id, err := m.store.Upsert(playlist.ToLibraryTrack(*t))
	if err != nil {
		m.SetStatus(errmsg.FormatWith(errmsg.OpLibraryUpdate, t.Path, err), true)
		return
	}
	t.ID = id
}

// copyCell puts the selected cell's displayed text, suffix included, on
// the clipboard.
func (m *Model) copyCell() {
	ref, ok := m.selectedRef()
	if !ok {
		return
	}
	text := m.table.For(ref.Column).DisplayText(ref.Value())
	if text == "" {
		m.SetStatus("Nothing to copy", false)
		return
	}
	if err := m.clip(text); err != nil {
		m.SetStatus(errmsg.Format(errmsg.OpClipboard, err), true)
		return
	}
	m.SetStatus("Copied "+text, false)
}

// showHelp asks the selected cell's delegate for help text. A what's-this
// request is first offered as a query, as the delegate may decline it.
func (m *Model) showHelp(kind delegate.HelpKind) {
	ref, ok := m.selectedRef()
	if !ok {
		return
	}
	r := m.cellRect(ref.Row, m.cursor.Col())
	pos := r.Min
	pos.X = max(pos.X, 0)
	pos.Y = r.Max.Y - 1

	d := m.table.For(ref.Column)
	if kind == delegate.HelpWhatsThis &&
		!d.HelpEvent(delegate.HelpRequest{Kind: delegate.HelpQueryWhatsThis, Pos: pos}, m.help, ref) {
		m.SetStatus("Nothing to show", false)
		return
	}
	if !d.HelpEvent(delegate.HelpRequest{Kind: kind, Pos: pos}, m.help, ref) {
		m.SetStatus("Nothing to show", false)
	}
}

func emit(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}
