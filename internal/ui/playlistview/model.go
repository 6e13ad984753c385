// Package playlistview shows a playlist as a table whose cells are painted
// by the column delegates. It owns the grid cursor, the inline editor and
// the help box.
package playlistview

import (
	"image"

	"github.com/atotto/clipboard"

	"github.com/llehouerou/tracklist/internal/keymap"
	"github.com/llehouerou/tracklist/internal/library"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/tags"
	"github.com/llehouerou/tracklist/internal/ui"
	"github.com/llehouerou/tracklist/internal/ui/cursor"
	"github.com/llehouerou/tracklist/internal/ui/delegate"
	"github.com/llehouerou/tracklist/internal/ui/editor"
	"github.com/llehouerou/tracklist/internal/ui/tooltip"
)

const (
	headerHeight = ui.HeaderHeight
	footerHeight = 1 // status line

	historySize = 100

	// editorMinWidth keeps the editor usable over narrow columns.
	editorMinWidth = 24
	// editorMaxHeight bounds the input line plus its dropdown.
	editorMaxHeight = 8
)

// DefaultWidths are the column widths used when none is configured.
var DefaultWidths = map[playlist.Column]int{
	playlist.ColumnTitle:        30,
	playlist.ColumnArtist:       20,
	playlist.ColumnAlbum:        20,
	playlist.ColumnAlbumArtist:  20,
	playlist.ColumnComposer:     16,
	playlist.ColumnGenre:        12,
	playlist.ColumnTrack:        3,
	playlist.ColumnDisc:         4,
	playlist.ColumnYear:         4,
	playlist.ColumnLength:       6,
	playlist.ColumnBitrate:      8,
	playlist.ColumnSamplerate:   8,
	playlist.ColumnFilename:     24,
	playlist.ColumnFilesize:     9,
	playlist.ColumnFiletype:     9,
	playlist.ColumnDateCreated:  16,
	playlist.ColumnDateModified: 16,
	playlist.ColumnPlaycount:    5,
	playlist.ColumnComment:      20,
}

const fallbackWidth = 10

// TrackStore persists edited tags. *library.Library implements it.
type TrackStore interface {
	Upsert(t library.Track) (int64, error)
}

// TagWriter stores edited tags in the music file. tags.Write is one.
type TagWriter func(path string, t *tags.Tag) error

// Config holds the view settings.
type Config struct {
	Columns []playlist.Column
	Widths  map[playlist.Column]int // overrides DefaultWidths
	Store   TrackStore              // nil keeps edits in memory
	Tags    TagWriter               // nil leaves the files untouched
	Keys    *keymap.Resolver        // nil uses keymap.Default
	Copy    func(string) error      // nil uses the system clipboard
}

// Model is the playlist table.
type Model struct {
	ui.Base
	list    *playlist.Playlist
	table   *delegate.Table
	columns []playlist.Column
	widths  []int
	cursor  cursor.Grid
	keys    *keymap.Resolver
	store   TrackStore
	tagger  TagWriter
	clip    func(string) error
	history *playlist.EditHistory

	editor  *editor.Model // nil unless a cell is being edited
	help    *tooltip.Model

	status    string
	statusErr bool
}

// New creates a view over list painted through table.
func New(list *playlist.Playlist, table *delegate.Table, cfg Config) Model {
	cols := cfg.Columns
	if len(cols) == 0 {
		cols = playlist.Columns()
	}
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = columnWidth(col, cfg.Widths)
	}
	keys := cfg.Keys
	if keys == nil {
		keys = keymap.Default()
	}
	copyText := cfg.Copy
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	return Model{
		list:    list,
		table:   table,
		columns: cols,
		widths:  widths,
		cursor:  cursor.New(ui.ScrollMargin),
		keys:    keys,
		store:   cfg.Store,
		tagger:  cfg.Tags,
		clip:    copyText,
		history: playlist.NewEditHistory(historySize),
		help:    tooltip.New(),
	}
}

func columnWidth(col playlist.Column, overrides map[playlist.Column]int) int {
	if w, ok := overrides[col]; ok && w > 0 {
		return w
	}
	if w, ok := DefaultWidths[col]; ok {
		return w
	}
	return fallbackWidth
}

// SetSize sets the view dimensions and keeps the cursor on screen.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureRowVisible(m.list.Len(), m.visibleRows())
	m.cursor.EnsureColVisible(m.widths, width)
}

// SetCursor selects a cell, clamped to the playlist.
func (m *Model) SetCursor(row, col int) {
	m.cursor.JumpRow(row, m.list.Len(), m.visibleRows())
	m.cursor.JumpCol(col, m.widths, m.Width())
}

// Cursor returns the selected row and column index.
func (m Model) Cursor() (row, col int) {
	return m.cursor.Row(), m.cursor.Col()
}

// Columns returns the displayed columns in order.
func (m Model) Columns() []playlist.Column {
	return m.columns
}

// Playlist returns the displayed playlist.
func (m Model) Playlist() *playlist.Playlist {
	return m.list
}

// Editing reports whether the inline editor is open.
func (m Model) Editing() bool {
	return m.editor != nil
}

// Editor returns the open editor, or nil.
func (m Model) Editor() *editor.Model {
	return m.editor
}

// Help returns the help box host.
func (m Model) Help() *tooltip.Model {
	return m.help
}

// Status returns the status line message and whether it is an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// SetStatus shows a message on the status line.
func (m *Model) SetStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// bodyHeight is the number of lines available to rows.
func (m Model) bodyHeight() int {
	return max(m.Height()-headerHeight-footerHeight, 0)
}

// rowHeight is the tallest size hint among the cells of the selected row.
func (m Model) rowHeight() int {
	h := max(m.table.Options().MinHeight, 1)
	if m.list.Len() == 0 {
		return h
	}
	for _, col := range m.columns {
		hint := m.table.For(col).SizeHint(m.ref(m.cursor.Row(), col))
		h = max(h, hint.Y)
	}
	return h
}

// visibleRows is the number of rows that fit in the body.
func (m Model) visibleRows() int {
	return m.bodyHeight() / m.rowHeight()
}

func (m Model) ref(row int, col playlist.Column) delegate.CellRef {
	return delegate.CellRef{Source: m.list, Row: row, Column: col}
}

// selectedRef returns the cell under the cursor.
func (m Model) selectedRef() (delegate.CellRef, bool) {
	row, col := m.cursor.Row(), m.cursor.Col()
	if row >= m.list.Len() || col >= len(m.columns) {
		return delegate.CellRef{}, false
	}
	return m.ref(row, m.columns[col]), true
}

// cellRect returns the screen rectangle of a cell, header included.
func (m Model) cellRect(row, colIdx int) image.Rectangle {
	rh := m.rowHeight()
	x := m.cursor.ColumnX(m.widths, colIdx)
	y := headerHeight + (row-m.cursor.RowOffset())*rh
	return image.Rect(x, y, x+m.widths[colIdx], y+rh)
}
