package playlistview

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/keymap"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/canvas"
	"github.com/llehouerou/tracklist/internal/ui/delegate"
	"github.com/llehouerou/tracklist/internal/ui/popup"
	"github.com/llehouerou/tracklist/internal/ui/render"
	"github.com/llehouerou/tracklist/internal/ui/styles"
)

// AppName heads the status line.
const AppName = "tracklist"

// View renders the table with the editor and help box on top.
func (m Model) View() string {
	if m.Hidden() {
		return ""
	}
	w, h := m.Size()

	parts := []string{
		m.renderHeader(),
		styles.T().S().Subtle.Render(render.Separator(w)),
	}
	if m.bodyHeight() > 0 {
		parts = append(parts, m.renderBody())
	}
	parts = append(parts, m.renderStatus())
	view := strings.Join(parts, "\n")

	if m.editor != nil {
		view = m.overlayEditor(view)
	}
	return m.help.Overlay(view, w, h)
}

func (m Model) renderHeader() string {
	w := m.Width()
	t := styles.T()
	c := canvas.New(w, 1)
	c.Fill(c.Bounds(), canvas.FromLipgloss(t.BgHeader))

	st := canvas.Style{Fg: canvas.FromLipgloss(t.FgMuted), Bold: true}
	start, end := m.cursor.VisibleCols(m.widths, w)
	for i := start; i < end; i++ {
		x := m.cursor.ColumnX(m.widths, i)
		r := image.Rect(x, 0, x+m.widths[i], 1)
		c.DrawText(r, m.columns[i].Title(), st, alignFor(m.columns[i]))
	}
	return c.Render()
}

// renderBody paints the visible rows cell by cell through the delegates.
func (m Model) renderBody() string {
	w := m.Width()
	t := styles.T()
	c := canvas.New(w, m.bodyHeight())
	bg := canvas.FromLipgloss(t.BgBase)
	c.Fill(c.Bounds(), bg)
	c.SetBackground(bg)

	rh := m.rowHeight()
	start, end := m.cursor.VisibleRows(m.list.Len(), m.visibleRows())
	colStart, colEnd := m.cursor.VisibleCols(m.widths, w)

	for row := start; row < end; row++ {
		y := (row - start) * rh
		if row == m.cursor.Row() {
			c.Fill(image.Rect(0, y, w, y+rh), canvas.FromLipgloss(t.BgCursor))
		}
		for i := colStart; i < colEnd; i++ {
			x := m.cursor.ColumnX(m.widths, i)
			r := image.Rect(x, y, x+m.widths[i], y+rh)
			col := m.columns[i]
			m.table.For(col).Paint(c, m.styleOption(row, i, r), m.ref(row, col))
		}
		if m.list.IsCurrent(row) && colStart < colEnd {
			m.drawPlayingMarker(c, y, rh)
		}
	}
	return c.Render()
}

// drawPlayingMarker puts the now-playing glyph in the indent of the
// leading cell.
func (m Model) drawPlayingMarker(c *canvas.Canvas, y, rh int) {
	glyph := icons.Playing()
	if lipgloss.Width(glyph) > m.table.Options().CurrentIndent {
		return
	}
	st := canvas.Style{Fg: canvas.FromLipgloss(styles.T().Primary), Bold: true}
	c.SetCell(0, y+(rh-1)/2, glyph, st)
}

func (m Model) styleOption(row, colIdx int, r image.Rectangle) delegate.StyleOption {
	t := styles.T()
	font := canvas.Style{Fg: canvas.FromLipgloss(t.FgBase)}
	if m.list.IsCurrent(row) {
		font = canvas.Style{Fg: canvas.FromLipgloss(t.Primary), Bold: true}
	}

	opt := delegate.StyleOption{
		Rect:  r,
		Font:  font,
		Align: alignFor(m.columns[colIdx]),
	}
	// only the first visible column takes the now-playing indent
	opt.Leading = colIdx == m.cursor.ColOffset()
	if row == m.cursor.Row() {
		sel := t.BgCursor
		if colIdx == m.cursor.Col() {
			sel = t.BgCellFocus
		}
		opt.Selected = true
		opt.Selection = canvas.Style{Bg: canvas.FromLipgloss(sel)}
	}
	return opt
}

// alignFor right-aligns numeric columns.
func alignFor(col playlist.Column) canvas.Align {
	switch col {
	case playlist.ColumnTrack, playlist.ColumnDisc, playlist.ColumnYear,
		playlist.ColumnLength, playlist.ColumnBitrate, playlist.ColumnSamplerate,
		playlist.ColumnFilesize, playlist.ColumnPlaycount:
		return canvas.AlignRight
	default:
		return canvas.AlignLeft
	}
}

func (m Model) renderStatus() string {
	w := m.Width()
	t := styles.T()
	title := styles.BoldGradient(AppName, t.Primary, t.BorderFocus)
	rest := w - lipgloss.Width(title) - 1
	if rest <= 0 {
		return render.Truncate(AppName, w)
	}

	left := m.status
	style := styles.T().S().Muted
	switch {
	case m.statusErr:
		style = styles.T().S().Error
	case left == "":
		left = m.keys.Hint(
			keymap.ActionPlay,
			keymap.ActionToggleQueue,
			keymap.ActionEdit,
			keymap.ActionQuit,
		)
	}
	return title + " " + style.Render(render.Row(left, m.position(), rest))
}

// position describes the cursor row and the queue length.
func (m Model) position() string {
	n := m.list.Len()
	if n == 0 {
		return "empty"
	}
	pos := fmt.Sprintf("%d/%d", m.cursor.Row()+1, n)
	if q := len(m.list.Queued()); q > 0 {
		pos += fmt.Sprintf(" · %d queued", q)
	}
	return pos
}

// overlayEditor draws the editor over the selected cell.
func (m Model) overlayEditor(view string) string {
	w, h := m.Size()
	r := m.cellRect(m.cursor.Row(), m.cursor.Col())
	at := image.Pt(max(r.Min.X, 0), r.Min.Y)
	return popup.Compose(view, popup.Place(m.editor.View(), at, w, h), w, h)
}
