// Package cursor tracks the selected cell of the playlist grid and the
// scroll position that keeps it on screen.
package cursor

// ColumnGap is the number of blank cells between two columns.
const ColumnGap = 1

// Grid is a row and column cursor with independent scroll offsets.
// Row counts, column widths, and viewport sizes are passed to methods
// since they change with the playlist and the terminal.
type Grid struct {
	row       int
	rowOffset int
	margin    int // rows kept visible above/below the cursor

	col       int
	colOffset int // first visible column
}

// New creates a grid cursor with the given row scroll margin.
func New(margin int) Grid {
	return Grid{margin: margin}
}

// Row returns the selected row.
func (g Grid) Row() int { return g.row }

// Col returns the selected column index.
func (g Grid) Col() int { return g.col }

// RowOffset returns the first visible row.
func (g Grid) RowOffset() int { return g.rowOffset }

// ColOffset returns the first visible column.
func (g Grid) ColOffset() int { return g.colOffset }

// MoveRow moves the selection by delta rows and scrolls to keep it visible.
func (g *Grid) MoveRow(delta, rows, height int) {
	g.JumpRow(g.row+delta, rows, height)
}

// JumpRow selects row pos, clamped to the playlist.
func (g *Grid) JumpRow(pos, rows, height int) {
	if rows == 0 {
		return
	}
	g.row = clamp(pos, rows-1)
	g.EnsureRowVisible(rows, height)
}

// EnsureRowVisible scrolls so the selected row sits outside the margins.
func (g *Grid) EnsureRowVisible(rows, height int) {
	if height <= 0 || rows == 0 {
		return
	}
	margin := min(g.margin, (height-1)/2)
	if g.row < g.rowOffset+margin {
		g.rowOffset = max(g.row-margin, 0)
	}
	if g.row >= g.rowOffset+height-margin {
		g.rowOffset = g.row - height + margin + 1
	}
	g.rowOffset = clamp(g.rowOffset, max(rows-height, 0))
}

// VisibleRows returns the visible row range [start, end).
func (g Grid) VisibleRows(rows, height int) (start, end int) {
	if rows == 0 || height <= 0 {
		return 0, 0
	}
	return g.rowOffset, min(g.rowOffset+height, rows)
}

// MoveCol moves the selection by delta columns.
func (g *Grid) MoveCol(delta int, widths []int, width int) {
	g.JumpCol(g.col+delta, widths, width)
}

// JumpCol selects column col, clamped to the column list.
func (g *Grid) JumpCol(col int, widths []int, width int) {
	if len(widths) == 0 {
		return
	}
	g.col = clamp(col, len(widths)-1)
	g.EnsureColVisible(widths, width)
}

// EnsureColVisible scrolls horizontally until the selected column fits,
// or is the first visible column when it is wider than the view.
func (g *Grid) EnsureColVisible(widths []int, width int) {
	if len(widths) == 0 || width <= 0 {
		return
	}
	if g.col < g.colOffset {
		g.colOffset = g.col
		return
	}
	for g.colOffset < g.col && span(widths[g.colOffset:g.col+1]) > width {
		g.colOffset++
	}
}

// VisibleCols returns the column range [start, end) that starts inside the
// view. The last column may be clipped.
func (g Grid) VisibleCols(widths []int, width int) (start, end int) {
	if len(widths) == 0 || width <= 0 {
		return 0, 0
	}
	start = min(g.colOffset, len(widths))
	x := 0
	end = start
	for end < len(widths) && x < width {
		x += widths[end] + ColumnGap
		end++
	}
	return start, end
}

// ColumnX returns the view x of column i, given the current scroll.
// Columns scrolled out on the left have a negative x.
func (g Grid) ColumnX(widths []int, i int) int {
	if i >= g.colOffset {
		return spanWithGap(widths[g.colOffset:i])
	}
	return -spanWithGap(widths[i:g.colOffset])
}

// ClampToBounds keeps the selection inside a grid of rows x cols.
// Returns true if the cursor moved.
func (g *Grid) ClampToBounds(rows, cols int) bool {
	oldRow, oldCol := g.row, g.col
	if rows == 0 {
		g.row, g.rowOffset = 0, 0
	} else {
		g.row = clamp(g.row, rows-1)
		g.rowOffset = clamp(g.rowOffset, rows-1)
	}
	if cols == 0 {
		g.col, g.colOffset = 0, 0
	} else {
		g.col = clamp(g.col, cols-1)
		g.colOffset = clamp(g.colOffset, cols-1)
	}
	return g.row != oldRow || g.col != oldCol
}

// Reset selects the first cell of the grid.
func (g *Grid) Reset() {
	*g = Grid{margin: g.margin}
}

// HandleKey handles grid navigation keys and reports whether key was one.
// Rows: j/down, k/up, g/home, G/end, ctrl+d, ctrl+u.
// Columns: h/left, l/right, 0 (first), $ (last).
func (g *Grid) HandleKey(key string, rows, height int, widths []int, width int) bool {
	switch key {
	case "j", "down":
		g.MoveRow(1, rows, height)
	case "k", "up":
		g.MoveRow(-1, rows, height)
	case "g", "home":
		g.JumpRow(0, rows, height)
	case "G", "end":
		g.JumpRow(rows-1, rows, height)
	case "ctrl+d":
		g.MoveRow(max(height/2, 1), rows, height)
	case "ctrl+u":
		g.MoveRow(-max(height/2, 1), rows, height)
	case "h", "left":
		g.MoveCol(-1, widths, width)
	case "l", "right":
		g.MoveCol(1, widths, width)
	case "0":
		g.JumpCol(0, widths, width)
	case "$":
		g.JumpCol(len(widths)-1, widths, width)
	default:
		return false
	}
	return true
}

// span is the width of adjacent columns including the gaps between them.
func span(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	return spanWithGap(widths) - ColumnGap
}

// spanWithGap is span plus the gap after the last column.
func spanWithGap(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + ColumnGap
	}
	return total
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
