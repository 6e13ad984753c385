// Package canvas is a paintable grid of terminal cells. Delegates draw into
// it with rectangles in cell units, then the grid is rendered to ANSI.
package canvas

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Style is the appearance of a cell.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

func (s Style) equal(o Style) bool {
	return s.Bold == o.Bold && s.Fg.Equal(o.Fg) && s.Bg.Equal(o.Bg)
}

// Cell is one terminal cell. A wide grapheme occupies its cell (Width 2)
// and the following one (Width 0).
type Cell struct {
	Content string
	Width   int
	Style   Style
}

// Align positions text horizontally inside a rectangle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is a width x height grid of cells.
type Canvas struct {
	width, height int
	cells         []Cell
	opacity       float64
	background    Color
}

// New creates a blank canvas.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		opacity: 1,
	}
	for i := range c.cells {
		c.cells[i] = Cell{Content: " ", Width: 1}
	}
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of lines.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// SetBackground sets the colour assumed under cells without a background,
// used when painting with opacity below 1.
func (c *Canvas) SetBackground(bg Color) {
	c.background = bg
}

// SetOpacity sets the opacity of subsequent painting, clamped to [0,1].
func (c *Canvas) SetOpacity(o float64) {
	c.opacity = min(max(o, 0), 1)
}

// Opacity returns the current painting opacity.
func (c *Canvas) Opacity() float64 {
	return c.opacity
}

// At returns the cell at (x, y); out of range gives a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{Content: " ", Width: 1}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) cell(x, y int) *Cell {
	return &c.cells[y*c.width+x]
}

// compose applies the current opacity: the painted colour is mixed over
// what is already there.
func (c *Canvas) compose(under, over Color) Color {
	if !over.Set || c.opacity >= 1 {
		return over
	}
	base := under
	if !base.Set {
		base = c.background
	}
	if !base.Set {
		return over
	}
	return base.Blend(over, c.opacity)
}

// Fill paints the background of every cell in r.
func (c *Canvas) Fill(r image.Rectangle, bg Color) {
	r = r.Intersect(c.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cl := c.cell(x, y)
			cl.Style.Bg = c.compose(cl.Style.Bg, bg)
		}
	}
}

// GradientAt returns the colour of a vertical gradient from top to bottom
// on line i of h lines. A single line takes the midpoint.
func GradientAt(top, bottom Color, i, h int) Color {
	if h <= 1 {
		return top.Blend(bottom, 0.5)
	}
	return top.Blend(bottom, float64(i)/float64(h-1))
}

// FillGradient paints r with a vertical gradient.
func (c *Canvas) FillGradient(r image.Rectangle, top, bottom Color) {
	h := r.Dy()
	for i := range h {
		line := image.Rect(r.Min.X, r.Min.Y+i, r.Max.X, r.Min.Y+i+1)
		c.Fill(line, GradientAt(top, bottom, i, h))
	}
}

// SetCell writes one grapheme at (x, y). An unset background keeps the
// cell's current one. Returns the number of columns used.
func (c *Canvas) SetCell(x, y int, content string, st Style) int {
	w := uniseg.StringWidth(content)
	if w == 0 {
		content, w = " ", 1
	}
	if !c.inside(x, y) || x+w > c.width {
		return 0
	}

	// break up wide graphemes that would be partially overwritten
	if cur := c.cell(x, y); cur.Width == 0 && x > 0 {
		*c.cell(x-1, y) = Cell{Content: " ", Width: 1, Style: c.cell(x-1, y).Style}
	}
	if end := x + w; end < c.width {
		if next := c.cell(end, y); next.Width == 0 {
			*next = Cell{Content: " ", Width: 1, Style: next.Style}
		}
	}

	cur := c.cell(x, y)
	bg := cur.Style.Bg
	if st.Bg.Set {
		bg = c.compose(bg, st.Bg)
	}
	style := Style{Fg: c.compose(bg, st.Fg), Bg: bg, Bold: st.Bold}
	*cur = Cell{Content: content, Width: w, Style: style}
	if w == 2 {
		*c.cell(x+1, y) = Cell{Width: 0, Style: style}
	}
	return w
}

// DrawText draws a single line of text inside r, vertically centred,
// truncated with an ellipsis when wider than r.
func (c *Canvas) DrawText(r image.Rectangle, text string, st Style, align Align) {
	r = r.Intersect(c.Bounds())
	if r.Empty() || text == "" {
		return
	}

	text = fit(strings.ReplaceAll(text, "\n", " "), r.Dx())
	tw := uniseg.StringWidth(text)

	x := r.Min.X
	switch align {
	case AlignCenter:
		x += (r.Dx() - tw) / 2
	case AlignRight:
		x = r.Max.X - tw
	case AlignLeft:
	}
	y := r.Min.Y + (r.Dy()-1)/2

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if x+gr.Width() > r.Max.X {
			break
		}
		x += c.SetCell(x, y, gr.Str(), st)
	}
}

// fit cuts text to width columns, ending with an ellipsis when cut.
// Widths are grapheme widths, the same ones SetCell places with.
func fit(text string, width int) string {
	if uniseg.StringWidth(text) <= width {
		return text
	}
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if used+gr.Width() > width-1 {
			break
		}
		b.WriteString(gr.Str())
		used += gr.Width()
	}
	return b.String() + "…"
}

// Line returns the plain text of line y.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for x := range c.width {
		b.WriteString(c.cell(x, y).Content)
	}
	return b.String()
}

// Render returns the canvas as styled terminal text, one line per row.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y := range c.height {
		lines[y] = c.renderLine(y)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) renderLine(y int) string {
	var out strings.Builder
	var run strings.Builder
	var runStyle Style
	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(lipglossStyle(runStyle).Render(run.String()))
		run.Reset()
	}

	for x := range c.width {
		cl := c.cell(x, y)
		if cl.Width == 0 {
			continue
		}
		if run.Len() > 0 && !cl.Style.equal(runStyle) {
			flush()
		}
		runStyle = cl.Style
		run.WriteString(cl.Content)
	}
	flush()
	return out.String()
}

func lipglossStyle(s Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg.Set {
		st = st.Foreground(s.Fg.Lipgloss())
	}
	if s.Bg.Set {
		st = st.Background(s.Bg.Lipgloss())
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}
