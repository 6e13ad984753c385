package delegate

import (
	"image"
	"strconv"

	"github.com/rivo/uniseg"

	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/ui/canvas"
)

// StopText is the label of the stop-after badge.
const StopText = "stop"

// BadgeStyle describes the rounded boxes drawn over cells: the queue
// position badge and the stop-after badge. Sizes are in cells.
type BadgeStyle struct {
	BoxLength int
	Border    int
	Inset     int

	GradientTop    canvas.Color
	GradientBottom canvas.Color
	Outline        canvas.Color

	OpacityFloor float64
	OpacitySteps int

	LeftCap  string
	RightCap string
}

// DefaultBadgeStyle returns the badge look with caps from the active icon set.
func DefaultBadgeStyle() BadgeStyle {
	left, right := icons.BadgeCaps()
	return BadgeStyle{
		BoxLength:      3,
		Border:         1,
		Inset:          0,
		GradientTop:    canvas.RGB(102, 150, 227),
		GradientBottom: canvas.RGB(77, 121, 200),
		Outline:        canvas.RGB(255, 255, 255),
		OpacityFloor:   0.4,
		OpacitySteps:   10,
		LeftCap:        left,
		RightCap:       right,
	}
}

// QueueOpacity fades the badge linearly from 1 at the queue head down to
// the floor at OpacitySteps and beyond.
func (b BadgeStyle) QueueOpacity(pos int) float64 {
	if b.OpacitySteps <= 0 || pos <= 0 {
		return 1
	}
	floor := min(max(b.OpacityFloor, 0), 1)
	capped := min(b.OpacitySteps, pos)
	return floor + (1-floor)*float64(b.OpacitySteps-capped)/float64(b.OpacitySteps)
}

// IndicatorWidth is the horizontal space a queue badge takes, or 0 when
// the row is not queued.
func (b BadgeStyle) IndicatorWidth(pos int) int {
	if pos < 0 {
		return 0
	}
	return b.BoxLength + 2*b.Border
}

// DrawBox draws a badge right-aligned in r with text centred on it. width
// is the inner width; -1 sizes it to the text plus two spaces. Returns the
// area covered.
func (b BadgeStyle) DrawBox(c *canvas.Canvas, r image.Rectangle, font canvas.Style, text string, width int) image.Rectangle {
	if width < 0 {
		width = uniseg.StringWidth(text) + 2
	}
	border := max(b.Border, 0)
	total := width + 2*border

	box := image.Rectangle{
		Min: image.Pt(r.Max.X-total, r.Min.Y+b.Inset),
		Max: image.Pt(r.Max.X, r.Max.Y-b.Inset),
	}
	if box.Dy() <= 0 {
		mid := r.Min.Y + (r.Dy()-1)/2
		box.Min.Y, box.Max.Y = mid, mid+1
	}
	box = box.Intersect(r)
	if box.Empty() {
		return box
	}

	inner := image.Rect(box.Min.X+border, box.Min.Y, box.Max.X-border, box.Max.Y)
	h := box.Dy()
	for i := range h {
		y := box.Min.Y + i
		fill := canvas.GradientAt(b.GradientTop, b.GradientBottom, i, h)
		c.Fill(image.Rect(inner.Min.X, y, inner.Max.X, y+1), fill)
		if border > 0 {
			b.drawCap(c, image.Rect(box.Min.X, y, inner.Min.X, y+1), b.LeftCap, fill, true)
			b.drawCap(c, image.Rect(inner.Max.X, y, box.Max.X, y+1), b.RightCap, fill, false)
		}
	}

	label := canvas.Style{Fg: b.Outline, Bold: true}
	if !label.Fg.Set {
		label.Fg = font.Fg
	}
	c.DrawText(inner, text, label, canvas.AlignCenter)
	return box
}

// drawCap closes one side of a badge line. Without a glyph the border is a
// filled block; with one, the glyph sits next to the fill and the rest of
// the border stays untouched.
func (b BadgeStyle) drawCap(c *canvas.Canvas, r image.Rectangle, glyph string, fill canvas.Color, left bool) {
	if r.Empty() {
		return
	}
	if glyph == "" {
		c.Fill(r, fill)
		return
	}
	x := r.Min.X
	if left {
		x = r.Max.X - 1
	}
	c.SetCell(x, r.Min.Y, glyph, canvas.Style{Fg: fill})
}

// DrawQueue draws the 1-based queue position badge with the opacity of
// its rank. Nothing is drawn for rows that are not queued.
func (b BadgeStyle) DrawQueue(c *canvas.Canvas, r image.Rectangle, font canvas.Style, pos int) {
	if pos < 0 {
		return
	}
	prev := c.Opacity()
	c.SetOpacity(b.QueueOpacity(pos))
	b.DrawBox(c, r, font, strconv.Itoa(pos+1), b.BoxLength)
	c.SetOpacity(prev)
}

// DrawStop draws the stop-after badge. r must already exclude the space
// reserved for the queue badge.
func (b BadgeStyle) DrawStop(c *canvas.Canvas, r image.Rectangle, font canvas.Style) {
	b.DrawBox(c, r, font, StopText, -1)
}
