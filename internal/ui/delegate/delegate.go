// Package delegate renders and edits playlist cells. Each column is bound
// to a Delegate whose Variant selects how values are formatted and edited;
// all variants share the same paint pipeline, which adds the queue and
// stop-after badges and the now-playing indent.
package delegate

import (
	"image"

	"github.com/rivo/uniseg"

	"github.com/llehouerou/tracklist/internal/cell"
	"github.com/llehouerou/tracklist/internal/completion"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/canvas"
)

// RowSource provides cell values and the per-row playback roles.
// *playlist.Playlist implements it.
type RowSource interface {
	Value(row int, col playlist.Column) cell.Value
	IsCurrent(row int) bool
	QueuePosition(row int) int
	StopAfter(row int) bool
}

// CellRef addresses one cell of a RowSource.
type CellRef struct {
	Source RowSource
	Row    int
	Column playlist.Column
}

// Value returns the cell's value, invalid when there is no source.
func (r CellRef) Value() cell.Value {
	if r.Source == nil {
		return cell.Value{}
	}
	return r.Source.Value(r.Row, r.Column)
}

func (r CellRef) isCurrent() bool {
	return r.Source != nil && r.Source.IsCurrent(r.Row)
}

func (r CellRef) queuePosition() int {
	if r.Source == nil {
		return -1
	}
	return r.Source.QueuePosition(r.Row)
}

func (r CellRef) stopAfter() bool {
	return r.Source != nil && r.Source.StopAfter(r.Row)
}

// StyleOption is how the view wants a cell painted.
type StyleOption struct {
	Rect      image.Rectangle
	Font      canvas.Style
	Selected  bool
	Selection canvas.Style
	Align     canvas.Align

	// Leading marks the first visible column of the view.
	Leading bool
}

func (o StyleOption) textStyle() canvas.Style {
	if !o.Selected {
		return o.Font
	}
	st := o.Selection
	if !st.Fg.Set {
		st.Fg = o.Font.Fg
	}
	if !st.Bg.Set {
		st.Bg = o.Font.Bg
	}
	st.Bold = st.Bold || o.Font.Bold
	return st
}

// Options is shared by all delegates of a Table.
type Options struct {
	IndicatorColumn playlist.Column
	TitleColumn     playlist.Column
	Badge           BadgeStyle
	CurrentIndent   int
	MinHeight       int
	Locale          cell.Locale

	Completion      completion.Index
	CompletionLimit int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		IndicatorColumn: playlist.ColumnTitle,
		TitleColumn:     playlist.ColumnTitle,
		Badge:           DefaultBadgeStyle(),
		CurrentIndent:   2,
		MinHeight:       1,
		Locale:          cell.DefaultLocale(),
	}
}

// Variant selects a delegate's formatting and editing behaviour.
type Variant int

const (
	VariantBase Variant = iota
	VariantLength
	VariantSize
	VariantDate
	VariantFileType
	VariantText
	VariantTagCompletion
)

var variantNames = map[Variant]string{
	VariantBase:          "base",
	VariantLength:        "length",
	VariantSize:          "size",
	VariantDate:          "date",
	VariantFileType:      "filetype",
	VariantText:          "text",
	VariantTagCompletion: "tag_completion",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// Kind returns the value formatting rule of the variant.
func (v Variant) Kind() cell.Kind {
	switch v {
	case VariantLength:
		return cell.KindDuration
	case VariantSize:
		return cell.KindSize
	case VariantDate:
		return cell.KindDate
	case VariantFileType:
		return cell.KindFileType
	case VariantBase, VariantText, VariantTagCompletion:
		return cell.KindGeneric
	}
	return cell.KindGeneric
}

// Delegate renders and edits the cells of one column.
type Delegate struct {
	Variant Variant
	Suffix  string
	opts    *Options
}

// New creates a delegate reading shared options from opts.
func New(v Variant, suffix string, opts *Options) Delegate {
	return Delegate{Variant: v, Suffix: suffix, opts: opts}
}

func (d Delegate) options() *Options {
	if d.opts == nil {
		o := DefaultOptions()
		return &o
	}
	return d.opts
}

// DisplayText formats a value for display.
func (d Delegate) DisplayText(v cell.Value) string {
	return cell.Format(v, d.Variant.Kind(), d.options().Locale, d.Suffix)
}

// Paint draws the cell: background, formatted text, then the queue badge
// on the indicator column and the stop badge on the title column. Only the
// text moves right for the now-playing row on the leading column.
func (d Delegate) Paint(c *canvas.Canvas, opt StyleOption, ref CellRef) {
	opts := d.options()
	st := opt.textStyle()

	if st.Bg.Set {
		c.Fill(opt.Rect, st.Bg)
	}
	text := d.DisplayText(ref.Value())
	c.DrawText(d.adjusted(opt, ref), text, canvas.Style{Fg: st.Fg, Bold: st.Bold}, opt.Align)

	if ref.Column == opts.IndicatorColumn {
		opts.Badge.DrawQueue(c, opt.Rect, st, ref.queuePosition())
	}

	if ref.Column == opts.TitleColumn && ref.stopAfter() {
		r := opt.Rect
		r.Max.X -= d.IndicatorWidth(ref)
		opts.Badge.DrawStop(c, r, st)
	}
}

// adjusted moves the text origin right by the current indent when the
// cell is the now-playing row's leading cell.
func (d Delegate) adjusted(opt StyleOption, ref CellRef) image.Rectangle {
	r := opt.Rect
	if !opt.Leading || !ref.isCurrent() {
		return r
	}
	r.Min.X = min(r.Min.X+d.options().CurrentIndent, r.Max.X)
	return r
}

// IndicatorWidth is the space reserved for the queue badge of ref.
func (d Delegate) IndicatorWidth(ref CellRef) int {
	opts := d.options()
	if ref.Column != opts.IndicatorColumn {
		return 0
	}
	return opts.Badge.IndicatorWidth(ref.queuePosition())
}

// SizeHint returns the natural size of the cell in cells and lines. The
// height never goes below the configured minimum.
func (d Delegate) SizeHint(ref CellRef) image.Point {
	text := d.DisplayText(ref.Value())
	size := image.Pt(uniseg.StringWidth(text)+d.IndicatorWidth(ref), 1)
	size.Y = max(size.Y, d.options().MinHeight)
	return size
}
