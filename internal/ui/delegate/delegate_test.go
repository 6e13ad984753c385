package delegate

import (
	"image"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracklist/internal/cell"
	"github.com/llehouerou/tracklist/internal/filetype"
	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/library"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/ui/canvas"
)

// fakeSource serves one row.
type fakeSource struct {
	values    map[playlist.Column]cell.Value
	current   bool
	queuePos  int
	stopAfter bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{values: map[playlist.Column]cell.Value{}, queuePos: -1}
}

func (f *fakeSource) Value(_ int, col playlist.Column) cell.Value { return f.values[col] }
func (f *fakeSource) IsCurrent(int) bool                          { return f.current }
func (f *fakeSource) QueuePosition(int) int                       { return f.queuePos }
func (f *fakeSource) StopAfter(int) bool                          { return f.stopAfter }

type fakeIndex struct {
	artists []string
	albums  []library.Album
}

func (f fakeIndex) AllArtists() ([]string, error)       { return f.artists, nil }
func (f fakeIndex) AllAlbums() ([]library.Album, error) { return f.albums, nil }

type fakeHost struct {
	tooltips  []string
	whatsThis []string
	pos       image.Point
}

func (h *fakeHost) ShowToolTip(pos image.Point, text string) {
	h.pos = pos
	h.tooltips = append(h.tooltips, text)
}

func (h *fakeHost) ShowWhatsThis(pos image.Point, text string) {
	h.pos = pos
	h.whatsThis = append(h.whatsThis, text)
}

func titleRef(src *fakeSource) CellRef {
	return CellRef{Source: src, Row: 0, Column: playlist.ColumnTitle}
}

func TestQueueOpacity(t *testing.T) {
	b := DefaultBadgeStyle()

	assert.InDelta(t, 1.0, b.QueueOpacity(0), 1e-9)
	assert.InDelta(t, 0.7, b.QueueOpacity(5), 1e-9)
	assert.InDelta(t, 0.4, b.QueueOpacity(10), 1e-9)
	assert.InDelta(t, 0.4, b.QueueOpacity(250), 1e-9)

	prev := b.QueueOpacity(0)
	for pos := 1; pos < 30; pos++ {
		o := b.QueueOpacity(pos)
		assert.LessOrEqual(t, o, prev, "pos %d", pos)
		assert.GreaterOrEqual(t, o, 0.4)
		assert.LessOrEqual(t, o, 1.0)
		prev = o
	}
}

func TestIndicatorWidth(t *testing.T) {
	b := DefaultBadgeStyle()
	assert.Zero(t, b.IndicatorWidth(-1))
	for _, pos := range []int{0, 1, 9, 10, 500} {
		assert.Equal(t, 5, b.IndicatorWidth(pos))
	}

	b.BoxLength, b.Border = 4, 2
	assert.Equal(t, 8, b.IndicatorWidth(0))
}

func TestDrawBox_AutoWidth(t *testing.T) {
	b := DefaultBadgeStyle()
	c := canvas.New(20, 1)

	box := b.DrawBox(c, c.Bounds(), canvas.Style{}, "stop", -1)

	assert.Equal(t, image.Rect(12, 0, 20, 1), box)
	assert.Equal(t, strings.Repeat(" ", 14)+"stop  ", c.Line(0))
	assert.False(t, c.At(11, 0).Style.Bg.Set)
	assert.True(t, c.At(12, 0).Style.Bg.Set)
	assert.True(t, c.At(15, 0).Style.Bold)
}

func TestDrawBox_InsetAndGradient(t *testing.T) {
	b := DefaultBadgeStyle()
	b.Inset = 1
	c := canvas.New(10, 5)

	box := b.DrawBox(c, c.Bounds(), canvas.Style{}, "7", 3)

	assert.Equal(t, image.Rect(5, 1, 10, 4), box)
	assert.True(t, c.At(6, 1).Style.Bg.Equal(b.GradientTop))
	assert.True(t, c.At(6, 3).Style.Bg.Equal(b.GradientBottom))
	assert.False(t, c.At(6, 0).Style.Bg.Set)
	assert.Equal(t, "7", c.At(7, 2).Content)
}

func TestDrawBox_InsetTooLargeUsesMiddleLine(t *testing.T) {
	b := DefaultBadgeStyle()
	b.Inset = 1
	c := canvas.New(10, 1)

	box := b.DrawBox(c, c.Bounds(), canvas.Style{}, "1", 3)
	assert.Equal(t, image.Rect(5, 0, 10, 1), box)
}

func TestDrawBox_CapGlyphs(t *testing.T) {
	icons.Init("unicode")
	defer icons.Init("none")

	b := DefaultBadgeStyle()
	c := canvas.New(10, 1)
	b.DrawBox(c, c.Bounds(), canvas.Style{}, "1", 3)

	assert.Equal(t, "▐", c.At(5, 0).Content)
	assert.Equal(t, "▌", c.At(9, 0).Content)
	assert.True(t, c.At(5, 0).Style.Fg.Set)
	assert.False(t, c.At(5, 0).Style.Bg.Set)
}

func TestPaint_QueueBadgeAtHead(t *testing.T) {
	src := newFakeSource()
	src.values[playlist.ColumnTitle] = cell.String("Come Together")
	src.queuePos = 0

	table := Default(DefaultOptions())
	c := canvas.New(20, 1)
	table.For(playlist.ColumnTitle).Paint(c, StyleOption{Rect: c.Bounds()}, titleRef(src))

	line := c.Line(0)
	assert.True(t, strings.HasPrefix(line, "Come Together"))
	assert.Equal(t, "1", c.At(17, 0).Content)
	assert.True(t, c.At(17, 0).Style.Bold)

	b := table.Options().Badge
	mid := canvas.GradientAt(b.GradientTop, b.GradientBottom, 0, 1)
	assert.True(t, c.At(16, 0).Style.Bg.Equal(mid), "badge drawn at full opacity")
	assert.True(t, c.At(17, 0).Style.Fg.Equal(b.Outline))
	assert.InDelta(t, 1.0, c.Opacity(), 1e-9)
}

func TestPaint_QueueBadgeFades(t *testing.T) {
	src := newFakeSource()
	src.queuePos = 3

	black := canvas.RGB(0, 0, 0)
	table := Default(DefaultOptions())
	c := canvas.New(20, 1)
	opt := StyleOption{Rect: c.Bounds(), Font: canvas.Style{Bg: black}}
	table.For(playlist.ColumnTitle).Paint(c, opt, titleRef(src))

	b := table.Options().Badge
	mid := canvas.GradientAt(b.GradientTop, b.GradientBottom, 0, 1)
	want := black.Blend(mid, b.QueueOpacity(3))
	assert.True(t, c.At(16, 0).Style.Bg.Equal(want))
	assert.Equal(t, "4", c.At(17, 0).Content)
	assert.InDelta(t, 1.0, c.Opacity(), 1e-9)
}

func TestPaint_NoBadgeWhenNotQueued(t *testing.T) {
	src := newFakeSource()
	table := Default(DefaultOptions())
	c := canvas.New(20, 1)
	table.For(playlist.ColumnTitle).Paint(c, StyleOption{Rect: c.Bounds()}, titleRef(src))

	for x := range 20 {
		assert.False(t, c.At(x, 0).Style.Bg.Set, "x=%d", x)
	}
}

func TestPaint_QueueBadgeOnlyOnIndicatorColumn(t *testing.T) {
	src := newFakeSource()
	src.values[playlist.ColumnArtist] = cell.String("Bach")
	src.queuePos = 0

	table := Default(DefaultOptions())
	c := canvas.New(20, 1)
	ref := CellRef{Source: src, Column: playlist.ColumnArtist}
	table.For(playlist.ColumnArtist).Paint(c, StyleOption{Rect: c.Bounds()}, ref)

	assert.Equal(t, "Bach"+strings.Repeat(" ", 16), c.Line(0))
}

func TestPaint_StopAndQueueDoNotOverlap(t *testing.T) {
	src := newFakeSource()
	src.values[playlist.ColumnTitle] = cell.String("Song")
	src.queuePos = 0
	src.stopAfter = true

	table := Default(DefaultOptions())
	c := canvas.New(30, 1)
	table.For(playlist.ColumnTitle).Paint(c, StyleOption{Rect: c.Bounds()}, titleRef(src))

	line := c.Line(0)
	stopAt := strings.Index(line, "stop")
	require.NotEqual(t, -1, stopAt)
	assert.Equal(t, 19, stopAt)
	assert.Equal(t, "1", c.At(27, 0).Content)

	// the stop box ends where the queue box begins
	stopBoxEnd := 30 - table.Options().Badge.IndicatorWidth(0)
	assert.Equal(t, 25, stopBoxEnd)
	assert.Less(t, stopAt+len("stop"), stopBoxEnd)
}

func TestPaint_StopWithoutQueueIsRightAligned(t *testing.T) {
	src := newFakeSource()
	src.stopAfter = true

	table := Default(DefaultOptions())
	c := canvas.New(30, 1)
	table.For(playlist.ColumnTitle).Paint(c, StyleOption{Rect: c.Bounds()}, titleRef(src))

	assert.Equal(t, 24, strings.Index(c.Line(0), "stop"))
	assert.True(t, c.At(22, 0).Style.Bg.Set)
	assert.False(t, c.At(21, 0).Style.Bg.Set)
}

func TestPaint_StopOnlyOnTitleColumn(t *testing.T) {
	src := newFakeSource()
	src.stopAfter = true

	table := Default(DefaultOptions())
	c := canvas.New(30, 1)
	ref := CellRef{Source: src, Column: playlist.ColumnAlbum}
	table.For(playlist.ColumnAlbum).Paint(c, StyleOption{Rect: c.Bounds()}, ref)

	assert.NotContains(t, c.Line(0), "stop")
}

func TestPaint_CurrentRowIndent(t *testing.T) {
	tests := []struct {
		name    string
		current bool
		leading bool
		want    string
	}{
		{"current and leading", true, true, "  Song    "},
		{"current, not leading", true, false, "Song      "},
		{"leading, not current", false, true, "Song      "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.values[playlist.ColumnTitle] = cell.String("Song")
			src.current = tt.current

			table := Default(DefaultOptions())

			c := canvas.New(10, 1)
			opt := StyleOption{Rect: c.Bounds(), Leading: tt.leading}
			table.For(playlist.ColumnTitle).Paint(c, opt, titleRef(src))
			assert.Equal(t, tt.want, c.Line(0))
		})
	}
}

func TestPaint_IndentDoesNotMoveBadges(t *testing.T) {
	src := newFakeSource()
	src.current = true
	src.queuePos = 0

	table := Default(DefaultOptions())

	c := canvas.New(20, 1)
	table.For(playlist.ColumnTitle).Paint(c, StyleOption{Rect: c.Bounds(), Leading: true}, titleRef(src))
	assert.Equal(t, "1", c.At(17, 0).Content)
}

func TestPaint_IndentOnlyOnLeadingCell(t *testing.T) {
	src := newFakeSource()
	src.values[playlist.ColumnTitle] = cell.String("Song")
	src.current = true

	table := Default(DefaultOptions())
	c := canvas.New(6, 1)
	table.For(playlist.ColumnTitle).Paint(c, StyleOption{Rect: c.Bounds()}, titleRef(src))
	assert.Equal(t, "Song  ", c.Line(0))
}

func TestPaint_Selection(t *testing.T) {
	src := newFakeSource()
	src.values[playlist.ColumnTitle] = cell.String("x")

	grey := canvas.RGB(48, 48, 48)
	opt := StyleOption{
		Selected:  true,
		Selection: canvas.Style{Bg: grey},
		Font:      canvas.Style{Fg: canvas.RGB(200, 200, 200)},
	}

	table := Default(DefaultOptions())
	c := canvas.New(4, 1)
	opt.Rect = c.Bounds()
	table.For(playlist.ColumnTitle).Paint(c, opt, titleRef(src))

	for x := range 4 {
		assert.True(t, c.At(x, 0).Style.Bg.Equal(grey))
	}
	assert.True(t, c.At(0, 0).Style.Fg.Equal(canvas.RGB(200, 200, 200)))
}

func TestPaint_RightAlign(t *testing.T) {
	src := newFakeSource()
	src.values[playlist.ColumnLength] = cell.Int(245)

	table := Default(DefaultOptions())
	c := canvas.New(8, 1)
	ref := CellRef{Source: src, Column: playlist.ColumnLength}
	table.For(playlist.ColumnLength).Paint(c, StyleOption{Rect: c.Bounds(), Align: canvas.AlignRight}, ref)

	assert.Equal(t, "    4:05", c.Line(0))
}

func TestSizeHint(t *testing.T) {
	src := newFakeSource()
	src.values[playlist.ColumnTitle] = cell.String("Song")

	opts := DefaultOptions()
	table := Default(opts)
	d := table.For(playlist.ColumnTitle)

	assert.Equal(t, image.Pt(4, 1), d.SizeHint(titleRef(src)))

	src.queuePos = 2
	assert.Equal(t, image.Pt(9, 1), d.SizeHint(titleRef(src)))

	table.Options().MinHeight = 3
	assert.Equal(t, 3, d.SizeHint(titleRef(src)).Y)
}

func TestDisplayText_DefaultBindings(t *testing.T) {
	table := Default(DefaultOptions())

	tests := []struct {
		col  playlist.Column
		v    cell.Value
		want string
	}{
		{playlist.ColumnBitrate, cell.Int(320), "320 kbps"},
		{playlist.ColumnBitrate, cell.Int(0), ""},
		{playlist.ColumnSamplerate, cell.Int(44100), "44100 hz"},
		{playlist.ColumnLength, cell.Int(245), "4:05"},
		{playlist.ColumnLength, cell.Int(0), ""},
		{playlist.ColumnLength, cell.String("abc"), ""},
		{playlist.ColumnFilesize, cell.Int(0), "0 B"},
		{playlist.ColumnFilesize, cell.Int(4200000), "4.2 MB"},
		{playlist.ColumnFiletype, cell.FileTypeOf(filetype.MPEG), "MP3"},
		{playlist.ColumnFiletype, cell.Int(42), "Unknown"},
		{playlist.ColumnFiletype, cell.String("flac"), "Unknown"},
		{playlist.ColumnDateCreated, cell.Int(-1), ""},
		{playlist.ColumnDateModified, cell.String("yesterday"), ""},
		{playlist.ColumnTrack, cell.Int(7), "7"},
		{playlist.ColumnYear, cell.Int(0), ""},
		{playlist.ColumnTitle, cell.String("Kyrie"), "Kyrie"},
	}

	for _, tt := range tests {
		t.Run(tt.col.Name()+"/"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, table.For(tt.col).DisplayText(tt.v))
		})
	}
}

func TestDisplayText_DateUsesLocale(t *testing.T) {
	opts := DefaultOptions()
	loc, err := cell.ParseLocale("de_DE.UTF-8")
	require.NoError(t, err)
	opts.Locale = loc
	opts.Locale.Location = time.UTC

	table := Default(opts)
	got := table.For(playlist.ColumnDateCreated).DisplayText(cell.Int(1710408360))
	assert.Equal(t, "14.03.24 09:26", got)

	assert.NotEmpty(t, table.For(playlist.ColumnDateCreated).DisplayText(cell.Int(0)))
}

func TestTable_Bindings(t *testing.T) {
	table := Default(DefaultOptions())

	assert.Equal(t, VariantTagCompletion, table.For(playlist.ColumnArtist).Variant)
	assert.Equal(t, VariantTagCompletion, table.For(playlist.ColumnAlbumArtist).Variant)
	assert.Equal(t, VariantText, table.For(playlist.ColumnComment).Variant)
	assert.Equal(t, VariantBase, table.For(playlist.ColumnTrack).Variant)
	assert.Equal(t, "kbps", table.For(playlist.ColumnBitrate).Suffix)

	table.SetSuffix(playlist.ColumnBitrate, "kb/s")
	assert.Equal(t, "320 kb/s", table.For(playlist.ColumnBitrate).DisplayText(cell.Int(320)))

	table.SetSuffix(playlist.ColumnPlaycount, "plays")
	assert.Equal(t, VariantBase, table.For(playlist.ColumnPlaycount).Variant)
	assert.Equal(t, "3 plays", table.For(playlist.ColumnPlaycount).DisplayText(cell.Int(3)))
}

func TestVariant_String(t *testing.T) {
	assert.Equal(t, "tag_completion", VariantTagCompletion.String())
	assert.Equal(t, "unknown", Variant(99).String())
	assert.Equal(t, cell.KindDuration, VariantLength.Kind())
}

func TestCreateEditor_ArtistCompletion(t *testing.T) {
	opts := DefaultOptions()
	opts.Completion = fakeIndex{artists: []string{"Bach", "Beatles"}}
	table := Default(opts)

	src := newFakeSource()
	src.values[playlist.ColumnArtist] = cell.String("Ba")
	ref := CellRef{Source: src, Column: playlist.ColumnArtist}

	ed := table.For(playlist.ColumnArtist).CreateEditor(ref)
	require.NotNil(t, ed.Completer())
	assert.Equal(t, []string{"Bach", "Beatles"}, ed.Completer().Entries())
	assert.Equal(t, "Ba", ed.Value())
	assert.Equal(t, ref, ed.Context())
}

func TestCreateEditor_AlbumArtistHasNoSuggestions(t *testing.T) {
	opts := DefaultOptions()
	opts.Completion = fakeIndex{
		artists: []string{"Bach"},
		albums:  []library.Album{{Name: "Mass", AlbumArtist: "Bach"}},
	}
	table := Default(opts)

	ref := CellRef{Source: newFakeSource(), Column: playlist.ColumnAlbumArtist}
	ed := table.For(playlist.ColumnAlbumArtist).CreateEditor(ref)
	require.NotNil(t, ed.Completer())
	assert.Zero(t, ed.Completer().Len())
}

func TestCreateEditor_PlainText(t *testing.T) {
	opts := DefaultOptions()
	opts.Completion = fakeIndex{artists: []string{"Bach"}}
	table := Default(opts)

	src := newFakeSource()
	src.values[playlist.ColumnTrack] = cell.Int(3)

	ed := table.For(playlist.ColumnTitle).CreateEditor(titleRef(src))
	assert.Nil(t, ed.Completer())
	assert.Empty(t, ed.Value())

	ed = table.For(playlist.ColumnTrack).CreateEditor(CellRef{Source: src, Column: playlist.ColumnTrack})
	assert.Nil(t, ed.Completer())
	assert.Equal(t, "3", ed.Value())
}

func TestHelpEvent(t *testing.T) {
	table := Default(DefaultOptions())
	src := newFakeSource()
	src.values[playlist.ColumnBitrate] = cell.Int(320)
	ref := CellRef{Source: src, Column: playlist.ColumnBitrate}
	d := table.For(playlist.ColumnBitrate)
	pos := image.Pt(4, 2)

	host := &fakeHost{}
	assert.True(t, d.HelpEvent(HelpRequest{Kind: HelpToolTip, Pos: pos}, host, ref))
	assert.Equal(t, []string{"320 kbps"}, host.tooltips)
	assert.Equal(t, pos, host.pos)

	assert.True(t, d.HelpEvent(HelpRequest{Kind: HelpQueryWhatsThis}, host, ref))
	assert.Empty(t, host.whatsThis)

	assert.True(t, d.HelpEvent(HelpRequest{Kind: HelpWhatsThis, Pos: pos}, host, ref))
	assert.Equal(t, []string{"320 kbps"}, host.whatsThis)

	assert.False(t, d.HelpEvent(HelpRequest{Kind: HelpKind(42)}, host, ref))
	assert.False(t, d.HelpEvent(HelpRequest{Kind: HelpToolTip}, nil, ref))
}

func TestHelpEvent_EmptyTextDeclines(t *testing.T) {
	table := Default(DefaultOptions())
	src := newFakeSource()
	src.values[playlist.ColumnBitrate] = cell.Int(0)
	ref := CellRef{Source: src, Column: playlist.ColumnBitrate}

	host := &fakeHost{}
	for _, kind := range []HelpKind{HelpToolTip, HelpQueryWhatsThis, HelpWhatsThis} {
		assert.False(t, table.For(playlist.ColumnBitrate).HelpEvent(HelpRequest{Kind: kind}, host, ref))
	}
	assert.Empty(t, host.tooltips)
	assert.Empty(t, host.whatsThis)
}

func TestCellRef_NilSource(t *testing.T) {
	ref := CellRef{Column: playlist.ColumnTitle}
	assert.False(t, ref.Value().IsValid())
	assert.Equal(t, -1, ref.queuePosition())
	assert.False(t, ref.stopAfter())

	var d Delegate
	assert.Equal(t, image.Pt(0, 1), d.SizeHint(ref))
}
