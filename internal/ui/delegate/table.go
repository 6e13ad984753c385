package delegate

import (
	"github.com/llehouerou/tracklist/internal/playlist"
)

// Table binds playlist columns to delegates. Unbound columns use a base
// delegate.
type Table struct {
	opts      *Options
	delegates map[playlist.Column]Delegate
}

// NewTable creates a table with no bindings.
func NewTable(opts Options) *Table {
	return &Table{
		opts:      &opts,
		delegates: make(map[playlist.Column]Delegate),
	}
}

// Default creates a table with the standard playlist bindings.
func Default(opts Options) *Table {
	t := NewTable(opts)

	t.Bind(playlist.ColumnLength, VariantLength, "")
	t.Bind(playlist.ColumnFilesize, VariantSize, "")
	t.Bind(playlist.ColumnDateCreated, VariantDate, "")
	t.Bind(playlist.ColumnDateModified, VariantDate, "")
	t.Bind(playlist.ColumnFiletype, VariantFileType, "")
	t.Bind(playlist.ColumnBitrate, VariantBase, "kbps")
	t.Bind(playlist.ColumnSamplerate, VariantBase, "hz")

	for _, col := range []playlist.Column{
		playlist.ColumnTitle,
		playlist.ColumnGenre,
		playlist.ColumnComposer,
		playlist.ColumnComment,
	} {
		t.Bind(col, VariantText, "")
	}

	for _, col := range []playlist.Column{
		playlist.ColumnArtist,
		playlist.ColumnAlbum,
		playlist.ColumnAlbumArtist,
	} {
		t.Bind(col, VariantTagCompletion, "")
	}

	return t
}

// Bind sets the delegate of a column.
func (t *Table) Bind(col playlist.Column, v Variant, suffix string) {
	t.delegates[col] = New(v, suffix, t.opts)
}

// SetSuffix changes the unit suffix of a column, keeping its variant.
func (t *Table) SetSuffix(col playlist.Column, suffix string) {
	d := t.For(col)
	t.delegates[col] = New(d.Variant, suffix, t.opts)
}

// For returns the delegate of a column.
func (t *Table) For(col playlist.Column) Delegate {
	if d, ok := t.delegates[col]; ok {
		return d
	}
	return New(VariantBase, "", t.opts)
}

// Options returns the shared options. Changes apply to every delegate.
func (t *Table) Options() *Options {
	return t.opts
}
