// Package completion builds tag suggestions from the library index.
package completion

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/llehouerou/tracklist/internal/library"
	"github.com/llehouerou/tracklist/internal/playlist"
)

// Index is the part of the library the completions are read from.
type Index interface {
	AllArtists() ([]string, error)
	AllAlbums() ([]library.Album, error)
}

// Build returns the known values for a column, in index order.
// Columns without a source, a nil index and index errors all give an
// empty list.
func Build(idx Index, col playlist.Column) []string {
	if idx == nil {
		return nil
	}

	switch col {
	case playlist.ColumnArtist:
		artists, err := idx.AllArtists()
		if err != nil {
			return nil
		}
		return artists

	case playlist.ColumnAlbum:
		albums, err := idx.AllAlbums()
		if err != nil {
			return nil
		}
		names := make([]string, 0, len(albums))
		for _, a := range albums {
			names = append(names, a.Name)
		}
		return names

	case playlist.ColumnAlbumArtist:
		// TODO: read distinct album artists once the index exposes them.
		return nil

	default:
		return nil
	}
}

// Completer matches typed text against a fixed list of entries,
// ignoring case and accents.
type Completer struct {
	entries []string
	lower   []string
	limit   int
}

// NewCompleter takes ownership of entries. limit caps the number of
// matches returned; 0 means no cap.
func NewCompleter(entries []string, limit int) *Completer {
	lower := make([]string, len(entries))
	for i, e := range entries {
		lower[i] = fold(e)
	}
	return &Completer{entries: entries, lower: lower, limit: limit}
}

// ForColumn builds the entries for col from idx and wraps them.
func ForColumn(idx Index, col playlist.Column, limit int) *Completer {
	return NewCompleter(Build(idx, col), limit)
}

// Entries returns the full list.
func (c *Completer) Entries() []string {
	return c.entries
}

// Len returns the number of entries.
func (c *Completer) Len() int {
	return len(c.entries)
}

// Match returns entries starting with query followed by entries merely
// containing it, each group in list order. An empty query matches nothing.
func (c *Completer) Match(query string) []string {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var prefix, substr []string
	for i, l := range c.lower {
		switch {
		case strings.HasPrefix(l, q):
			prefix = append(prefix, c.entries[i])
		case strings.Contains(l, q):
			substr = append(substr, c.entries[i])
		}
	}

	matches := append(prefix, substr...)
	if c.limit > 0 && len(matches) > c.limit {
		matches = matches[:c.limit]
	}
	return matches
}

// fold lowercases s and strips combining marks, so "cafe" matches "Café".
func fold(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
