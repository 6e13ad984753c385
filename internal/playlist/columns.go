package playlist

import "strings"

// Column identifies a playlist column.
type Column int

const (
	ColumnTitle Column = iota
	ColumnArtist
	ColumnAlbum
	ColumnAlbumArtist
	ColumnComposer
	ColumnGenre
	ColumnTrack
	ColumnDisc
	ColumnYear
	ColumnLength
	ColumnBitrate
	ColumnSamplerate
	ColumnFilename
	ColumnFilesize
	ColumnFiletype
	ColumnDateCreated
	ColumnDateModified
	ColumnPlaycount
	ColumnComment

	columnCount
)

var columnNames = [columnCount]string{
	ColumnTitle:        "title",
	ColumnArtist:       "artist",
	ColumnAlbum:        "album",
	ColumnAlbumArtist:  "album_artist",
	ColumnComposer:     "composer",
	ColumnGenre:        "genre",
	ColumnTrack:        "track",
	ColumnDisc:         "disc",
	ColumnYear:         "year",
	ColumnLength:       "length",
	ColumnBitrate:      "bitrate",
	ColumnSamplerate:   "samplerate",
	ColumnFilename:     "filename",
	ColumnFilesize:     "filesize",
	ColumnFiletype:     "filetype",
	ColumnDateCreated:  "date_created",
	ColumnDateModified: "date_modified",
	ColumnPlaycount:    "playcount",
	ColumnComment:      "comment",
}

var columnTitles = [columnCount]string{
	ColumnTitle:        "Title",
	ColumnArtist:       "Artist",
	ColumnAlbum:        "Album",
	ColumnAlbumArtist:  "Album artist",
	ColumnComposer:     "Composer",
	ColumnGenre:        "Genre",
	ColumnTrack:        "#",
	ColumnDisc:         "Disc",
	ColumnYear:         "Year",
	ColumnLength:       "Length",
	ColumnBitrate:      "Bitrate",
	ColumnSamplerate:   "Sample rate",
	ColumnFilename:     "File name",
	ColumnFilesize:     "File size",
	ColumnFiletype:     "File type",
	ColumnDateCreated:  "Date created",
	ColumnDateModified: "Date modified",
	ColumnPlaycount:    "Play count",
	ColumnComment:      "Comment",
}

// Columns returns every column in display order.
func Columns() []Column {
	cols := make([]Column, 0, columnCount)
	for c := range columnCount {
		cols = append(cols, c)
	}
	return cols
}

// Valid reports whether c is a known column.
func (c Column) Valid() bool {
	return c >= 0 && c < columnCount
}

// Name returns the configuration key of the column.
func (c Column) Name() string {
	if !c.Valid() {
		return ""
	}
	return columnNames[c]
}

// Title returns the header text of the column.
func (c Column) Title() string {
	if !c.Valid() {
		return ""
	}
	return columnTitles[c]
}

func (c Column) String() string { return c.Name() }

// ParseColumn looks a column up by its configuration key.
func ParseColumn(name string) (Column, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "_")
	for c, n := range columnNames {
		if n == name {
			return Column(c), true
		}
	}
	return 0, false
}

// Editable reports whether the column holds a tag users can edit in place.
func (c Column) Editable() bool {
	switch c {
	case ColumnTitle, ColumnArtist, ColumnAlbum, ColumnAlbumArtist,
		ColumnComposer, ColumnGenre, ColumnComment,
		ColumnTrack, ColumnDisc, ColumnYear:
		return true
	default:
		return false
	}
}
