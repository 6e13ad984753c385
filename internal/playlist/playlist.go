package playlist

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/tracklist/internal/cell"
	"github.com/llehouerou/tracklist/internal/filetype"
)

// Track represents a single track in a playlist.
type Track struct {
	ID          int64  // library track ID (0 if from filesystem)
	Path        string // file path for playback
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Composer    string
	Genre       string
	Comment     string
	TrackNumber int
	DiscNumber  int
	Year        int
	Duration    time.Duration
	Bitrate     int // kbps
	Samplerate  int // Hz
	Filesize    int64
	FileType    filetype.Type
	Created     time.Time
	Modified    time.Time
	Playcount   int
}

// Playlist holds an ordered collection of tracks together with the
// per-row playback state shown by the view: the now-playing row, the
// play-next queue and the stop-after row.
type Playlist struct {
	tracks    []Track
	current   int   // -1 if nothing playing
	queue     []int // rows in play-next order
	stopAfter int   // -1 if unset
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks:    make([]Track, 0),
		current:   -1,
		stopAfter: -1,
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if !p.valid(index) {
		return false
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)

	switch {
	case p.current == index:
		p.current = -1
	case p.current > index:
		p.current--
	}
	switch {
	case p.stopAfter == index:
		p.stopAfter = -1
	case p.stopAfter > index:
		p.stopAfter--
	}

	queue := p.queue[:0]
	for _, row := range p.queue {
		switch {
		case row == index:
			continue
		case row > index:
			row--
		}
		queue = append(queue, row)
	}
	p.queue = queue
	return true
}

// Clear removes all tracks and resets playback state.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
	p.current = -1
	p.stopAfter = -1
	p.queue = nil
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if !p.valid(index) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Move moves the track at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if !p.valid(fromIndex) || !p.valid(toIndex) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	track := p.tracks[fromIndex]
	p.tracks = append(p.tracks[:fromIndex], p.tracks[fromIndex+1:]...)
	p.tracks = append(p.tracks[:toIndex], append([]Track{track}, p.tracks[toIndex:]...)...)

	remap := func(row int) int {
		switch {
		case row == fromIndex:
			return toIndex
		case fromIndex < toIndex && row > fromIndex && row <= toIndex:
			return row - 1
		case fromIndex > toIndex && row >= toIndex && row < fromIndex:
			return row + 1
		default:
			return row
		}
	}
	if p.current >= 0 {
		p.current = remap(p.current)
	}
	if p.stopAfter >= 0 {
		p.stopAfter = remap(p.stopAfter)
	}
	for i, row := range p.queue {
		p.queue[i] = remap(row)
	}
	return true
}

func (p *Playlist) valid(index int) bool {
	return index >= 0 && index < len(p.tracks)
}

// Value returns the cell value of a row for a column. Out of range rows
// and unknown columns give an invalid value.
func (p *Playlist) Value(row int, col Column) cell.Value {
	t := p.Track(row)
	if t == nil {
		return cell.Value{}
	}

	switch col {
	case ColumnTitle:
		return cell.String(t.Title)
	case ColumnArtist:
		return cell.String(t.Artist)
	case ColumnAlbum:
		return cell.String(t.Album)
	case ColumnAlbumArtist:
		return cell.String(t.AlbumArtist)
	case ColumnComposer:
		return cell.String(t.Composer)
	case ColumnGenre:
		return cell.String(t.Genre)
	case ColumnComment:
		return cell.String(t.Comment)
	case ColumnTrack:
		return cell.Int(int64(t.TrackNumber))
	case ColumnDisc:
		return cell.Int(int64(t.DiscNumber))
	case ColumnYear:
		return cell.Int(int64(t.Year))
	case ColumnLength:
		return cell.Int(int64(t.Duration / time.Second))
	case ColumnBitrate:
		return cell.Int(int64(t.Bitrate))
	case ColumnSamplerate:
		return cell.Int(int64(t.Samplerate))
	case ColumnFilename:
		return cell.String(filepath.Base(t.Path))
	case ColumnFilesize:
		return cell.Int(t.Filesize)
	case ColumnFiletype:
		return cell.FileTypeOf(t.FileType)
	case ColumnDateCreated:
		return epochValue(t.Created)
	case ColumnDateModified:
		return epochValue(t.Modified)
	case ColumnPlaycount:
		return cell.Int(int64(t.Playcount))
	default:
		return cell.Value{}
	}
}

func epochValue(t time.Time) cell.Value {
	if t.IsZero() {
		return cell.Int(-1)
	}
	return cell.Int(t.Unix())
}

// SetData stores edited text into an editable column.
// Returns false if the row or column cannot be edited or a numeric
// column receives text that is not a number.
func (p *Playlist) SetData(row int, col Column, text string) bool {
	t := p.Track(row)
	if t == nil || !col.Editable() {
		return false
	}

	text = strings.TrimSpace(text)
	switch col {
	case ColumnTitle:
		t.Title = text
	case ColumnArtist:
		t.Artist = text
	case ColumnAlbum:
		t.Album = text
	case ColumnAlbumArtist:
		t.AlbumArtist = text
	case ColumnComposer:
		t.Composer = text
	case ColumnGenre:
		t.Genre = text
	case ColumnComment:
		t.Comment = text
	case ColumnTrack, ColumnDisc, ColumnYear:
		n := 0
		if text != "" {
			v, err := strconv.Atoi(text)
			if err != nil || v < 0 {
				return false
			}
			n = v
		}
		switch col {
		case ColumnTrack:
			t.TrackNumber = n
		case ColumnDisc:
			t.DiscNumber = n
		default:
			t.Year = n
		}
	}
	return true
}
