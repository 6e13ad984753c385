package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/llehouerou/tracklist/internal/filetype"
	"github.com/llehouerou/tracklist/internal/library"
	"github.com/llehouerou/tracklist/internal/tags"
)

// FromLibraryTrack converts a library track to a playlist track.
func FromLibraryTrack(t library.Track) Track {
	return Track{
		ID:          t.ID,
		Path:        t.Path,
		Title:       t.Title,
		Artist:      t.Artist,
		Album:       t.Album,
		AlbumArtist: t.AlbumArtist,
		Composer:    t.Composer,
		Genre:       t.Genre,
		Comment:     t.Comment,
		TrackNumber: t.TrackNumber,
		DiscNumber:  t.DiscNumber,
		Year:        t.Year,
		Duration:    time.Duration(t.Length) * time.Second,
		Bitrate:     t.Bitrate,
		Samplerate:  t.Samplerate,
		Filesize:    t.Filesize,
		FileType:    filetype.Type(t.FileType),
		Created:     unixOrZero(t.AddedAt),
		Modified:    unixOrZero(t.Mtime),
		Playcount:   t.Playcount,
	}
}

// FromLibraryTracks converts a slice of library tracks to playlist tracks.
func FromLibraryTracks(tracks []library.Track) []Track {
	result := make([]Track, len(tracks))
	for i := range tracks {
		result[i] = FromLibraryTrack(tracks[i])
	}
	return result
}

// ToLibraryTrack converts a playlist track back for storage in the library.
func ToLibraryTrack(t Track) library.Track {
	return library.Track{
		ID:          t.ID,
		Path:        t.Path,
		Mtime:       unixOrZeroValue(t.Modified),
		Artist:      t.Artist,
		AlbumArtist: t.AlbumArtist,
		Album:       t.Album,
		Title:       t.Title,
		Composer:    t.Composer,
		Genre:       t.Genre,
		Comment:     t.Comment,
		TrackNumber: t.TrackNumber,
		DiscNumber:  t.DiscNumber,
		Year:        t.Year,
		Length:      int(t.Duration / time.Second),
		Bitrate:     t.Bitrate,
		Samplerate:  t.Samplerate,
		Filesize:    t.Filesize,
		FileType:    int(t.FileType),
		AddedAt:     unixOrZeroValue(t.Created),
		Playcount:   t.Playcount,
	}
}

func unixOrZero(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

func unixOrZeroValue(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// TrackFromFile builds a track from a music file: tags, stream
// properties, file size, modification time and file type. Files without
// readable tags still produce a track titled after the file name.
func TrackFromFile(path string) (Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Track{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Track{}, fmt.Errorf("%s is a directory", path)
	}

	t := Track{
		Path:     path,
		Title:    filepath.Base(path),
		Filesize: info.Size(),
		Modified: info.ModTime(),
		Created:  time.Now(),
		FileType: filetype.Detect(path),
	}

	// unreadable streams still list with an empty length
	if audio, err := tags.ReadAudioInfo(path); err == nil {
		t.Duration = audio.Duration
		t.Bitrate = audio.Bitrate
		t.Samplerate = audio.SampleRate
	}

	m, err := tags.Read(path)
	if err != nil {
		// untagged files are still playable
		return t, nil
	}

	if m.Title != "" {
		t.Title = m.Title
	}
	t.Artist = m.Artist
	t.Album = m.Album
	t.AlbumArtist = m.AlbumArtist
	if t.AlbumArtist == "" {
		t.AlbumArtist = t.Artist
	}
	t.Composer = m.Composer
	t.Genre = m.Genre
	t.Comment = m.Comment
	t.Year = m.Year
	t.TrackNumber = m.TrackNumber
	t.DiscNumber = m.DiscNumber
	return t, nil
}

// Tag returns the editable tag fields of t.
func (t *Track) Tag() *tags.Tag {
	return &tags.Tag{
		Title:       t.Title,
		Artist:      t.Artist,
		AlbumArtist: t.AlbumArtist,
		Album:       t.Album,
		Composer:    t.Composer,
		Genre:       t.Genre,
		Comment:     t.Comment,
		TrackNumber: t.TrackNumber,
		DiscNumber:  t.DiscNumber,
		Year:        t.Year,
	}
}
