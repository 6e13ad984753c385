// Package tags reads and writes music file metadata: the tag fields
// edited in the playlist and the properties of the audio stream.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Supported file extensions.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtOPUS = ".opus"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
	ExtWAV  = ".wav"
)

const id3Magic = "ID3"

// Tag holds the editable tag fields of a music file.
type Tag struct {
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Composer    string
	Genre       string
	Comment     string
	TrackNumber int
	DiscNumber  int
	Year        int
}

// AudioInfo holds properties of the audio stream.
type AudioInfo struct {
	Duration   time.Duration
	Format     string
	SampleRate int // Hz
	BitDepth   int
	Channels   int
	Bitrate    int // kbps
}

// Writable reports whether Write supports the file at path.
func Writable(path string) bool {
	switch ext(path) {
	case ExtMP3, ExtFLAC, ExtOGG, ExtOGA, ExtOPUS, ExtM4A, ExtMP4:
		return true
	}
	return false
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// averageBitrate returns the whole-file bitrate in kbps.
func averageBitrate(size int64, d time.Duration) int {
	if size <= 0 || d <= 0 {
		return 0
	}
	return int(float64(size) * 8 / d.Seconds() / 1000)
}

// Property keys missing from the taglib constants.
const (
	keyComposer = "COMPOSER"
	keyComment  = "COMMENT"
)

// taglibTags wraps a taglib property map.
type taglibTags map[string][]string

// get returns the first value for any of the given keys.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// number parses "N" or "N/Total", returning N.
func (t taglibTags) number(key string) int {
	return parseNumber(t.get(key))
}

func parseNumber(s string) int {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// parseYear reads the year from dates like "1969" or "1969-09-26".
func parseYear(s string) int {
	if len(s) < 4 {
		return 0
	}
	n, _ := strconv.Atoi(s[:4])
	return n
}
