package playlist

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracklist/internal/cell"
	"github.com/llehouerou/tracklist/internal/filetype"
)

// writeSilence writes one second of 8 kHz mono 16-bit PCM.
func writeSilence(t *testing.T, path string) {
	t.Helper()
	const rate, dataSize = 8000, 16000

	le := binary.LittleEndian
	buf := []byte("RIFF")
	buf = le.AppendUint32(buf, 36+dataSize)
	buf = append(buf, "WAVEfmt "...)
	buf = le.AppendUint32(buf, 16)
	buf = le.AppendUint16(buf, 1) // PCM
	buf = le.AppendUint16(buf, 1)
	buf = le.AppendUint32(buf, rate)
	buf = le.AppendUint32(buf, rate*2)
	buf = le.AppendUint16(buf, 2)
	buf = le.AppendUint16(buf, 16)
	buf = append(buf, "data"...)
	buf = le.AppendUint32(buf, dataSize)
	buf = append(buf, make([]byte, dataSize)...)

	require.NoError(t, os.WriteFile(path, buf, 0o600))
}

func TestTrackFromFile_StreamProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeSilence(t, path)

	tr, err := TrackFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, tr.Duration)
	assert.Equal(t, 128, tr.Bitrate)
	assert.Equal(t, 8000, tr.Samplerate)
	assert.Equal(t, filetype.WAV, tr.FileType)
	assert.Equal(t, "tone.wav", tr.Title)

	p := NewPlaylist()
	p.Add(tr)
	loc := cell.DefaultLocale()
	assert.Equal(t, "0:01", cell.Format(p.Value(0, ColumnLength), cell.KindDuration, loc, ""))
	assert.Equal(t, "128", cell.Format(p.Value(0, ColumnBitrate), cell.KindGeneric, loc, ""))
	assert.Equal(t, "8000", cell.Format(p.Value(0, ColumnSamplerate), cell.KindGeneric, loc, ""))
}

func TestTrackFromFile_UnreadableStreamKeepsEmptyLength(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "broken.wav")

	tr, err := TrackFromFile(filepath.Join(dir, "broken.wav"))
	require.NoError(t, err)

	assert.Zero(t, tr.Duration)
	assert.Zero(t, tr.Bitrate)
	assert.Zero(t, tr.Samplerate)
}

func TestTrackFromFile_Directory(t *testing.T) {
	_, err := TrackFromFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}

func TestTrack_Tag(t *testing.T) {
	tr := Track{
		Title:       "Something",
		Artist:      "The Beatles",
		Album:       "Abbey Road",
		TrackNumber: 2,
		Year:        1969,
		Bitrate:     320,
	}

	tag := tr.Tag()

	assert.Equal(t, "Something", tag.Title)
	assert.Equal(t, "The Beatles", tag.Artist)
	assert.Equal(t, "Abbey Road", tag.Album)
	assert.Equal(t, 2, tag.TrackNumber)
	assert.Equal(t, 1969, tag.Year)
}
