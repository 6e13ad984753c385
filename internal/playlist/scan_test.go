package playlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0o644))
	}
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.mp3", "notes.txt", "disc2/b.flac", "disc2/cover.jpg")

	files := DiscoverFiles([]string{dir, "/explicit/file.ogg"})

	assert.Equal(t, []string{
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "disc2", "b.flac"),
		"/explicit/file.ogg",
	}, files)
}

func TestCollect_KeepsOrderAndReportsErrors(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "01 intro.mp3", "02 song.mp3", "03 outro.flac")
	missing := filepath.Join(dir, "missing.mp3")

	tracks, errs := Collect([]string{dir, missing})

	require.Len(t, tracks, 3)
	assert.Equal(t, "01 intro.mp3", tracks[0].Title)
	assert.Equal(t, "02 song.mp3", tracks[1].Title)
	assert.Equal(t, "03 outro.flac", tracks[2].Title)
	assert.Equal(t, int64(len("not really audio")), tracks[0].Filesize)
	assert.Len(t, errs, 1)
}

func TestCollect_Empty(t *testing.T) {
	tracks, errs := Collect(nil)
	assert.Empty(t, tracks)
	assert.Empty(t, errs)
}
