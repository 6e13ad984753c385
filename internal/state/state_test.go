package state

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/llehouerou/tracklist/internal/playlist"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	m, err := New(db)
	require.NoError(t, err)
	return m
}

func TestLoad_Empty(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Empty(), *s)
}

func TestFlush_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	want := Session{
		Paths:     []string{"/m/a.mp3", "/m/b.flac", "/m/c.ogg", "/m/d.mp3"},
		Current:   1,
		Queue:     []int{3, 0},
		StopAfter: 2,
		CursorRow: 2,
		CursorCol: 4,
	}

	m.Save(want)
	require.NoError(t, m.Flush())

	got, err := m.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSave_LaterReplacesPending(t *testing.T) {
	m := newTestManager(t)

	first := Empty()
	first.Paths = []string{"/m/a.mp3"}
	second := Empty()
	second.Paths = []string{"/m/b.mp3", "/m/c.mp3"}

	m.Save(first)
	m.Save(second)
	require.NoError(t, m.Close())

	got, err := m.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.Paths, got.Paths)
}

func TestSave_Debounced(t *testing.T) {
	m := newTestManager(t)
	m.debounce = 10 * time.Millisecond

	s := Empty()
	s.Paths = []string{"/m/a.mp3"}
	m.Save(s)

	assert.Eventually(t, func() bool {
		got, err := m.Load(context.Background())
		return err == nil && len(got.Paths) == 1
	}, time.Second, 10*time.Millisecond)
	assert.NoError(t, m.Err())
}

func TestSave_OverwritesRows(t *testing.T) {
	m := newTestManager(t)

	long := Empty()
	long.Paths = []string{"/1", "/2", "/3"}
	long.Queue = []int{2}
	m.Save(long)
	require.NoError(t, m.Flush())

	short := Empty()
	short.Paths = []string{"/9"}
	m.Save(short)
	require.NoError(t, m.Flush())

	got, err := m.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/9"}, got.Paths)
	assert.Empty(t, got.Queue)
}

func TestFlush_NothingPending(t *testing.T) {
	assert.NoError(t, newTestManager(t).Flush())
}

func TestClose_WaitsForRunningFlush(t *testing.T) {
	m := newTestManager(t)
	m.debounce = time.Millisecond

	started := make(chan struct{})
	release := make(chan struct{})
	var written atomic.Bool
	write := m.write
	m.write = func(ctx context.Context, db *sql.DB, s Session) error {
		close(started)
		<-release
		err := write(ctx, db, s)
		written.Store(true)
		return err
	}

	s := Empty()
	s.Paths = []string{"/m/a.mp3"}
	m.Save(s)
	<-started

	closed := make(chan error, 1)
	go func() { closed <- m.Close() }()
	select {
	case <-closed:
		t.Fatal("Close returned while the timer flush was writing")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-closed)
	assert.True(t, written.Load())

	got, err := m.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/m/a.mp3"}, got.Paths)
}

func TestClose_ReportsTimerFlushError(t *testing.T) {
	m := newTestManager(t)
	m.debounce = time.Millisecond
	done := make(chan struct{})
	m.write = func(context.Context, *sql.DB, Session) error {
		defer close(done)
		return errors.New("disk full")
	}

	m.Save(Empty())
	<-done

	assert.EqualError(t, m.Close(), "disk full")
}

func TestSave_AfterCloseIsIgnored(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Close())

	s := Empty()
	s.Paths = []string{"/m/late.mp3"}
	m.Save(s)
	require.NoError(t, m.Flush())

	got, err := m.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Paths)
}

func trackLoader(missing ...string) func(string) (playlist.Track, bool) {
	return func(path string) (playlist.Track, bool) {
		for _, m := range missing {
			if m == path {
				return playlist.Track{}, false
			}
		}
		return playlist.Track{Path: path, Title: path}, true
	}
}

func TestCaptureRestore(t *testing.T) {
	p := playlist.NewPlaylist()
	p.Add(
		playlist.Track{Path: "/a"},
		playlist.Track{Path: "/b"},
		playlist.Track{Path: "/c"},
	)
	p.SetCurrent(0)
	p.Enqueue(2, 1)
	p.SetStopAfter(1)

	s := Capture(p, 1, 3)
	assert.Equal(t, []string{"/a", "/b", "/c"}, s.Paths)
	assert.Equal(t, []int{2, 1}, s.Queue)
	assert.Equal(t, 1, s.CursorRow)
	assert.Equal(t, 3, s.CursorCol)

	r := Restore(s, trackLoader())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 0, r.CurrentIndex())
	assert.Equal(t, []int{2, 1}, r.Queued())
	assert.Equal(t, 1, r.StopAfterIndex())
}

func TestRestore_DropsMissingRows(t *testing.T) {
	s := Session{
		Paths:     []string{"/a", "/gone", "/c", "/d"},
		Current:   1,
		Queue:     []int{3, 1, 2},
		StopAfter: 3,
	}

	r := Restore(s, trackLoader("/gone"))
	require.Equal(t, 3, r.Len())
	assert.Equal(t, "/c", r.Track(1).Path)
	assert.Equal(t, -1, r.CurrentIndex())
	assert.Equal(t, []int{2, 1}, r.Queued())
	assert.Equal(t, 2, r.StopAfterIndex())
}
