package state

import "github.com/llehouerou/tracklist/internal/playlist"

// Capture records the playlist and the cursor cell.
func Capture(p *playlist.Playlist, cursorRow, cursorCol int) Session {
	tracks := p.Tracks()
	paths := make([]string, len(tracks))
	for i, t := range tracks {
		paths[i] = t.Path
	}
	return Session{
		Paths:     paths,
		Current:   p.CurrentIndex(),
		Queue:     p.Queued(),
		StopAfter: p.StopAfterIndex(),
		CursorRow: cursorRow,
		CursorCol: cursorCol,
	}
}

// Restore rebuilds the playlist of s. load resolves a saved path to a
// track; paths it rejects are dropped and the row markers follow the
// remaining rows.
func Restore(s Session, load func(path string) (playlist.Track, bool)) *playlist.Playlist {
	p := playlist.NewPlaylist()
	rowOf := make(map[int]int, len(s.Paths))
	for i, path := range s.Paths {
		t, ok := load(path)
		if !ok {
			continue
		}
		rowOf[i] = p.Len()
		p.Add(t)
	}

	if row, ok := rowOf[s.Current]; ok {
		p.SetCurrent(row)
	}
	for _, q := range s.Queue {
		if row, ok := rowOf[q]; ok {
			p.Enqueue(row)
		}
	}
	if row, ok := rowOf[s.StopAfter]; ok {
		p.SetStopAfter(row)
	}
	return p
}
