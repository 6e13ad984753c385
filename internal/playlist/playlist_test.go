//nolint:goconst // test file with repeated string literals
package playlist

import (
	"testing"
	"time"

	"github.com/llehouerou/tracklist/internal/cell"
	"github.com/llehouerou/tracklist/internal/filetype"
	"github.com/llehouerou/tracklist/internal/library"
)

func threeTracks() *Playlist {
	p := NewPlaylist()
	p.Add(
		Track{Path: "/a.mp3", Title: "A"},
		Track{Path: "/b.mp3", Title: "B"},
		Track{Path: "/c.mp3", Title: "C"},
	)
	return p
}

func paths(p *Playlist) []string {
	var out []string
	for _, t := range p.Tracks() {
		out = append(out, t.Path)
	}
	return out
}

func TestNewPlaylist(t *testing.T) {
	p := NewPlaylist()

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.Tracks() == nil {
		t.Error("Tracks() should return empty slice, not nil")
	}
	if p.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", p.CurrentIndex())
	}
	if p.StopAfterIndex() != -1 {
		t.Errorf("StopAfterIndex() = %d, want -1", p.StopAfterIndex())
	}
}

func TestPlaylist_Remove(t *testing.T) {
	p := threeTracks()

	if !p.Remove(1) {
		t.Fatal("Remove should return true")
	}
	got := paths(p)
	if len(got) != 2 || got[0] != "/a.mp3" || got[1] != "/c.mp3" {
		t.Errorf("paths = %v, want [/a.mp3 /c.mp3]", got)
	}

	for _, idx := range []int{-1, 2, 5} {
		if p.Remove(idx) {
			t.Errorf("Remove(%d) should return false", idx)
		}
	}
}

func TestPlaylist_Remove_KeepsRowStateAligned(t *testing.T) {
	p := threeTracks()
	p.SetCurrent(2)
	p.SetStopAfter(2)
	p.Enqueue(0, 1)

	p.Remove(0)

	if p.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", p.CurrentIndex())
	}
	if !p.StopAfter(1) {
		t.Error("stop-after should follow its row")
	}
	if p.QueuePosition(0) != 0 {
		t.Errorf("QueuePosition(0) = %d, want 0", p.QueuePosition(0))
	}
	if got := p.Queued(); len(got) != 1 {
		t.Errorf("Queued() = %v, want one row", got)
	}

	p.Remove(1)
	if p.CurrentIndex() != -1 {
		t.Errorf("removing the playing row should clear current, got %d", p.CurrentIndex())
	}
	if p.StopAfterIndex() != -1 {
		t.Errorf("removing the stop-after row should clear it, got %d", p.StopAfterIndex())
	}
}

func TestPlaylist_Tracks_ReturnsCopy(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{Path: "/a.mp3"})

	tracks := p.Tracks()
	tracks[0].Path = "/modified.mp3"

	if p.Tracks()[0].Path != "/a.mp3" {
		t.Error("Tracks() should return a copy, not the original slice")
	}
}

func TestPlaylist_Track_InvalidIndex(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{Path: "/a.mp3"})

	for _, idx := range []int{-1, 1, 5} {
		if p.Track(idx) != nil {
			t.Errorf("Track(%d) should return nil", idx)
		}
	}
}

func TestPlaylist_Move(t *testing.T) {
	t.Run("move forward", func(t *testing.T) {
		p := threeTracks()
		if !p.Move(0, 2) {
			t.Fatal("Move should return true")
		}
		got := paths(p)
		want := []string{"/b.mp3", "/c.mp3", "/a.mp3"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("paths[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("move backward keeps row state", func(t *testing.T) {
		p := threeTracks()
		p.SetCurrent(0)
		p.SetStopAfter(1)
		p.Enqueue(2)

		if !p.Move(2, 0) {
			t.Fatal("Move should return true")
		}
		if p.Track(0).Path != "/c.mp3" {
			t.Errorf("Track(0) = %q, want /c.mp3", p.Track(0).Path)
		}
		if p.CurrentIndex() != 1 {
			t.Errorf("CurrentIndex() = %d, want 1", p.CurrentIndex())
		}
		if !p.StopAfter(2) {
			t.Error("stop-after should move to row 2")
		}
		if p.QueuePosition(0) != 0 {
			t.Errorf("queued row should move to 0, got %v", p.Queued())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		p := threeTracks()
		if p.Move(-1, 0) || p.Move(0, 3) {
			t.Error("Move with invalid index should return false")
		}
	})
}

func TestPlaylist_Value(t *testing.T) {
	created := time.Unix(1_700_000_000, 0)
	p := NewPlaylist()
	p.Add(Track{
		Path:        "/music/song.flac",
		Title:       "Song",
		Artist:      "Artist",
		TrackNumber: 3,
		Duration:    245 * time.Second,
		Bitrate:     900,
		Filesize:    31_000_000,
		FileType:    filetype.FLAC,
		Created:     created,
	})

	tests := []struct {
		col  Column
		want cell.Value
	}{
		{ColumnTitle, cell.String("Song")},
		{ColumnArtist, cell.String("Artist")},
		{ColumnTrack, cell.Int(3)},
		{ColumnLength, cell.Int(245)},
		{ColumnBitrate, cell.Int(900)},
		{ColumnFilesize, cell.Int(31_000_000)},
		{ColumnFiletype, cell.FileTypeOf(filetype.FLAC)},
		{ColumnFilename, cell.String("song.flac")},
		{ColumnDateCreated, cell.Int(1_700_000_000)},
		{ColumnDateModified, cell.Int(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.col.Name(), func(t *testing.T) {
			if got := p.Value(0, tt.col); got != tt.want {
				t.Errorf("Value(0, %s) = %#v, want %#v", tt.col.Name(), got, tt.want)
			}
		})
	}

	if p.Value(5, ColumnTitle).IsValid() {
		t.Error("out of range row should give an invalid value")
	}
	if p.Value(0, Column(99)).IsValid() {
		t.Error("unknown column should give an invalid value")
	}
}

func TestPlaylist_SetData(t *testing.T) {
	p := threeTracks()

	if !p.SetData(0, ColumnArtist, "  Bach ") {
		t.Fatal("SetData on artist should succeed")
	}
	if p.Track(0).Artist != "Bach" {
		t.Errorf("Artist = %q, want Bach", p.Track(0).Artist)
	}

	if !p.SetData(0, ColumnYear, "1721") {
		t.Fatal("SetData on year should succeed")
	}
	if p.Track(0).Year != 1721 {
		t.Errorf("Year = %d, want 1721", p.Track(0).Year)
	}
	if !p.SetData(0, ColumnYear, "") || p.Track(0).Year != 0 {
		t.Error("empty year should clear it")
	}
	if p.SetData(0, ColumnYear, "soon") {
		t.Error("non-numeric year should be rejected")
	}
	if p.SetData(0, ColumnLength, "3:00") {
		t.Error("length is not editable")
	}
	if p.SetData(7, ColumnTitle, "x") {
		t.Error("out of range row should be rejected")
	}
}

func TestColumns(t *testing.T) {
	for _, c := range Columns() {
		if c.Name() == "" || c.Title() == "" {
			t.Errorf("column %d has no name or title", int(c))
		}
		parsed, ok := ParseColumn(c.Name())
		if !ok || parsed != c {
			t.Errorf("ParseColumn(%q) = %v, %v", c.Name(), parsed, ok)
		}
	}
	if c, ok := ParseColumn("Album-Artist"); !ok || c != ColumnAlbumArtist {
		t.Errorf("ParseColumn(Album-Artist) = %v, %v", c, ok)
	}
	if _, ok := ParseColumn("mood"); ok {
		t.Error("unknown column should not parse")
	}
	if Column(-1).Name() != "" {
		t.Error("invalid column should have no name")
	}
}

func TestEditHistory(t *testing.T) {
	p := threeTracks()
	h := NewEditHistory(2)

	if h.CanUndo() || h.CanRedo() {
		t.Fatal("new history should be empty")
	}

	p.SetData(0, ColumnTitle, "A2")
	h.Push(Edit{Row: 0, Column: ColumnTitle, Old: "A", New: "A2"})
	p.SetData(1, ColumnTitle, "B2")
	h.Push(Edit{Row: 1, Column: ColumnTitle, Old: "B", New: "B2"})

	if e, ok := h.Undo(p); !ok || e.Row != 1 {
		t.Fatalf("Undo = %+v, %v", e, ok)
	}
	if p.Track(1).Title != "B" {
		t.Errorf("Title = %q, want B", p.Track(1).Title)
	}
	if _, ok := h.Redo(p); !ok || p.Track(1).Title != "B2" {
		t.Errorf("Redo should restore B2, got %q", p.Track(1).Title)
	}

	// pushing past the limit drops the oldest edit
	p.SetData(2, ColumnTitle, "C2")
	h.Push(Edit{Row: 2, Column: ColumnTitle, Old: "C", New: "C2"})
	h.Undo(p)
	h.Undo(p)
	if h.CanUndo() {
		t.Error("history should hold only two edits")
	}
	if p.Track(0).Title != "A2" {
		t.Errorf("oldest edit should not be undone, Title = %q", p.Track(0).Title)
	}

	// a new edit clears redo entries
	h.Push(Edit{Row: 0, Column: ColumnTitle, Old: "A2", New: "A3"})
	if h.CanRedo() {
		t.Error("push should clear redo entries")
	}
}

func TestFromLibraryTrack(t *testing.T) {
	libTrack := library.Track{
		ID:          123,
		Path:        "/music/song.mp3",
		Title:       "Test Song",
		Artist:      "Test Artist",
		Album:       "Test Album",
		TrackNumber: 5,
		Length:      200,
		FileType:    int(filetype.MPEG),
		AddedAt:     0,
	}

	track := FromLibraryTrack(libTrack)

	if track.ID != 123 || track.Path != "/music/song.mp3" {
		t.Errorf("identity not copied: %+v", track)
	}
	if track.Title != "Test Song" || track.Artist != "Test Artist" || track.Album != "Test Album" {
		t.Errorf("tags not copied: %+v", track)
	}
	if track.Duration != 200*time.Second {
		t.Errorf("Duration = %v, want 200s", track.Duration)
	}
	if track.FileType != filetype.MPEG {
		t.Errorf("FileType = %v, want MPEG", track.FileType)
	}
	if !track.Created.IsZero() {
		t.Error("zero added_at should give a zero time")
	}

	back := ToLibraryTrack(track)
	if back.Length != 200 || back.Title != "Test Song" || back.AddedAt != 0 {
		t.Errorf("ToLibraryTrack = %+v", back)
	}
}

func TestFromLibraryTracks_Empty(t *testing.T) {
	if tracks := FromLibraryTracks(nil); len(tracks) != 0 {
		t.Errorf("len = %d, want 0", len(tracks))
	}
}
