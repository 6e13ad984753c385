// Package library is the sqlite-backed index of known tracks. The playlist
// view reads artist and album names from it to offer completions.
package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// Track is a row of the library index.
type Track struct {
	ID          int64
	Path        string
	Mtime       int64
	Artist      string
	AlbumArtist string
	Album       string
	Title       string
	Composer    string
	Genre       string
	Comment     string
	TrackNumber int
	DiscNumber  int
	Year        int
	Length      int // seconds
	Bitrate     int
	Samplerate  int
	Filesize    int64
	FileType    int
	AddedAt     int64
	Playcount   int
}

// Album is an album grouping record.
type Album struct {
	Name        string
	AlbumArtist string
	Year        int
}

// Library queries the index.
type Library struct {
	db *sql.DB
}

// New wraps an open database whose schema is already initialized.
func New(db *sql.DB) *Library {
	return &Library{db: db}
}

// Open opens (creating if needed) the index database at path.
func Open(path string) (*Library, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create library directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open library database: %w", err)
	}

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return New(db), nil
}

// DB returns the underlying database handle.
func (l *Library) DB() *sql.DB {
	return l.db
}

// Close closes the database.
func (l *Library) Close() error {
	return l.db.Close()
}

// InitSchema creates the index tables when missing.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS library_tracks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			mtime INTEGER NOT NULL,
			artist TEXT NOT NULL,
			album_artist TEXT NOT NULL,
			album TEXT NOT NULL,
			title TEXT NOT NULL,
			composer TEXT,
			genre TEXT,
			comment TEXT,
			disc_number INTEGER,
			track_number INTEGER,
			year INTEGER,
			length INTEGER,
			bitrate INTEGER,
			samplerate INTEGER,
			filesize INTEGER,
			filetype INTEGER,
			playcount INTEGER NOT NULL DEFAULT 0,
			added_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tracks_artist ON library_tracks(artist);
		CREATE INDEX IF NOT EXISTS idx_tracks_album_artist_album ON library_tracks(album_artist, album);
	`)
	if err != nil {
		return fmt.Errorf("init library schema: %w", err)
	}
	return nil
}
