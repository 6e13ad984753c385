package library

import (
	"database/sql"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/tracklist/internal/db"
)

// AllArtists returns every distinct non-empty track artist.
func (l *Library) AllArtists() ([]string, error) {
	rows, err := l.db.Query(`
		SELECT DISTINCT artist FROM library_tracks
		WHERE artist != ''
		ORDER BY artist COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []string
	for rows.Next() {
		var artist string
		if err := rows.Scan(&artist); err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

// AllAlbums returns one record per (album artist, album) grouping.
func (l *Library) AllAlbums() ([]Album, error) {
	rows, err := l.db.Query(`
		SELECT album, album_artist, MAX(year) AS year
		FROM library_tracks
		WHERE album != ''
		GROUP BY album_artist, album
		ORDER BY album COLLATE NOCASE, album_artist COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		var a Album
		var year sql.NullInt64
		if err := rows.Scan(&a.Name, &a.AlbumArtist, &year); err != nil {
			return nil, err
		}
		a.Year = dbutil.NullInt(year)
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// Tracks returns every indexed track ordered for display.
func (l *Library) Tracks() ([]Track, error) {
	rows, err := l.db.Query(`
		SELECT id, path, mtime, artist, album_artist, album, title,
			composer, genre, comment, disc_number, track_number, year,
			length, bitrate, samplerate, filesize, filetype, playcount, added_at
		FROM library_tracks
		ORDER BY album_artist COLLATE NOCASE, album COLLATE NOCASE,
			disc_number, track_number, title COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var t Track
		var composer, genre, comment sql.NullString
		var disc, trackNum, year, length, bitrate, samplerate, filetype sql.NullInt64
		var filesize sql.NullInt64
		if err := rows.Scan(
			&t.ID, &t.Path, &t.Mtime, &t.Artist, &t.AlbumArtist, &t.Album, &t.Title,
			&composer, &genre, &comment, &disc, &trackNum, &year,
			&length, &bitrate, &samplerate, &filesize, &filetype, &t.Playcount, &t.AddedAt,
		); err != nil {
			return nil, err
		}
		t.Composer = dbutil.NullString(composer)
		t.Genre = dbutil.NullString(genre)
		t.Comment = dbutil.NullString(comment)
		t.DiscNumber = dbutil.NullInt(disc)
		t.TrackNumber = dbutil.NullInt(trackNum)
		t.Year = dbutil.NullInt(year)
		t.Length = dbutil.NullInt(length)
		t.Bitrate = dbutil.NullInt(bitrate)
		t.Samplerate = dbutil.NullInt(samplerate)
		t.Filesize = filesize.Int64
		t.FileType = dbutil.NullInt(filetype)
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// TrackCount returns the number of indexed tracks.
func (l *Library) TrackCount() (int, error) {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM library_tracks`).Scan(&count)
	return count, err
}

// Upsert inserts a track or updates the row with the same path.
// Returns the row ID.
func (l *Library) Upsert(t Track) (int64, error) {
	now := time.Now().Unix()
	addedAt := t.AddedAt
	if addedAt == 0 {
		addedAt = now
	}

	var id int64
	err := l.db.QueryRow(`
		INSERT INTO library_tracks (
			path, mtime, artist, album_artist, album, title, composer, genre, comment,
			disc_number, track_number, year, length, bitrate, samplerate, filesize,
			filetype, playcount, added_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			mtime = excluded.mtime,
			artist = excluded.artist,
			album_artist = excluded.album_artist,
			album = excluded.album,
			title = excluded.title,
			composer = excluded.composer,
			genre = excluded.genre,
			comment = excluded.comment,
			disc_number = excluded.disc_number,
			track_number = excluded.track_number,
			year = excluded.year,
			length = excluded.length,
			bitrate = excluded.bitrate,
			samplerate = excluded.samplerate,
			filesize = excluded.filesize,
			filetype = excluded.filetype,
			updated_at = excluded.updated_at
		RETURNING id
	`,
		t.Path, t.Mtime, t.Artist, t.AlbumArtist, t.Album, t.Title,
		dbutil.OptionalString(t.Composer), dbutil.OptionalString(t.Genre), dbutil.OptionalString(t.Comment),
		dbutil.OptionalInt(int64(t.DiscNumber)), dbutil.OptionalInt(int64(t.TrackNumber)),
		dbutil.OptionalInt(int64(t.Year)), dbutil.OptionalInt(int64(t.Length)),
		dbutil.OptionalInt(int64(t.Bitrate)), dbutil.OptionalInt(int64(t.Samplerate)), t.Filesize,
		dbutil.OptionalInt(int64(t.FileType)), t.Playcount, addedAt, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert %s: %w", t.Path, err)
	}
	return id, nil
}
