package state

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"slices"

	dbutil "github.com/llehouerou/tracklist/internal/db"
)

// Session is the saved playlist. Rows are identified by their position
// in Paths; Current and StopAfter are -1 when unset.
type Session struct {
	Paths     []string
	Current   int
	Queue     []int // rows, head first
	StopAfter int
	CursorRow int
	CursorCol int
}

// Empty returns a session with no rows.
func Empty() Session {
	return Session{Current: -1, StopAfter: -1}
}

func loadSession(ctx context.Context, db *sql.DB) (*Session, error) {
	s := Empty()
	row := db.QueryRowContext(ctx, `
		SELECT current_index, stop_after, cursor_row, cursor_col
		FROM session_state WHERE id = 1
	`)
	err := row.Scan(&s.Current, &s.StopAfter, &s.CursorRow, &s.CursorCol)
	if errors.Is(err, sql.ErrNoRows) {
		return &s, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT position, path, queue_rank FROM session_tracks ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type ranked struct{ row, rank int }
	var queued []ranked
	for rows.Next() {
		var pos int
		var path string
		var rank sql.NullInt64
		if err := rows.Scan(&pos, &path, &rank); err != nil {
			return nil, err
		}
		if rank.Valid {
			queued = append(queued, ranked{row: len(s.Paths), rank: dbutil.NullInt(rank)})
		}
		s.Paths = append(s.Paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(queued, func(a, b ranked) int { return cmp.Compare(a.rank, b.rank) })
	for _, q := range queued {
		s.Queue = append(s.Queue, q.row)
	}
	return &s, nil
}

func saveSession(ctx context.Context, db *sql.DB, s Session) error {
	ranks := make(map[int]int, len(s.Queue))
	for i, row := range s.Queue {
		ranks[row] = i
	}

	return dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO session_state (id, current_index, stop_after, cursor_row, cursor_col)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				stop_after = excluded.stop_after,
				cursor_row = excluded.cursor_row,
				cursor_col = excluded.cursor_col
		`, s.Current, s.StopAfter, s.CursorRow, s.CursorCol)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM session_tracks`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO session_tracks (position, path, queue_rank) VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, path := range s.Paths {
			rank := sql.NullInt64{}
			if r, ok := ranks[i]; ok {
				rank = sql.NullInt64{Int64: int64(r), Valid: true}
			}
			if _, err := stmt.ExecContext(ctx, i, path, rank); err != nil {
				return err
			}
		}
		return nil
	})
}
