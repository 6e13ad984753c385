package state

import (
	"database/sql"
	"fmt"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_index INTEGER NOT NULL DEFAULT -1,
			stop_after INTEGER NOT NULL DEFAULT -1,
			cursor_row INTEGER NOT NULL DEFAULT 0,
			cursor_col INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS session_tracks (
			position INTEGER PRIMARY KEY,
			path TEXT NOT NULL,
			queue_rank INTEGER
		);
	`)
	if err != nil {
		return fmt.Errorf("init session schema: %w", err)
	}
	return nil
}
