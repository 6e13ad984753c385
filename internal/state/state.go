// Package state persists the playlist session (rows, current row, queue,
// stop-after flag, cursor) next to the library index.
package state

import (
	"context"
	"database/sql"
	"sync"
	"time"
)

const saveDebounce = 500 * time.Millisecond

// Manager saves sessions with a debounce. It shares the database handle
// of the library index and does not close it.
type Manager struct {
	db       *sql.DB
	debounce time.Duration
	write    func(ctx context.Context, db *sql.DB, s Session) error

	// flushMu is held for a whole write, so Close waits for a timer flush
	// that is already running.
	flushMu sync.Mutex

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Session
	lastErr   error
	closed    bool
}

// New creates the session tables on db when missing.
func New(db *sql.DB) (*Manager, error) {
	if err := initSchema(db); err != nil {
		return nil, err
	}
	return &Manager{db: db, debounce: saveDebounce, write: saveSession}, nil
}

// Load returns the saved session, or an empty one.
func (m *Manager) Load(ctx context.Context) (*Session, error) {
	return loadSession(ctx, m.db)
}

// Save schedules s to be written after the debounce delay. A later call
// replaces a pending one.
func (m *Manager) Save(s Session) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.closed {
		return
	}
	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(m.debounce, func() {
		_ = m.Flush() // kept for Err
	})
}

// Flush writes the pending session now.
func (m *Manager) Flush() error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	err := m.write(context.Background(), m.db, *pending)

	m.saveMu.Lock()
	m.lastErr = err
	m.saveMu.Unlock()
	return err
}

// Err returns the error of the last write, if any.
func (m *Manager) Err() error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	return m.lastErr
}

// Close stops the timer, waits for a running write and writes the pending
// session. It returns the error of the last write. Later saves are ignored.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	if err := m.Flush(); err != nil {
		return err
	}
	return m.Err()
}
