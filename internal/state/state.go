// Package state persists the board in a sqlite database.
package state

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/reorder/internal/board"
	"github.com/llehouerou/reorder/internal/logger"
)

const (
	appName      = "reorder"
	dbFileName   = "reorder.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	log       *slog.Logger
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   []board.Column
	debounce  time.Duration
	closed    bool
	// flushing tracks debounced saves that took their columns and are
	// still writing.
	flushing sync.WaitGroup
}

// Open opens the database at path, or in the XDG data dir when path is empty.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = getDBPath(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return newManager(db)
}

func newManager(db *sql.DB) (*Manager, error) {
	// one writer; also keeps :memory: databases on a single connection
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db, log: logger.Component("state"), debounce: saveDebounce}, nil
}

// Close writes any pending save, waits for a debounced save already in
// progress, and closes the database. Later saves are ignored.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.closed = true
	m.saveMu.Unlock()

	if pending != nil {
		m.flush(pending)
	}
	m.flushing.Wait()

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// LoadBoard returns the stored columns, or nil when nothing was saved yet.
func (m *Manager) LoadBoard(ctx context.Context) ([]board.Column, error) {
	return loadBoard(ctx, m.db)
}

// SaveBoardNow writes the columns immediately, dropping any pending save.
func (m *Manager) SaveBoardNow(ctx context.Context, columns []board.Column) error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.pending = nil
	m.saveMu.Unlock()

	return saveBoard(ctx, m.db, columns)
}

// SaveBoard schedules a write. Saves arriving within the debounce window
// replace each other.
func (m *Manager) SaveBoard(columns []board.Column) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.closed {
		return
	}
	m.pending = columns

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		if pending != nil {
			m.flushing.Add(1)
		}
		m.saveMu.Unlock()

		if pending != nil {
			defer m.flushing.Done()
			m.flush(pending)
		}
	})
}

func (m *Manager) flush(columns []board.Column) {
	if err := saveBoard(context.Background(), m.db, columns); err != nil {
		m.log.Error("saving board", "error", err)
		return
	}
	m.log.Debug("board saved", "columns", len(columns))
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
