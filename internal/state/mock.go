package state

import (
	"context"
	"sync"

	"github.com/llehouerou/reorder/internal/board"
)

// Mock is a test double for Manager.
type Mock struct {
	mu     sync.Mutex
	stored []board.Column
	saves  int
	closed bool
}

// NewMock creates a new mock state manager holding columns.
func NewMock(columns []board.Column) *Mock {
	return &Mock{stored: columns}
}

func (m *Mock) LoadBoard(context.Context) ([]board.Column, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stored, nil
}

func (m *Mock) SaveBoard(columns []board.Column) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = columns
	m.saves++
}

func (m *Mock) SaveBoardNow(_ context.Context, columns []board.Column) error {
	m.SaveBoard(columns)
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Saves returns how many times the board was saved.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Stored returns the last saved columns.
func (m *Mock) Stored() []board.Column {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stored
}

// IsClosed reports whether Close was called.
func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
