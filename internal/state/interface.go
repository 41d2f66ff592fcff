package state

import (
	"context"

	"github.com/llehouerou/reorder/internal/board"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	LoadBoard(ctx context.Context) ([]board.Column, error)
	SaveBoard(columns []board.Column)
	SaveBoardNow(ctx context.Context, columns []board.Column) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
