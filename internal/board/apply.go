package board

import (
	"fmt"

	"github.com/llehouerou/reorder/internal/drag"
)

// Change is what applying a drop did to the board.
type Change int

const (
	Unchanged Change = iota
	Reordered
	Moved
	Combined
)

func (c Change) String() string {
	switch c {
	case Reordered:
		return "reordered"
	case Moved:
		return "moved"
	case Combined:
		return "combined"
	}
	return "unchanged"
}

// Apply commits the result of a drop. Draggable ids are card ids and
// droppable ids are column ids.
func (b *Board) Apply(result drag.Result) (Change, error) {
	cardID := string(result.DraggableID)
	column, index, ok := b.Locate(cardID)
	if !ok {
		return Unchanged, fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}
	if column != string(result.Source.DroppableID) || index != result.Source.Index {
		return Unchanged, fmt.Errorf("card %s is at %s[%d], drop started at %s[%d]",
			cardID, column, index, result.Source.DroppableID, result.Source.Index)
	}

	switch {
	case result.Combine != nil:
		if err := b.Combine(cardID, string(result.Combine.DraggableID)); err != nil {
			return Unchanged, err
		}
		return Combined, nil

	case result.Destination != nil:
		dest := *result.Destination
		if dest == result.Source {
			return Unchanged, nil
		}
		if err := b.Move(cardID, string(dest.DroppableID), dest.Index); err != nil {
			return Unchanged, err
		}
		if dest.DroppableID == result.Source.DroppableID {
			return Reordered, nil
		}
		return Moved, nil
	}

	return Unchanged, nil
}
