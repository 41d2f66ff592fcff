package movement

import (
	"slices"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/invariant"
)

// instruction is the next reorder position. ModifyDisplacement is false when
// the previous displacement already describes it.
type instruction struct {
	ProposedIndex      int
	ModifyDisplacement bool
}

func moveToNextPlace(args Args, destination dimension.DroppableDimension) (*Result, error) {
	const op = "movement.moveToNextPlace"

	forward := args.Command.isForward()
	inside := dimension.InsideDroppable(destination.ID(), args.Snapshot.Draggables)
	isHome := args.Draggable.Descriptor.DroppableID == destination.ID()
	others := withoutDraggable(inside, args.Draggable.ID())

	switch at := args.Previous.At.(type) {
	case impact.Reorder:
		if next, ok := nextCombine(args, destination, others, at, forward); ok {
			return finalize(args, destination, next)
		}
		ins, ok := fromReorder(at, len(inside), isHome, forward)
		if !ok {
			return nil, nil
		}
		return reorderTo(args, destination, ins)

	case impact.Combine:
		pos := slices.IndexFunc(others, func(d dimension.DraggableDimension) bool {
			return d.ID() == at.DraggableID
		})
		if pos == -1 {
			return nil, invariant.New(op, "combine target %q is not inside %q", at.DraggableID, destination.ID())
		}
		return reorderTo(args, destination, fromCombine(args.Previous, pos, args.Draggable.Descriptor.Index, len(others), isHome, forward))
	}

	return nil, invariant.New(op, "cannot move to the next place without a previous location")
}

// fromReorder steps one index. A foreign list has one more slot than items.
func fromReorder(at impact.Reorder, size int, isHome, forward bool) (instruction, bool) {
	if size == 0 {
		return instruction{}, false
	}
	proposed := at.Destination.Index - 1
	if forward {
		proposed = at.Destination.Index + 1
	}
	upper := size
	if isHome {
		upper = size - 1
	}
	if proposed < 0 || proposed > upper {
		return instruction{}, false
	}
	return instruction{ProposedIndex: proposed, ModifyDisplacement: true}, true
}

// fromCombine leaves the combine target, landing after it when moving
// forward and before it when moving backward. pos is the position of the
// target among the items other than the dragging one.
func fromCombine(previous impact.DragImpact, pos, home, others int, isHome, forward bool) instruction {
	proposed := pos
	if forward {
		proposed = pos + 1
	}
	return instruction{
		ProposedIndex:      proposed,
		ModifyDisplacement: proposed != impliedIndex(previous, home, others, isHome),
	}
}

// impliedIndex is the slot the displacement of an impact leaves open.
func impliedIndex(i impact.DragImpact, home, others int, isHome bool) int {
	displaced := len(i.Displaced.All)
	if !isHome {
		return others - displaced
	}
	// pulled back items sit before the slot
	if i.DisplacedBy.Value < 0 {
		return home + displaced
	}
	return home - displaced
}

// nextCombine moves from a reorder onto the item next to the open slot when
// the destination allows combining. The slot index is also the position of the
// slot among the items other than the dragging one.
func nextCombine(args Args, destination dimension.DroppableDimension, others []dimension.DraggableDimension, at impact.Reorder, forward bool) (impact.DragImpact, bool) {
	if !destination.IsCombineEnabled {
		return impact.DragImpact{}, false
	}

	slot := at.Destination.Index
	target := slot - 1
	if forward {
		target = slot
	}
	if target < 0 || target >= len(others) {
		return impact.DragImpact{}, false
	}

	return impact.DragImpact{
		Displaced:   args.Previous.Displaced,
		DisplacedBy: args.Previous.DisplacedBy,
		At: impact.Combine{
			DraggableID: others[target].ID(),
			DroppableID: destination.ID(),
			WhenEntered: directionOf(args.Command),
		},
	}, true
}

func directionOf(c Command) impact.UserDirection {
	var d impact.UserDirection
	switch c {
	case MoveUp:
		d.Vertical = impact.Up
	case MoveLeft:
		d.Horizontal = impact.Left
	}
	return d
}

func reorderTo(args Args, destination dimension.DroppableDimension, ins instruction) (*Result, error) {
	if !ins.ModifyDisplacement {
		next := impact.DragImpact{
			Displaced:   args.Previous.Displaced,
			DisplacedBy: args.Previous.DisplacedBy,
			At: impact.Reorder{Destination: dimension.Location{
				DroppableID: destination.ID(),
				Index:       ins.ProposedIndex,
			}},
		}
		return finalize(args, destination, next)
	}

	next, err := impact.ReorderAt(impact.ReorderArgs{
		Draggable:     args.Draggable,
		Destination:   destination,
		Draggables:    args.Snapshot.Draggables,
		Index:         ins.ProposedIndex,
		Last:          &args.Previous.Displaced,
		Viewport:      args.Viewport,
		AfterCritical: args.AfterCritical,
	})
	if err != nil {
		return nil, err
	}
	return finalize(args, destination, next)
}
