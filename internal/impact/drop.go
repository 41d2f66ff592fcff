package impact

import "github.com/llehouerou/reorder/internal/dimension"

// DropReason tells how a drag ended.
type DropReason int

const (
	ReasonDrop DropReason = iota
	ReasonCancel
)

func (r DropReason) String() string {
	if r == ReasonCancel {
		return "cancel"
	}
	return "drop"
}

// DropArgs are the inputs of ResolveDrop.
type DropArgs struct {
	Reason     DropReason
	LastImpact DragImpact
	LiftImpact DragImpact
	Home       dimension.DroppableDimension
	Draggables map[dimension.DraggableID]dimension.DraggableDimension
	Viewport   dimension.Viewport
}

// DropResolution is the impact a dropped item animates into.
type DropResolution struct {
	Impact                 DragImpact
	DidDropInsideDroppable bool
}

// ResolveDrop picks the final impact of a drag.
func ResolveDrop(args DropArgs) DropResolution {
	if args.LastImpact.At == nil || args.Reason != ReasonDrop {
		// everything visibly returns home
		force := true
		return DropResolution{
			Impact: Recompute(RecomputeArgs{
				Impact:             args.LiftImpact,
				Destination:        args.Home,
				Draggables:         args.Draggables,
				Viewport:           args.Viewport,
				ForceShouldAnimate: &force,
			}),
			DidDropInsideDroppable: false,
		}
	}

	switch args.LastImpact.At.(type) {
	case Reorder:
		return DropResolution{Impact: args.LastImpact, DidDropInsideDroppable: true}
	case Combine:
		// the gap closes as the item merges into its target
		return DropResolution{
			Impact: DragImpact{
				Displaced:   EmptyGroups(),
				DisplacedBy: args.LastImpact.DisplacedBy,
				At:          args.LastImpact.At,
			},
			DidDropInsideDroppable: true,
		}
	}
	return DropResolution{Impact: args.LastImpact, DidDropInsideDroppable: true}
}
