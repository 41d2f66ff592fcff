package impact

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/invariant"
)

// LiftArgs are the inputs of GetLiftEffect.
type LiftArgs struct {
	Draggable  dimension.DraggableDimension
	Home       dimension.DroppableDimension
	Draggables map[dimension.DraggableID]dimension.DraggableDimension
	Viewport   dimension.Viewport
}

// GetLiftEffect returns the impact of an item resting where it was lifted,
// and the baseline that later impacts are measured against.
func GetLiftEffect(args LiftArgs) (DragImpact, LiftEffect, error) {
	insideHome := dimension.InsideDroppable(args.Home.ID(), args.Draggables)

	raw := -1
	for i, d := range insideHome {
		if d.ID() == args.Draggable.ID() {
			raw = i
			break
		}
	}
	if raw == -1 {
		return DragImpact{}, LiftEffect{}, invariant.New("impact.GetLiftEffect",
			"draggable %q is not inside its home %q", args.Draggable.ID(), args.Home.ID())
	}

	effected := make(map[dimension.DraggableID]bool, len(insideHome)-raw-1)
	for _, d := range insideHome[raw+1:] {
		effected[d.ID()] = true
	}

	displacedBy := NewDisplacedBy(args.Home.Axis, args.Draggable.DisplaceBy, true)
	effect := LiftEffect{DisplacedBy: displacedBy, Effected: effected}

	return homeImpact(args.Draggable, displacedBy), effect, nil
}

// homeImpact places the item back at its home index with nothing moved.
func homeImpact(draggable dimension.DraggableDimension, displacedBy DisplacedBy) DragImpact {
	return DragImpact{
		Displaced:   EmptyGroups(),
		DisplacedBy: displacedBy,
		At:          Reorder{Destination: draggable.Descriptor.HomeLocation()},
	}
}
