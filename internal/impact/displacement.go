package impact

import (
	"math"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/visibility"
)

// GroupsArgs are the inputs of GetDisplacementGroups.
type GroupsArgs struct {
	// Displaced is ordered closest to the dragging item first.
	Displaced   []dimension.DraggableDimension
	Destination dimension.DroppableDimension
	DisplacedBy DisplacedBy
	Last        *DisplacementGroups
	Viewport    geometry.Rect
	// ForceShouldAnimate overrides the animation flag of every visible item.
	ForceShouldAnimate *bool
}

// GetDisplacementGroups partitions the displaced items into visible and
// invisible ones. An item is tested with its margin box grown by the
// displacement on both main-axis edges, so items just off screen still
// animate in.
func GetDisplacementGroups(args GroupsArgs) DisplacementGroups {
	groups := EmptyGroups()
	groups.All = make([]dimension.DraggableID, 0, len(args.Displaced))

	axis := args.Destination.Axis
	overscan := math.Abs(args.DisplacedBy.Value)

	for _, d := range args.Displaced {
		id := d.ID()
		groups.All = append(groups.All, id)

		target := axis.ExpandLine(d.Page.MarginBox.Spacing, overscan)
		visible := visibility.IsPartiallyVisible(visibility.Args{
			Target:                    target,
			Destination:               args.Destination,
			Viewport:                  args.Viewport,
			WithDroppableDisplacement: true,
		})
		if !visible {
			groups.Invisible[id] = true
			continue
		}
		groups.Visible[id] = Displacement{
			DraggableID:   id,
			ShouldAnimate: shouldAnimate(id, args.Last, args.ForceShouldAnimate),
		}
	}
	return groups
}

func shouldAnimate(id dimension.DraggableID, last *DisplacementGroups, force *bool) bool {
	if force != nil {
		return *force
	}
	if last == nil {
		return true
	}
	// coming into view: it should already be in place
	if last.Invisible[id] {
		return false
	}
	if previous, ok := last.Visible[id]; ok {
		return previous.ShouldAnimate
	}
	return true
}

// lookup resolves ids against the snapshot, skipping unknown ones.
func lookup(ids []dimension.DraggableID, draggables map[dimension.DraggableID]dimension.DraggableDimension) []dimension.DraggableDimension {
	out := make([]dimension.DraggableDimension, 0, len(ids))
	for _, id := range ids {
		if d, ok := draggables[id]; ok {
			out = append(out, d)
		}
	}
	return out
}
