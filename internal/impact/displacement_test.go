package impact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/dimension/dimensiontest"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
)

func tallList() dimension.DroppableDimension {
	return dimensiontest.Droppable("list", geometry.DirectionVertical, dimensiontest.Box(0, 0, 3000, 100))
}

func item(id string, top float64) dimension.DraggableDimension {
	return dimensiontest.Draggable(id, "list", 0, dimensiontest.Box(top, 0, top+50, 100))
}

func wideList() dimension.DroppableDimension {
	return dimensiontest.Droppable("row", geometry.DirectionHorizontal, dimensiontest.Box(0, 0, 100, 3000))
}

func column(id string, left float64) dimension.DraggableDimension {
	return dimensiontest.Draggable(id, "row", 0, dimensiontest.Box(0, left, 100, left+50))
}

func TestGetDisplacementGroups_Overscan(t *testing.T) {
	tests := []struct {
		name        string
		axis        geometry.Axis
		destination dimension.DroppableDimension
		viewport    geometry.Rect
		// near is one item length outside the viewport, far one unit further
		near, far dimension.DraggableDimension
	}{
		{
			name:        "vertical past the end",
			axis:        geometry.Vertical,
			destination: tallList(),
			viewport:    geometry.RectFromSize(0, 0, 1000, 1000),
			near:        item("near", 1050),
			far:         item("far", 1051),
		},
		{
			name:        "vertical before the start",
			axis:        geometry.Vertical,
			destination: tallList(),
			viewport:    geometry.RectFromSize(0, 1000, 1000, 1000),
			near:        item("near", 900),
			far:         item("far", 899),
		},
		{
			name:        "horizontal past the end",
			axis:        geometry.Horizontal,
			destination: wideList(),
			viewport:    geometry.RectFromSize(0, 0, 1000, 1000),
			near:        column("near", 1050),
			far:         column("far", 1051),
		},
		{
			name:        "horizontal before the start",
			axis:        geometry.Horizontal,
			destination: wideList(),
			viewport:    geometry.RectFromSize(1000, 0, 1000, 1000),
			near:        column("near", 900),
			far:         column("far", 899),
		},
	}

	for _, tt := range tests {
		for _, forward := range []bool{true, false} {
			groups := impact.GetDisplacementGroups(impact.GroupsArgs{
				Displaced:   []dimension.DraggableDimension{tt.near, tt.far},
				Destination: tt.destination,
				DisplacedBy: impact.NewDisplacedBy(tt.axis, geometry.Position{X: 50, Y: 50}, forward),
				Viewport:    tt.viewport,
			})

			assert.Equal(t, []dimension.DraggableID{"near", "far"}, groups.All, tt.name)
			assert.Contains(t, groups.Visible, dimension.DraggableID("near"), tt.name)
			assert.True(t, groups.Invisible["far"], tt.name)
		}
	}
}

func TestGetDisplacementGroups_ShouldAnimate(t *testing.T) {
	viewport := geometry.RectFromSize(0, 0, 1000, 1000)
	displacedBy := impact.NewDisplacedBy(geometry.Vertical, geometry.Position{Y: 50}, true)
	items := []dimension.DraggableDimension{item("a", 100), item("b", 200), item("c", 300)}

	last := impact.EmptyGroups()
	last.Invisible["a"] = true
	last.Visible["b"] = impact.Displacement{DraggableID: "b", ShouldAnimate: false}

	groups := impact.GetDisplacementGroups(impact.GroupsArgs{
		Displaced:   items,
		Destination: tallList(),
		DisplacedBy: displacedBy,
		Last:        &last,
		Viewport:    viewport,
	})
	assert.False(t, groups.Visible["a"].ShouldAnimate)
	assert.False(t, groups.Visible["b"].ShouldAnimate)
	assert.True(t, groups.Visible["c"].ShouldAnimate)

	force := true
	forced := impact.GetDisplacementGroups(impact.GroupsArgs{
		Displaced:          items,
		Destination:        tallList(),
		DisplacedBy:        displacedBy,
		Last:               &last,
		Viewport:           viewport,
		ForceShouldAnimate: &force,
	})
	for _, id := range []dimension.DraggableID{"a", "b", "c"} {
		assert.True(t, forced.Visible[id].ShouldAnimate, id)
	}
}

func TestRecompute_AfterWindowScroll(t *testing.T) {
	list := tallList()
	near := item("near", 1050)
	viewport := dimensiontest.Viewport(1000, 900)
	displacedBy := impact.NewDisplacedBy(geometry.Vertical, geometry.Position{Y: 50}, true)

	before := impact.DragImpact{
		Displaced: impact.GetDisplacementGroups(impact.GroupsArgs{
			Displaced:   []dimension.DraggableDimension{near},
			Destination: list,
			DisplacedBy: displacedBy,
			Viewport:    viewport.Frame,
		}),
		DisplacedBy: displacedBy,
		At:          impact.Reorder{Destination: dimension.Location{DroppableID: "list", Index: 0}},
	}
	require.True(t, before.Displaced.Invisible["near"])

	after := impact.Recompute(impact.RecomputeArgs{
		Impact:      before,
		Destination: list,
		Draggables:  map[dimension.DraggableID]dimension.DraggableDimension{"near": near},
		Viewport:    viewport.ScrollTo(geometry.Position{Y: 100}),
	})

	require.Contains(t, after.Displaced.Visible, dimension.DraggableID("near"))
	assert.False(t, after.Displaced.Visible["near"].ShouldAnimate)
	assert.Equal(t, before.At, after.At)
	assert.Equal(t, before.Displaced.All, after.Displaced.All)
}

func TestResolveDrop(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")
	reorder := w.compute("home-1", geometry.Position{X: 50, Y: 175}, home, down, effect)
	args := impact.DropArgs{
		LiftImpact: home,
		Home:       w.snapshot.Droppables["home"],
		Draggables: w.snapshot.Draggables,
		Viewport:   w.viewport,
	}

	t.Run("reorder is kept", func(t *testing.T) {
		args := args
		args.Reason = impact.ReasonDrop
		args.LastImpact = reorder
		got := impact.ResolveDrop(args)
		assert.True(t, got.DidDropInsideDroppable)
		assert.Equal(t, reorder, got.Impact)
	})

	t.Run("cancel returns home", func(t *testing.T) {
		args := args
		args.Reason = impact.ReasonCancel
		args.LastImpact = reorder
		got := impact.ResolveDrop(args)
		assert.False(t, got.DidDropInsideDroppable)
		assert.Equal(t, home.At, got.Impact.At)
		assert.Empty(t, got.Impact.Displaced.All)
	})

	t.Run("outside any droppable returns home", func(t *testing.T) {
		args := args
		args.Reason = impact.ReasonDrop
		args.LastImpact = impact.NoImpact()
		got := impact.ResolveDrop(args)
		assert.False(t, got.DidDropInsideDroppable)
		assert.Equal(t, home.At, got.Impact.At)
	})

	t.Run("combine closes the gap", func(t *testing.T) {
		args := args
		args.Reason = impact.ReasonDrop
		args.LastImpact = impact.DragImpact{
			Displaced:   reorder.Displaced,
			DisplacedBy: reorder.DisplacedBy,
			At:          impact.Combine{DraggableID: "home-2", DroppableID: "home"},
		}
		got := impact.ResolveDrop(args)
		assert.True(t, got.DidDropInsideDroppable)
		assert.Empty(t, got.Impact.Displaced.All)
		assert.Equal(t, args.LastImpact.At, got.Impact.At)
	})
}

func TestPageBorderBoxCenter(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")

	center := func(i impact.DragImpact) geometry.Position {
		t.Helper()
		got, err := impact.PageBorderBoxCenter(impact.CenterArgs{
			Impact:     i,
			Draggable:  w.draggable("home-1"),
			Draggables: w.snapshot.Draggables,
			Droppables: w.snapshot.Droppables,
		})
		require.NoError(t, err)
		return got
	}

	tests := []struct {
		name    string
		pointer geometry.Position
		want    geometry.Position
	}{
		{"home index", geometry.Position{X: 50, Y: 75}, geometry.Position{X: 50, Y: 75}},
		{"after pulled back items", geometry.Position{X: 50, Y: 175}, geometry.Position{X: 50, Y: 175}},
		{"before pushed items", geometry.Position{X: 250, Y: 60}, geometry.Position{X: 250, Y: 75}},
		{"end of foreign list", geometry.Position{X: 250, Y: 400}, geometry.Position{X: 250, Y: 175}},
		{"empty list", geometry.Position{X: 450, Y: 400}, geometry.Position{X: 450, Y: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := w.compute("home-1", tt.pointer, home, down, effect)
			assert.Equal(t, tt.want, center(i))
		})
	}

	t.Run("not over anything", func(t *testing.T) {
		assert.Equal(t, geometry.Position{X: 50, Y: 75}, center(impact.NoImpact()))
	})

	t.Run("combine", func(t *testing.T) {
		i := impact.DragImpact{
			Displaced: impact.EmptyGroups(),
			At:        impact.Combine{DraggableID: "b-2", DroppableID: "b"},
		}
		assert.Equal(t, geometry.Position{X: 250, Y: 125}, center(i))
	})

	t.Run("unknown droppable", func(t *testing.T) {
		_, err := impact.PageBorderBoxCenter(impact.CenterArgs{
			Impact:     impact.DragImpact{At: impact.Reorder{Destination: dimension.Location{DroppableID: "nope"}}},
			Draggable:  w.draggable("home-1"),
			Draggables: w.snapshot.Draggables,
			Droppables: w.snapshot.Droppables,
		})
		assert.Error(t, err)
	})
}

func TestReorderAt(t *testing.T) {
	w := newWorld()
	_, effect := w.lift(t, "home-1")

	reorderAt := func(destination dimension.DroppableID, index int) (impact.DragImpact, error) {
		return impact.ReorderAt(impact.ReorderArgs{
			Draggable:     w.draggable("home-1"),
			Destination:   w.snapshot.Droppables[destination],
			Draggables:    w.snapshot.Draggables,
			Index:         index,
			Viewport:      w.viewport,
			AfterCritical: effect,
		})
	}

	tests := []struct {
		name        string
		destination dimension.DroppableID
		index       int
		displaced   []dimension.DraggableID
		displacedBy float64
	}{
		{"home forward", "home", 3, []dimension.DraggableID{"home-3", "home-2"}, -50},
		{"home backward", "home", 0, []dimension.DraggableID{"home-0"}, 50},
		{"home index", "home", 1, nil, 50},
		{"foreign", "b", 1, []dimension.DraggableID{"b-1", "b-2"}, 50},
		{"foreign end", "b", 3, []dimension.DraggableID{}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reorderAt(tt.destination, tt.index)
			require.NoError(t, err)
			assert.Equal(t, dimension.Location{DroppableID: tt.destination, Index: tt.index}, at(t, got))
			assert.Equal(t, tt.displaced, got.Displaced.All)
			assert.Equal(t, tt.displacedBy, got.DisplacedBy.Value)
		})
	}

	_, err := reorderAt("home", 4)
	assert.Error(t, err)
	_, err = reorderAt("b", 4)
	assert.Error(t, err)
}

func TestReorderAt_MatchesCompute(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")
	computed := w.compute("home-1", geometry.Position{X: 50, Y: 175}, home, down, effect)

	built, err := impact.ReorderAt(impact.ReorderArgs{
		Draggable:     w.draggable("home-1"),
		Destination:   w.snapshot.Droppables["home"],
		Draggables:    w.snapshot.Draggables,
		Index:         3,
		Last:          &home.Displaced,
		Viewport:      w.viewport,
		AfterCritical: effect,
	})
	require.NoError(t, err)
	assert.Equal(t, computed, built)
}
