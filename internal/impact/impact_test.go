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

// world is a snapshot with a vertical home list "home" of 4 items (50px
// each, x 0..100) and a vertical list "b" of 3 items at x 200..300.
type world struct {
	snapshot dimension.Map
	viewport dimension.Viewport
}

func newWorld(extra ...dimension.DroppableDimension) world {
	var items []dimension.DraggableDimension
	items = append(items, dimensiontest.VerticalList("home", 4, 0, 0, 100, 50)...)
	items = append(items, dimensiontest.VerticalList("b", 3, 0, 200, 100, 50)...)

	droppables := []dimension.DroppableDimension{
		dimensiontest.Droppable("home", geometry.DirectionVertical, dimensiontest.Box(0, 0, 1000, 100)),
		dimensiontest.Droppable("b", geometry.DirectionVertical, dimensiontest.Box(0, 200, 1000, 300)),
		dimensiontest.Droppable("empty", geometry.DirectionVertical, dimensiontest.Box(0, 400, 1000, 500)),
	}
	droppables = append(droppables, extra...)

	return world{
		snapshot: dimension.NewMap(items, droppables),
		viewport: dimensiontest.Viewport(1000, 1000),
	}
}

func (w world) draggable(id dimension.DraggableID) dimension.DraggableDimension {
	return w.snapshot.Draggables[id]
}

func (w world) lift(t *testing.T, id dimension.DraggableID) (impact.DragImpact, impact.LiftEffect) {
	t.Helper()
	d := w.draggable(id)
	home, effect, err := impact.GetLiftEffect(impact.LiftArgs{
		Draggable:  d,
		Home:       w.snapshot.Droppables[d.Descriptor.DroppableID],
		Draggables: w.snapshot.Draggables,
		Viewport:   w.viewport,
	})
	require.NoError(t, err)
	return home, effect
}

func (w world) compute(id dimension.DraggableID, center geometry.Position, previous impact.DragImpact, direction impact.UserDirection, effect impact.LiftEffect) impact.DragImpact {
	return impact.Compute(impact.ComputeArgs{
		PageBorderBoxCenter: center,
		Draggable:           w.draggable(id),
		Draggables:          w.snapshot.Draggables,
		Droppables:          w.snapshot.Droppables,
		Previous:            previous,
		Viewport:            w.viewport,
		Direction:           direction,
		AfterCritical:       effect,
	})
}

var (
	down = impact.UserDirection{Vertical: impact.Down}
	up   = impact.UserDirection{Vertical: impact.Up}
)

func at(t *testing.T, i impact.DragImpact) dimension.Location {
	t.Helper()
	r, ok := i.Reorder()
	require.True(t, ok, "expected a reorder impact, got %#v", i.At)
	return r.Destination
}

func TestGetLiftEffect(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")

	assert.Equal(t, dimension.Location{DroppableID: "home", Index: 1}, at(t, home))
	assert.Empty(t, home.Displaced.All)
	assert.Equal(t, map[dimension.DraggableID]bool{"home-2": true, "home-3": true}, effect.Effected)
	assert.Equal(t, 50.0, effect.DisplacedBy.Value)
}

func TestGetLiftEffect_NotInHome(t *testing.T) {
	w := newWorld()
	_, _, err := impact.GetLiftEffect(impact.LiftArgs{
		Draggable:  w.draggable("home-1"),
		Home:       w.snapshot.Droppables["b"],
		Draggables: w.snapshot.Draggables,
		Viewport:   w.viewport,
	})
	assert.Error(t, err)
}

func TestCompute_RoundTrip(t *testing.T) {
	w := newWorld()
	for _, id := range []dimension.DraggableID{"home-0", "home-1", "home-2", "home-3"} {
		home, effect := w.lift(t, id)
		center := w.draggable(id).Page.BorderBox.Center

		got := w.compute(id, center, home, down, effect)

		assert.Equal(t, w.draggable(id).Descriptor.Index, at(t, got).Index, id)
		assert.Empty(t, got.Displaced.All, id)
	}
}

func TestCompute_HomeListMovingForward(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")

	got := w.compute("home-1", geometry.Position{X: 50, Y: 175}, home, down, effect)

	assert.Equal(t, dimension.Location{DroppableID: "home", Index: 3}, at(t, got))
	assert.Equal(t, []dimension.DraggableID{"home-3", "home-2"}, got.Displaced.All)
	assert.Equal(t, -50.0, got.DisplacedBy.Value)
	assert.True(t, got.Displaced.Visible["home-2"].ShouldAnimate)
}

func TestCompute_HomeListMovingBackward(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-3")

	got := w.compute("home-3", geometry.Position{X: 50, Y: 40}, home, up, effect)

	assert.Equal(t, 0, at(t, got).Index)
	assert.Equal(t, []dimension.DraggableID{"home-0", "home-1", "home-2"}, got.Displaced.All)
	assert.Equal(t, 50.0, got.DisplacedBy.Value)
}

func TestCompute_HomeListMovingBackTowardStart(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")
	far := w.compute("home-1", geometry.Position{X: 50, Y: 175}, home, down, effect)
	require.Len(t, far.Displaced.All, 2)

	// home-3 now sits at 100..150, home-2 at 50..100
	got := w.compute("home-1", geometry.Position{X: 50, Y: 145}, far, up, effect)
	assert.Equal(t, 2, at(t, got).Index)
	assert.Equal(t, []dimension.DraggableID{"home-2"}, got.Displaced.All)

	// exactly on the displaced end of home-2 resolves to the earlier index
	got = w.compute("home-1", geometry.Position{X: 50, Y: 100}, got, up, effect)
	assert.Equal(t, 1, at(t, got).Index)
	assert.Empty(t, got.Displaced.All)
}

func TestCompute_TiesResolveToEarlierIndex(t *testing.T) {
	w := newWorld()

	t.Run("in front of start", func(t *testing.T) {
		home, effect := w.lift(t, "home-1")
		// exactly the start edge of home-2
		got := w.compute("home-1", geometry.Position{X: 50, Y: 100}, home, down, effect)
		assert.Equal(t, 1, at(t, got).Index)

		got = w.compute("home-1", geometry.Position{X: 50, Y: 100.5}, home, down, effect)
		assert.Equal(t, 2, at(t, got).Index)
	})

	t.Run("behind start", func(t *testing.T) {
		home, effect := w.lift(t, "home-2")
		// exactly the end edge of home-1
		got := w.compute("home-2", geometry.Position{X: 50, Y: 100}, home, up, effect)
		assert.Equal(t, 1, at(t, got).Index)

		got = w.compute("home-2", geometry.Position{X: 50, Y: 100.5}, home, up, effect)
		assert.Equal(t, 2, at(t, got).Index)
	})

	t.Run("foreign list", func(t *testing.T) {
		home, effect := w.lift(t, "home-0")
		// exactly the center of b-1
		got := w.compute("home-0", geometry.Position{X: 250, Y: 75}, home, down, effect)
		assert.Equal(t, 1, at(t, got).Index)
	})
}

func TestCompute_Idempotent(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")
	center := geometry.Position{X: 50, Y: 160}

	first := w.compute("home-1", center, home, down, effect)
	second := w.compute("home-1", center, home, down, effect)

	assert.Equal(t, first, second)
}

func TestCompute_NeverDisplacesDraggingItem(t *testing.T) {
	w := newWorld()
	for _, id := range []dimension.DraggableID{"home-0", "home-1", "home-3", "b-1"} {
		previous, effect := w.lift(t, id)
		for y := -20.0; y <= 260; y += 5 {
			for _, x := range []float64{50, 250, 450} {
				got := w.compute(id, geometry.Position{X: x, Y: y}, previous, down, effect)
				assert.NotContains(t, got.Displaced.All, id)
				previous = got
			}
		}
	}
}

func TestCompute_MonotonicAwayFromStart(t *testing.T) {
	w := newWorld()

	t.Run("forward", func(t *testing.T) {
		previous, effect := w.lift(t, "home-0")
		count := 0
		for y := 25.0; y <= 220; y += 3 {
			previous = w.compute("home-0", geometry.Position{X: 50, Y: y}, previous, down, effect)
			assert.GreaterOrEqual(t, len(previous.Displaced.All), count, "y=%v", y)
			count = len(previous.Displaced.All)
		}
		assert.Equal(t, 3, count)
	})

	t.Run("backward", func(t *testing.T) {
		previous, effect := w.lift(t, "home-3")
		count := 0
		for y := 175.0; y >= 0; y -= 3 {
			previous = w.compute("home-3", geometry.Position{X: 50, Y: y}, previous, up, effect)
			assert.GreaterOrEqual(t, len(previous.Displaced.All), count, "y=%v", y)
			count = len(previous.Displaced.All)
		}
		assert.Equal(t, 3, count)
	})
}

func TestCompute_ForeignList(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")

	tests := []struct {
		name      string
		center    geometry.Position
		want      dimension.Location
		displaced []dimension.DraggableID
	}{
		{"before first", geometry.Position{X: 250, Y: 10}, dimension.Location{DroppableID: "b", Index: 0}, []dimension.DraggableID{"b-0", "b-1", "b-2"}},
		{"middle", geometry.Position{X: 250, Y: 60}, dimension.Location{DroppableID: "b", Index: 1}, []dimension.DraggableID{"b-1", "b-2"}},
		{"past the end", geometry.Position{X: 250, Y: 400}, dimension.Location{DroppableID: "b", Index: 3}, []dimension.DraggableID{}},
		{"empty list", geometry.Position{X: 450, Y: 400}, dimension.Location{DroppableID: "empty", Index: 0}, []dimension.DraggableID{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.compute("home-1", tt.center, home, down, effect)
			assert.Equal(t, tt.want, at(t, got))
			assert.Equal(t, tt.displaced, got.Displaced.All)
			if len(tt.displaced) > 0 {
				assert.Equal(t, 50.0, got.DisplacedBy.Value)
			}
		})
	}
}

func TestCompute_ForeignListUsesDisplacedCenters(t *testing.T) {
	w := newWorld()
	home, effect := w.lift(t, "home-1")

	first := w.compute("home-1", geometry.Position{X: 250, Y: 60}, home, down, effect)
	require.Equal(t, 1, at(t, first).Index)

	// b-1 is now displaced to 100..150, its visible center is 125
	got := w.compute("home-1", geometry.Position{X: 250, Y: 110}, first, down, effect)
	assert.Equal(t, 1, at(t, got).Index)

	got = w.compute("home-1", geometry.Position{X: 250, Y: 126}, got, down, effect)
	assert.Equal(t, 2, at(t, got).Index)
}

func TestCompute_NoImpact(t *testing.T) {
	disabled := dimensiontest.Droppable("disabled", geometry.DirectionVertical, dimensiontest.Box(0, 600, 1000, 700))
	disabled.IsEnabled = false
	w := newWorld(disabled)
	home, effect := w.lift(t, "home-1")

	outside := w.compute("home-1", geometry.Position{X: 900, Y: 50}, home, down, effect)
	assert.Nil(t, outside.At)
	assert.Empty(t, outside.Displaced.All)

	overDisabled := w.compute("home-1", geometry.Position{X: 650, Y: 50}, home, down, effect)
	assert.Nil(t, overDisabled.At)
}

func TestDroppableOver(t *testing.T) {
	inner := dimensiontest.Droppable("inner", geometry.DirectionVertical, dimensiontest.Box(0, 0, 200, 100))
	other := dimensiontest.Droppable("other-type", geometry.DirectionVertical, dimensiontest.Box(0, 0, 100, 100))
	other.Descriptor.Type = "other"
	w := newWorld(inner, other)
	draggable := w.draggable("home-1")

	got, ok := impact.DroppableOver(impact.OverArgs{
		Target:     geometry.Position{X: 50, Y: 50},
		Draggable:  draggable,
		Droppables: w.snapshot.Droppables,
		Previous:   impact.NoImpact(),
	})
	require.True(t, ok)
	assert.Equal(t, dimension.DroppableID("inner"), got.ID())

	previous := impact.DragImpact{At: impact.Reorder{Destination: dimension.Location{DroppableID: "home"}}}
	got, ok = impact.DroppableOver(impact.OverArgs{
		Target:     geometry.Position{X: 50, Y: 50},
		Draggable:  draggable,
		Droppables: w.snapshot.Droppables,
		Previous:   previous,
	})
	require.True(t, ok)
	assert.Equal(t, dimension.DroppableID("home"), got.ID())

	_, ok = impact.DroppableOver(impact.OverArgs{
		Target:     geometry.Position{X: 150, Y: 50},
		Draggable:  draggable,
		Droppables: w.snapshot.Droppables,
		Previous:   previous,
	})
	assert.False(t, ok)
}

func TestDroppableOver_IgnoresClippedSubject(t *testing.T) {
	hidden := dimensiontest.ScrollableDroppable("hidden", geometry.DirectionVertical,
		dimensiontest.Box(300, 600, 500, 700),
		dimensiontest.Box(0, 600, 200, 700),
	)
	w := newWorld(hidden)

	_, ok := impact.DroppableOver(impact.OverArgs{
		Target:     geometry.Position{X: 650, Y: 400},
		Draggable:  w.draggable("home-1"),
		Droppables: w.snapshot.Droppables,
		Previous:   impact.NoImpact(),
	})
	assert.False(t, ok)
}

func TestNextUserDirection(t *testing.T) {
	start := impact.UserDirection{}

	got := impact.NextUserDirection(start, geometry.Position{X: 10, Y: 10}, geometry.Position{X: 5, Y: 10})
	assert.Equal(t, impact.UserDirection{Vertical: impact.Down, Horizontal: impact.Left}, got)

	got = impact.NextUserDirection(got, geometry.Position{X: 5, Y: 10}, geometry.Position{X: 5, Y: 2})
	assert.Equal(t, impact.UserDirection{Vertical: impact.Up, Horizontal: impact.Left}, got)

	assert.True(t, start.IsForward(geometry.Vertical))
	assert.False(t, got.IsForward(geometry.Horizontal))
}
