package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/dimension/dimensiontest"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/logger"
)

type fakeRegistry struct {
	draggables map[dimension.DraggableID]dimension.DraggableDimension
	droppables map[dimension.DroppableID]dimension.DroppableDimension
	measured   int
}

func (r *fakeRegistry) MeasureDraggable(id dimension.DraggableID) (dimension.DraggableDimension, error) {
	r.measured++
	d, ok := r.draggables[id]
	if !ok {
		return dimension.DraggableDimension{}, errors.New("not mounted: " + string(id))
	}
	return d, nil
}

func (r *fakeRegistry) MeasureDroppable(id dimension.DroppableID) (dimension.DroppableDimension, error) {
	r.measured++
	d, ok := r.droppables[id]
	if !ok {
		return dimension.DroppableDimension{}, errors.New("not mounted: " + string(id))
	}
	return d, nil
}

type recorder struct {
	starting  int
	published []Published
	failures  []error
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		CollectionStarting: func() { r.starting++ },
		Publish:            func(p Published) { r.published = append(r.published, p) },
		Fail:               func(err error) { r.failures = append(r.failures, err) },
	}
}

func newTestPublisher() (*Publisher, *FrameQueue, *fakeRegistry, *recorder) {
	registry := &fakeRegistry{
		draggables: map[dimension.DraggableID]dimension.DraggableDimension{
			"x": dimensiontest.Draggable("x", "a", 2, dimensiontest.Box(100, 0, 150, 100)),
			"y": dimensiontest.Draggable("y", "a", 0, dimensiontest.Box(0, 0, 50, 100)),
		},
		droppables: map[dimension.DroppableID]dimension.DroppableDimension{
			"a": dimensiontest.Droppable("a", geometry.DirectionVertical, dimensiontest.Box(0, 0, 500, 100)),
			"b": dimensiontest.Droppable("b", geometry.DirectionVertical, dimensiontest.Box(0, 200, 500, 300)),
		},
	}
	queue := NewFrameQueue()
	rec := &recorder{}
	return NewPublisher(registry, queue, rec.callbacks()), queue, registry, rec
}

func descriptor(id dimension.DraggableID, droppable dimension.DroppableID, index int) dimension.DraggableDescriptor {
	return dimension.DraggableDescriptor{ID: id, DroppableID: droppable, Type: dimension.DefaultType, Index: index}
}

func TestPublisher_CoalescesOneFrame(t *testing.T) {
	p, queue, registry, rec := newTestPublisher()

	p.Add(descriptor("x", "a", 2))
	p.Add(descriptor("y", "a", 0))
	p.Remove(descriptor("gone", "b", 1))

	assert.Equal(t, 1, rec.starting)
	assert.Equal(t, 1, queue.Pending())
	assert.True(t, p.IsCollecting())
	assert.Zero(t, registry.measured, "nothing is measured before the frame")

	assert.Equal(t, 1, queue.Flush())
	require.Len(t, rec.published, 1)
	got := rec.published[0]

	require.Len(t, got.Additions, 2)
	assert.Equal(t, dimension.DraggableID("y"), got.Additions[0].ID(), "ordered by index")
	assert.Equal(t, dimension.DraggableID("x"), got.Additions[1].ID())
	assert.Equal(t, []dimension.DraggableID{"gone"}, got.Removals)
	require.Len(t, got.Modified, 2)
	assert.Equal(t, dimension.DroppableID("a"), got.Modified[0].ID())
	assert.Equal(t, dimension.DroppableID("b"), got.Modified[1].ID())
	assert.False(t, p.IsCollecting())

	p.Add(descriptor("x", "a", 2))
	assert.Equal(t, 2, rec.starting, "a new frame starts a new batch")
}

func TestPublisher_AddAndRemoveCancel(t *testing.T) {
	p, queue, _, rec := newTestPublisher()

	p.Add(descriptor("x", "a", 2))
	p.Remove(descriptor("x", "a", 2))
	queue.Flush()

	require.Len(t, rec.published, 1)
	assert.Empty(t, rec.published[0].Additions)
	assert.Equal(t, []dimension.DraggableID{"x"}, rec.published[0].Removals)

	p.Remove(descriptor("y", "a", 0))
	p.Add(descriptor("y", "a", 0))
	queue.Flush()

	require.Len(t, rec.published, 2)
	assert.Empty(t, rec.published[1].Removals)
	require.Len(t, rec.published[1].Additions, 1)
}

func TestPublisher_Stop(t *testing.T) {
	p, queue, _, rec := newTestPublisher()

	p.Stop()
	p.Add(descriptor("x", "a", 2))
	p.Stop()

	assert.Zero(t, queue.Pending())
	assert.Zero(t, queue.Flush())
	assert.Empty(t, rec.published)
	assert.False(t, p.IsCollecting())

	p.Add(descriptor("y", "a", 0))
	queue.Flush()
	require.Len(t, rec.published, 1)
	require.Len(t, rec.published[0].Additions, 1, "staging was reset by Stop")
	assert.Equal(t, dimension.DraggableID("y"), rec.published[0].Additions[0].ID())
}

func TestPublisher_LogsOncePerDrag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reorder.log")
	require.NoError(t, logger.Init(path))
	t.Cleanup(logger.Close)

	p, queue, _, _ := newTestPublisher()

	p.Add(descriptor("x", "a", 2))
	queue.Flush()
	p.Add(descriptor("y", "a", 0))
	queue.Flush()
	p.Stop()

	p.Add(descriptor("x", "a", 2))
	queue.Flush()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "dimensions changed during a drag"))
}

func TestPublisher_MeasureFailure(t *testing.T) {
	p, queue, _, rec := newTestPublisher()

	p.Add(descriptor("unmounted", "a", 3))
	queue.Flush()

	assert.Empty(t, rec.published)
	require.Len(t, rec.failures, 1)
	assert.Contains(t, rec.failures[0].Error(), "unmounted")
	assert.False(t, p.IsCollecting())
}

func TestFrameQueue(t *testing.T) {
	q := NewFrameQueue()
	var order []string

	q.Schedule(func() { order = append(order, "first") })
	cancelled := q.Schedule(func() { order = append(order, "cancelled") })
	q.Schedule(func() {
		order = append(order, "third")
		q.Schedule(func() { order = append(order, "next frame") })
	})
	q.Cancel(cancelled)
	q.Cancel(FrameID(999))

	assert.Equal(t, 2, q.Flush())
	assert.Equal(t, []string{"first", "third"}, order)
	assert.Equal(t, 1, q.Pending())

	assert.Equal(t, 1, q.Flush())
	assert.Equal(t, []string{"first", "third", "next frame"}, order)
	assert.Zero(t, q.Flush())
}
