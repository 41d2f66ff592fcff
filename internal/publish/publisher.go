package publish

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/logger"
)

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// FrameScheduler runs callbacks on the next animation frame.
type FrameScheduler interface {
	Schedule(fn func()) FrameID
	Cancel(id FrameID)
}

// Registry measures registered items and lists on demand.
type Registry interface {
	// MeasureDraggable measures an item as if the window were not scrolled.
	MeasureDraggable(id dimension.DraggableID) (dimension.DraggableDimension, error)
	MeasureDroppable(id dimension.DroppableID) (dimension.DroppableDimension, error)
}

// Callbacks connect a Publisher to the drag it feeds.
type Callbacks struct {
	// CollectionStarting is called when the first change of a batch is staged.
	CollectionStarting func()
	Publish            func(Published)
	// Fail is called when a staged dimension could not be measured. The
	// batch is dropped.
	Fail func(error)
}

type staging struct {
	additions map[dimension.DraggableID]dimension.DraggableDescriptor
	removals  map[dimension.DraggableID]bool
	modified  map[dimension.DroppableID]bool
}

func clean() staging {
	return staging{
		additions: make(map[dimension.DraggableID]dimension.DraggableDescriptor),
		removals:  make(map[dimension.DraggableID]bool),
		modified:  make(map[dimension.DroppableID]bool),
	}
}

// Publisher collects items added and removed during a drag. Changes staged
// within one frame are measured and published together.
type Publisher struct {
	mu        sync.Mutex
	registry  Registry
	scheduler FrameScheduler
	callbacks Callbacks

	staging   staging
	frame     FrameID
	scheduled bool
	announced bool
}

// NewPublisher creates a publisher with nothing staged.
func NewPublisher(registry Registry, scheduler FrameScheduler, callbacks Callbacks) *Publisher {
	return &Publisher{
		registry:  registry,
		scheduler: scheduler,
		callbacks: callbacks,
		staging:   clean(),
	}
}

// Add stages an item that appeared. Adding an item staged for removal
// cancels the removal.
func (p *Publisher) Add(descriptor dimension.DraggableDescriptor) {
	p.mu.Lock()
	p.staging.additions[descriptor.ID] = descriptor
	p.staging.modified[descriptor.DroppableID] = true
	delete(p.staging.removals, descriptor.ID)
	starting := p.collectLocked()
	p.mu.Unlock()

	if starting && p.callbacks.CollectionStarting != nil {
		p.callbacks.CollectionStarting()
	}
}

// Remove stages an item that disappeared. Removing an item staged for
// addition cancels the addition.
func (p *Publisher) Remove(descriptor dimension.DraggableDescriptor) {
	p.mu.Lock()
	p.staging.removals[descriptor.ID] = true
	p.staging.modified[descriptor.DroppableID] = true
	delete(p.staging.additions, descriptor.ID)
	starting := p.collectLocked()
	p.mu.Unlock()

	if starting && p.callbacks.CollectionStarting != nil {
		p.callbacks.CollectionStarting()
	}
}

// Stop cancels a pending collection and forgets everything staged. Call it
// when the drag ends.
func (p *Publisher) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.announced = false
	if !p.scheduled {
		return
	}
	p.scheduler.Cancel(p.frame)
	p.scheduled = false
	p.staging = clean()
}

// IsCollecting reports whether a batch is waiting for its frame.
func (p *Publisher) IsCollecting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scheduled
}

// collectLocked schedules the frame flush and reports whether this change
// started a new batch.
func (p *Publisher) collectLocked() bool {
	if !p.announced {
		p.announced = true
		logger.Component("publish").Info("dimensions changed during a drag")
	}
	if p.scheduled {
		return false
	}
	p.scheduled = true
	p.frame = p.scheduler.Schedule(p.flush)
	return true
}

func (p *Publisher) flush() {
	p.mu.Lock()
	if !p.scheduled {
		p.mu.Unlock()
		return
	}
	p.scheduled = false
	staged := p.staging
	p.staging = clean()
	p.mu.Unlock()

	published, err := p.measure(staged)
	if err != nil {
		logger.Component("publish").Error("collecting dimensions", "error", err)
		if p.callbacks.Fail != nil {
			p.callbacks.Fail(err)
		}
		return
	}
	if p.callbacks.Publish != nil {
		p.callbacks.Publish(published)
	}
}

func (p *Publisher) measure(s staging) (Published, error) {
	var published Published

	for _, id := range slices.Sorted(maps.Keys(s.additions)) {
		d, err := p.registry.MeasureDraggable(id)
		if err != nil {
			return Published{}, err
		}
		published.Additions = append(published.Additions, d)
	}
	// measurement order says nothing about list order
	slices.SortStableFunc(published.Additions, func(a, b dimension.DraggableDimension) int {
		if c := cmp.Compare(a.Descriptor.Index, b.Descriptor.Index); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID()), string(b.ID()))
	})

	published.Removals = slices.Sorted(maps.Keys(s.removals))

	for _, id := range slices.Sorted(maps.Keys(s.modified)) {
		d, err := p.registry.MeasureDroppable(id)
		if err != nil {
			return Published{}, err
		}
		published.Modified = append(published.Modified, d)
	}
	return published, nil
}

// FrameQueue is a FrameScheduler driven by the host: callbacks run when the
// host calls Flush once per frame.
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameID
	pending map[FrameID]func()
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func())}
}

// Schedule queues fn for the next Flush.
func (q *FrameQueue) Schedule(fn func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// Cancel drops a queued callback. Unknown ids are ignored.
func (q *FrameQueue) Cancel(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, id)
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs the callbacks queued before the call, in scheduling order.
// Callbacks scheduled while flushing wait for the next frame. It returns
// how many callbacks ran.
func (q *FrameQueue) Flush() int {
	q.mu.Lock()
	ids := slices.Sorted(maps.Keys(q.pending))
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, q.pending[id])
		delete(q.pending, id)
	}
	q.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}
