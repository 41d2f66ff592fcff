package dimension

import (
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/invariant"
)

// DroppableDescriptor identifies a list.
type DroppableDescriptor struct {
	ID   DroppableID
	Type TypeID
}

// ScrollDiff is the change in scroll since the drag started.
// Displacement is the visual shift of content, the inverse of Value.
type ScrollDiff struct {
	Value        geometry.Position
	Displacement geometry.Position
}

// ScrollDetails tracks a scroll container (or the window) during a drag.
type ScrollDetails struct {
	Initial geometry.Position
	Current geometry.Position
	Max     geometry.Position
	Diff    ScrollDiff
}

// ScrollSize is the scrollable content size of a container.
type ScrollSize struct {
	ScrollWidth  float64
	ScrollHeight float64
}

// Scrollable is the closest scroll container of a droppable.
type Scrollable struct {
	PageMarginBox     geometry.Rect
	FrameClient       geometry.BoxModel
	ScrollSize        ScrollSize
	ShouldClipSubject bool
	Scroll            ScrollDetails
}

// PlaceholderInSubject records the room reserved in a foreign list.
type PlaceholderInSubject struct {
	PlaceholderSize geometry.Position
	// IncreasedBy is nil when the list already had enough room.
	IncreasedBy *geometry.Position
	// OldFrameMaxScroll is nil when the droppable has no frame.
	OldFrameMaxScroll *geometry.Position
}

// Subject is the area of a droppable used for hit-testing and visibility.
type Subject struct {
	Page            geometry.BoxModel
	WithPlaceholder *PlaceholderInSubject
	// Active is nil when the subject is clipped away completely.
	Active *geometry.Rect
}

// DroppableDimension is the measured geometry of a list.
type DroppableDimension struct {
	Descriptor       DroppableDescriptor
	Axis             geometry.Axis
	IsEnabled        bool
	IsCombineEnabled bool
	Client           geometry.BoxModel
	Page             geometry.BoxModel
	// Frame is nil when the droppable is not inside a scroll container.
	Frame   *Scrollable
	Subject Subject
}

// ID is a shortcut for Descriptor.ID.
func (d DroppableDimension) ID() DroppableID {
	return d.Descriptor.ID
}

// Closest describes the scroll container around a droppable at collection time.
type Closest struct {
	Client            geometry.BoxModel
	Page              geometry.BoxModel
	ScrollSize        ScrollSize
	ShouldClipSubject bool
	Scroll            geometry.Position
}

// DroppableArgs are the measurements a droppable is built from.
type DroppableArgs struct {
	Descriptor       DroppableDescriptor
	IsEnabled        bool
	IsCombineEnabled bool
	Direction        geometry.Direction
	Client           geometry.BoxModel
	Page             geometry.BoxModel
	Closest          *Closest
}

// NewDroppable builds a droppable and computes its subject.
func NewDroppable(args DroppableArgs) DroppableDimension {
	var frame *Scrollable
	if c := args.Closest; c != nil {
		frame = &Scrollable{
			PageMarginBox:     c.Page.MarginBox,
			FrameClient:       c.Client,
			ScrollSize:        c.ScrollSize,
			ShouldClipSubject: c.ShouldClipSubject,
			Scroll: ScrollDetails{
				Initial: c.Scroll,
				Current: c.Scroll,
				Max:     maxScroll(c.ScrollSize, c.Client.PaddingBox),
			},
		}
	}

	axis := geometry.AxisFor(args.Direction)
	return DroppableDimension{
		Descriptor:       args.Descriptor,
		Axis:             axis,
		IsEnabled:        args.IsEnabled,
		IsCombineEnabled: args.IsCombineEnabled,
		Client:           args.Client,
		Page:             args.Page,
		Frame:            frame,
		Subject:          subjectFor(args.Page, nil, axis, frame),
	}
}

func maxScroll(size ScrollSize, box geometry.Rect) geometry.Position {
	return geometry.Position{
		X: max(0, size.ScrollWidth-box.Width),
		Y: max(0, size.ScrollHeight-box.Height),
	}
}

// subjectFor shifts the page box by the frame scroll, grows it by any
// placeholder and clips it to the frame.
func subjectFor(page geometry.BoxModel, withPlaceholder *PlaceholderInSubject, axis geometry.Axis, frame *Scrollable) Subject {
	target := page.MarginBox.Spacing
	if frame != nil && !frame.Scroll.Diff.Displacement.Equal(geometry.Origin) {
		target = target.Offset(frame.Scroll.Diff.Displacement)
	}

	if withPlaceholder != nil && withPlaceholder.IncreasedBy != nil {
		target = axis.WithEnd(target, axis.End(target)+axis.Line(*withPlaceholder.IncreasedBy))
	}

	var active *geometry.Rect
	if frame != nil && frame.ShouldClipSubject {
		if clipped, ok := geometry.Clip(frame.PageMarginBox.Spacing, target); ok {
			active = &clipped
		}
	} else {
		r := geometry.NewRect(target)
		active = &r
	}

	return Subject{
		Page:            page,
		WithPlaceholder: withPlaceholder,
		Active:          active,
	}
}

// Scroll returns the droppable as seen after its frame scrolled to newScroll.
func Scroll(d DroppableDimension, newScroll geometry.Position) (DroppableDimension, error) {
	if d.Frame == nil {
		return d, invariant.New("dimension.Scroll", "droppable %q has no scroll container", d.ID())
	}

	frame := *d.Frame
	diff := newScroll.Subtract(frame.Scroll.Initial)
	frame.Scroll = ScrollDetails{
		Initial: frame.Scroll.Initial,
		Current: newScroll,
		Max:     frame.Scroll.Max,
		Diff: ScrollDiff{
			Value:        diff,
			Displacement: diff.Negate(),
		},
	}

	d.Frame = &frame
	d.Subject = subjectFor(d.Subject.Page, d.Subject.WithPlaceholder, d.Axis, &frame)
	return d, nil
}

// ClampScroll keeps a requested scroll within the frame bounds.
func (d DroppableDimension) ClampScroll(p geometry.Position) geometry.Position {
	if d.Frame == nil {
		return geometry.Origin
	}
	m := d.Frame.Scroll.Max
	return geometry.Position{
		X: min(max(p.X, 0), m.X),
		Y: min(max(p.Y, 0), m.Y),
	}
}

// WithDroppableScroll converts a page point into the droppable's scrolled space.
func WithDroppableScroll(d DroppableDimension, p geometry.Position) geometry.Position {
	if d.Frame == nil {
		return p
	}
	return p.Add(d.Frame.Scroll.Diff.Value)
}

// WithDroppableDisplacement shifts a resting page point by the droppable scroll.
func WithDroppableDisplacement(d DroppableDimension, p geometry.Position) geometry.Position {
	if d.Frame == nil {
		return p
	}
	return p.Add(d.Frame.Scroll.Diff.Displacement)
}
