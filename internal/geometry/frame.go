package geometry

// IsWithin reports whether lower <= value <= upper.
func IsWithin(lower, upper, value float64) bool {
	return lower <= value && value <= upper
}

// IsPositionInFrame reports whether p lies inside frame, edges included.
func IsPositionInFrame(frame Spacing, p Position) bool {
	return IsWithin(frame.Top, frame.Bottom, p.Y) && IsWithin(frame.Left, frame.Right, p.X)
}

// IsPartiallyVisibleThroughFrame reports whether any part of subject can be
// seen through frame.
func IsPartiallyVisibleThroughFrame(frame, subject Spacing) bool {
	withinVertical := func(v float64) bool { return IsWithin(frame.Top, frame.Bottom, v) }
	withinHorizontal := func(v float64) bool { return IsWithin(frame.Left, frame.Right, v) }

	if IsTotallyVisibleThroughFrame(frame, subject) {
		return true
	}

	partiallyVertical := withinVertical(subject.Top) || withinVertical(subject.Bottom)
	partiallyHorizontal := withinHorizontal(subject.Left) || withinHorizontal(subject.Right)
	if partiallyVertical && partiallyHorizontal {
		return true
	}

	biggerVertically := subject.Top < frame.Top && subject.Bottom > frame.Bottom
	biggerHorizontally := subject.Left < frame.Left && subject.Right > frame.Right
	if biggerVertically && biggerHorizontally {
		return true
	}

	return (biggerVertically && partiallyHorizontal) ||
		(biggerHorizontally && partiallyVertical)
}

// IsTotallyVisibleThroughFrame reports whether all of subject is inside frame.
func IsTotallyVisibleThroughFrame(frame, subject Spacing) bool {
	return IsWithin(frame.Top, frame.Bottom, subject.Top) &&
		IsWithin(frame.Top, frame.Bottom, subject.Bottom) &&
		IsWithin(frame.Left, frame.Right, subject.Left) &&
		IsWithin(frame.Left, frame.Right, subject.Right)
}

// IsTotallyVisibleThroughFrameOnAxis only checks the main-axis edges.
func IsTotallyVisibleThroughFrameOnAxis(axis Axis, frame, subject Spacing) bool {
	if axis.IsVertical() {
		return IsWithin(frame.Top, frame.Bottom, subject.Top) &&
			IsWithin(frame.Top, frame.Bottom, subject.Bottom)
	}
	return IsWithin(frame.Left, frame.Right, subject.Left) &&
		IsWithin(frame.Left, frame.Right, subject.Right)
}
