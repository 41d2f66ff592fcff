package geometry

// BoxModel decomposes an element into its margin, border, padding and content
// boxes. MarginBox contains BorderBox contains PaddingBox contains ContentBox.
type BoxModel struct {
	MarginBox  Rect
	BorderBox  Rect
	PaddingBox Rect
	ContentBox Rect

	Margin  Spacing
	Border  Spacing
	Padding Spacing
}

// CreateBox builds a box model around a border box.
func CreateBox(borderBox, margin, border, padding Spacing) BoxModel {
	marginBox := NewRect(Expand(borderBox, margin))
	paddingBox := NewRect(Shrink(borderBox, border))
	contentBox := NewRect(Shrink(paddingBox.Spacing, padding))
	return BoxModel{
		MarginBox:  marginBox,
		BorderBox:  NewRect(borderBox),
		PaddingBox: paddingBox,
		ContentBox: contentBox,
		Margin:     margin,
		Border:     border,
		Padding:    padding,
	}
}

// Offset returns a copy of the box moved by change.
func (b BoxModel) Offset(change Position) BoxModel {
	return CreateBox(b.BorderBox.Spacing.Offset(change), b.Margin, b.Border, b.Padding)
}

// WithScroll converts a client box into page space.
func (b BoxModel) WithScroll(windowScroll Position) BoxModel {
	return b.Offset(windowScroll)
}
