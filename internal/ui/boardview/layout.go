package boardview

import (
	"github.com/llehouerou/reorder/internal/board"
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
)

// Terminal cell metrics of the board.
const (
	headerHeight = 2 // title + rule
	marginLeft   = 1
	columnWidth  = 26
	columnGap    = 2
	cardInset    = 1 // between the column edge and its cards
	cardHeight   = 3
	slotHeight   = cardHeight + 1
)

// columnLayout places one column. Cards are listed by id in board order.
type columnLayout struct {
	ID     string
	Title  string
	Left   int
	Cards  []string
	Scroll int
}

// layout converts the board into cell geometry. Every column is a vertical
// list inside its own scroll container; the terminal itself never scrolls.
type layout struct {
	width       int
	height      int
	frameHeight int
	columns     []columnLayout
}

func newLayout(cols []board.Column, width, bodyHeight int, scroll map[string]int) layout {
	l := layout{
		width:       width,
		height:      headerHeight + bodyHeight,
		frameHeight: max(bodyHeight, slotHeight),
		columns:     make([]columnLayout, 0, len(cols)),
	}
	for i, c := range cols {
		cl := columnLayout{
			ID:    c.ID,
			Title: c.Title,
			Left:  marginLeft + i*(columnWidth+columnGap),
			Cards: make([]string, 0, len(c.Cards)),
		}
		for _, card := range c.Cards {
			cl.Cards = append(cl.Cards, card.ID)
		}
		cl.Scroll = min(max(scroll[c.ID], 0), l.maxScroll(cl))
		l.columns = append(l.columns, cl)
	}
	return l
}

func (l layout) contentHeight(c columnLayout) int {
	return len(c.Cards) * slotHeight
}

func (l layout) maxScroll(c columnLayout) int {
	return max(0, l.contentHeight(c)-l.frameHeight)
}

func (l layout) column(id string) (columnLayout, int, bool) {
	for i, c := range l.columns {
		if c.ID == id {
			return c, i, true
		}
	}
	return columnLayout{}, -1, false
}

// locate returns the column index and card index of a card.
func (l layout) locate(cardID string) (col, index int, ok bool) {
	for i, c := range l.columns {
		for j, id := range c.Cards {
			if id == cardID {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// cardTop is the row of a card's first line at the column's current scroll.
func (l layout) cardTop(c columnLayout, index int) int {
	return headerHeight - c.Scroll + index*slotHeight
}

func (l layout) cardBox(c columnLayout, index int) geometry.BoxModel {
	top := float64(l.cardTop(c, index))
	left := float64(c.Left + cardInset)
	return box(top, left, top+slotHeight, left+columnWidth-2*cardInset)
}

func (l layout) columnBox(c columnLayout) geometry.BoxModel {
	top := float64(headerHeight - c.Scroll)
	height := float64(max(l.contentHeight(c), l.frameHeight))
	left := float64(c.Left)
	return box(top, left, top+height, left+columnWidth)
}

func (l layout) frameBox(c columnLayout) geometry.BoxModel {
	left := float64(c.Left)
	return box(headerHeight, left, float64(headerHeight+l.frameHeight), left+columnWidth)
}

func (l layout) draggable(c columnLayout, index int) dimension.DraggableDimension {
	return dimension.NewDraggable(dimension.DraggableDescriptor{
		ID:          dimension.DraggableID(c.Cards[index]),
		DroppableID: dimension.DroppableID(c.ID),
		Type:        dimension.DefaultType,
		Index:       index,
	}, l.cardBox(c, index), geometry.Origin)
}

func (l layout) droppable(c columnLayout, combine bool) dimension.DroppableDimension {
	client := l.columnBox(c)
	frame := l.frameBox(c)
	return dimension.NewDroppable(dimension.DroppableArgs{
		Descriptor:       dimension.DroppableDescriptor{ID: dimension.DroppableID(c.ID), Type: dimension.DefaultType},
		IsEnabled:        true,
		IsCombineEnabled: combine,
		Direction:        geometry.DirectionVertical,
		Client:           client,
		Page:             client,
		Closest: &dimension.Closest{
			Client: frame,
			Page:   frame,
			ScrollSize: dimension.ScrollSize{
				ScrollWidth:  client.MarginBox.Width,
				ScrollHeight: client.MarginBox.Height,
			},
			ShouldClipSubject: true,
			Scroll:            geometry.Position{Y: float64(c.Scroll)},
		},
	})
}

// snapshot measures every column and card.
func (l layout) snapshot(combine bool) dimension.Map {
	var draggables []dimension.DraggableDimension
	droppables := make([]dimension.DroppableDimension, 0, len(l.columns))
	for _, c := range l.columns {
		droppables = append(droppables, l.droppable(c, combine))
		for i := range c.Cards {
			draggables = append(draggables, l.draggable(c, i))
		}
	}
	return dimension.NewMap(draggables, droppables)
}

func (l layout) viewport() dimension.Viewport {
	return dimension.NewViewport(float64(l.width), float64(l.height), geometry.Origin, geometry.Origin)
}

// columnAt returns the column under a cell.
func (l layout) columnAt(x, y int) (int, bool) {
	if y < headerHeight || y >= headerHeight+l.frameHeight {
		return -1, false
	}
	for i, c := range l.columns {
		if x >= c.Left && x < c.Left+columnWidth {
			return i, true
		}
	}
	return -1, false
}

// cardAt returns the card drawn under a cell.
func (l layout) cardAt(x, y int) (col, index int, ok bool) {
	col, ok = l.columnAt(x, y)
	if !ok {
		return -1, -1, false
	}
	c := l.columns[col]
	if x < c.Left+cardInset || x >= c.Left+columnWidth-cardInset {
		return -1, -1, false
	}
	offset := y - l.cardTop(c, 0)
	index = offset / slotHeight
	if offset < 0 || index >= len(c.Cards) || offset%slotHeight >= cardHeight {
		return -1, -1, false
	}
	return col, index, true
}

func box(top, left, bottom, right float64) geometry.BoxModel {
	return geometry.CreateBox(
		geometry.Spacing{Top: top, Left: left, Bottom: bottom, Right: right},
		geometry.Spacing{}, geometry.Spacing{}, geometry.Spacing{},
	)
}
