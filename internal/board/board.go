// Package board holds the columns and cards that are reordered by dragging.
package board

import (
	"errors"
	"fmt"
	"slices"
)

// Card is a single item on the board.
type Card struct {
	ID    string
	Title string
	// Merged holds the titles of cards that were combined into this one.
	Merged []string
}

// Column is an ordered list of cards.
type Column struct {
	ID    string
	Title string
	Cards []Card
}

// Board holds the columns in display order.
type Board struct {
	columns []Column
	nextID  int
}

var ErrNotFound = errors.New("not found")

// New creates an empty board.
func New() *Board {
	return &Board{columns: make([]Column, 0)}
}

// FromColumns builds a board from stored columns. Card ids must be unique.
func FromColumns(columns []Column) *Board {
	b := &Board{columns: make([]Column, 0, len(columns))}
	for _, c := range columns {
		c.Cards = slices.Clone(c.Cards)
		b.columns = append(b.columns, c)
		for _, card := range c.Cards {
			b.observeID(card.ID)
		}
		b.observeID(c.ID)
	}
	return b
}

func (b *Board) observeID(id string) {
	var n int
	if _, err := fmt.Sscanf(id, "c%d", &n); err == nil && n >= b.nextID {
		b.nextID = n + 1
	}
	if _, err := fmt.Sscanf(id, "col%d", &n); err == nil && n >= b.nextID {
		b.nextID = n + 1
	}
}

func (b *Board) newID(prefix string) string {
	id := fmt.Sprintf("%s%d", prefix, b.nextID)
	b.nextID++
	return id
}

// AddColumn appends an empty column and returns its id.
func (b *Board) AddColumn(title string) string {
	id := b.newID("col")
	b.columns = append(b.columns, Column{ID: id, Title: title, Cards: make([]Card, 0)})
	return id
}

// AddCard inserts a card into a column at index, clamped to the column
// bounds, and returns the new card.
func (b *Board) AddCard(columnID, title string, index int) (Card, error) {
	col := b.column(columnID)
	if col == nil {
		return Card{}, fmt.Errorf("column %s: %w", columnID, ErrNotFound)
	}
	card := Card{ID: b.newID("c"), Title: title}
	index = min(max(index, 0), len(col.Cards))
	col.Cards = slices.Insert(col.Cards, index, card)
	return card, nil
}

// RemoveCard deletes a card. Returns false if the card does not exist.
func (b *Board) RemoveCard(cardID string) bool {
	col, i := b.find(cardID)
	if col == nil {
		return false
	}
	col.Cards = slices.Delete(col.Cards, i, i+1)
	return true
}

// Columns returns a copy of all columns.
func (b *Board) Columns() []Column {
	result := make([]Column, len(b.columns))
	for i, c := range b.columns {
		c.Cards = slices.Clone(c.Cards)
		result[i] = c
	}
	return result
}

// Column returns a copy of a column.
func (b *Board) Column(id string) (Column, bool) {
	col := b.column(id)
	if col == nil {
		return Column{}, false
	}
	c := *col
	c.Cards = slices.Clone(c.Cards)
	return c, true
}

// Len returns the number of columns.
func (b *Board) Len() int {
	return len(b.columns)
}

// Locate returns the column and index of a card.
func (b *Board) Locate(cardID string) (columnID string, index int, ok bool) {
	col, i := b.find(cardID)
	if col == nil {
		return "", -1, false
	}
	return col.ID, i, true
}

// Move moves a card to index in a column. In another column the card is
// inserted before the card currently at index; in its own column it ends up
// at index.
func (b *Board) Move(cardID, toColumn string, toIndex int) error {
	from, i := b.find(cardID)
	if from == nil {
		return fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}
	to := b.column(toColumn)
	if to == nil {
		return fmt.Errorf("column %s: %w", toColumn, ErrNotFound)
	}

	limit := len(to.Cards)
	if from == to {
		limit--
	}
	if toIndex < 0 || toIndex > limit {
		return fmt.Errorf("index %d out of range [0, %d]", toIndex, limit)
	}

	card := from.Cards[i]
	from.Cards = slices.Delete(from.Cards, i, i+1)
	to.Cards = slices.Insert(to.Cards, toIndex, card)
	return nil
}

// Combine merges a card into another one. The source card disappears and
// its title, with anything merged into it, is kept on the target.
func (b *Board) Combine(cardID, targetID string) error {
	if cardID == targetID {
		return fmt.Errorf("cannot combine card %s with itself", cardID)
	}
	from, i := b.find(cardID)
	if from == nil {
		return fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}
	to, j := b.find(targetID)
	if to == nil {
		return fmt.Errorf("card %s: %w", targetID, ErrNotFound)
	}

	card := from.Cards[i]
	target := &to.Cards[j]
	target.Merged = append(target.Merged, card.Title)
	target.Merged = append(target.Merged, card.Merged...)
	from.Cards = slices.Delete(from.Cards, i, i+1)
	return nil
}

func (b *Board) column(id string) *Column {
	for i := range b.columns {
		if b.columns[i].ID == id {
			return &b.columns[i]
		}
	}
	return nil
}

func (b *Board) find(cardID string) (*Column, int) {
	for i := range b.columns {
		col := &b.columns[i]
		for j, card := range col.Cards {
			if card.ID == cardID {
				return col, j
			}
		}
	}
	return nil, -1
}
