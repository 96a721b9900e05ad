package hex

import (
	"iter"
	"sort"
)

// Map is a sparse store of values keyed by Hex.
// A hex is either present with a value or absent; absent hexes hold nothing.
// The map tracks the bounding rectangle of every hex ever inserted, in
// offset coordinates. Deleting a value never shrinks the bounds.
//
// Map is not safe for concurrent use.
type Map[T any] struct {
	cells     map[Hex]T
	bounds    OffsetRect
	hasBounds bool
	shape     Shape
}

// NewMap creates an empty map with the given shape.
// A nil shape is treated as Unbounded.
func NewMap[T any](shape Shape) *Map[T] {
	if shape == nil {
		shape = Unbounded{}
	}
	return &Map[T]{
		cells: make(map[Hex]T),
		shape: shape,
	}
}

// Shape returns the shape attached to the map.
func (m *Map[T]) Shape() Shape {
	return m.shape
}

// SetShape replaces the attached shape.
func (m *Map[T]) SetShape(shape Shape) {
	if shape == nil {
		shape = Unbounded{}
	}
	m.shape = shape
}

// Contains reports whether the attached shape accepts h.
func (m *Map[T]) Contains(h Hex) bool {
	return m.shape.Contains(h)
}

// Get returns the value at h and whether one is present.
func (m *Map[T]) Get(h Hex) (T, bool) {
	v, ok := m.cells[h]
	return v, ok
}

// Has reports whether a value is present at h.
func (m *Map[T]) Has(h Hex) bool {
	_, ok := m.cells[h]
	return ok
}

// Set stores v at h and widens the bounds to include h.
func (m *Map[T]) Set(h Hex, v T) {
	m.cells[h] = v
	o := h.Offset()
	if !m.hasBounds {
		m.bounds = RectAt(o)
		m.hasBounds = true
		return
	}
	m.bounds = m.bounds.Extend(o)
}

// Delete removes the value at h and returns it.
func (m *Map[T]) Delete(h Hex) (T, bool) {
	v, ok := m.cells[h]
	if ok {
		delete(m.cells, h)
	}
	return v, ok
}

// Len returns the number of present values.
func (m *Map[T]) Len() int {
	return len(m.cells)
}

// Bounds returns the bounding rectangle of all inserted hexes.
// ok is false until the first insertion.
func (m *Map[T]) Bounds() (OffsetRect, bool) {
	return m.bounds, m.hasBounds
}

// All iterates over present entries in unspecified order.
func (m *Map[T]) All() iter.Seq2[Hex, T] {
	return func(yield func(Hex, T) bool) {
		for h, v := range m.cells {
			if !yield(h, v) {
				return
			}
		}
	}
}

// Hexes returns the present hexes sorted by row, then column.
func (m *Map[T]) Hexes() []Hex {
	result := make([]Hex, 0, len(m.cells))
	for h := range m.cells {
		result = append(result, h)
	}
	SortHexes(result)
	return result
}

// Clear removes every value. Bounds are kept.
func (m *Map[T]) Clear() {
	clear(m.cells)
}

// Clone returns a copy of the map sharing the same shape.
func (m *Map[T]) Clone() *Map[T] {
	cells := make(map[Hex]T, len(m.cells))
	for h, v := range m.cells {
		cells[h] = v
	}
	return &Map[T]{
		cells:     cells,
		bounds:    m.bounds,
		hasBounds: m.hasBounds,
		shape:     m.shape,
	}
}

// SortHexes orders hexes by row, then offset column.
func SortHexes(hs []Hex) {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].R != hs[j].R {
			return hs[i].R < hs[j].R
		}
		return hs[i].Q < hs[j].Q
	})
}
