package hex

import "fmt"

// OffsetCoord addresses a hex by column and row on a staggered
// rectangular grid. Odd rows are shoved half a hex to the right.
type OffsetCoord struct {
	Col int
	Row int
}

// O is a convenience constructor for OffsetCoord.
func O(col, row int) OffsetCoord {
	return OffsetCoord{Col: col, Row: row}
}

// oddRowShift selects the shove-odd-rows variant of the offset scheme.
const oddRowShift = -1

// String returns a string representation of the offset coordinate.
func (o OffsetCoord) String() string {
	return fmt.Sprintf("[%d,%d]", o.Col, o.Row)
}

// IsOddRow reports whether the coordinate lies on a staggered row.
// Works for negative rows as well.
func (o OffsetCoord) IsOddRow() bool {
	return o.Row&1 == 1
}

// ToHex converts the offset coordinate to axial coordinates.
func (o OffsetCoord) ToHex() Hex {
	q := o.Col - (o.Row+oddRowShift*(o.Row&1))/2
	return Hex{Q: q, R: o.Row}
}

// Offset converts the hex to offset coordinates.
// Exact inverse of OffsetCoord.ToHex.
func (h Hex) Offset() OffsetCoord {
	col := h.Q + (h.R+oddRowShift*(h.R&1))/2
	return OffsetCoord{Col: col, Row: h.R}
}

// OffsetRect is an inclusive rectangle in offset coordinates.
type OffsetRect struct {
	MinCol int
	MinRow int
	MaxCol int
	MaxRow int
}

// RectAt returns the degenerate rectangle covering a single coordinate.
func RectAt(o OffsetCoord) OffsetRect {
	return OffsetRect{MinCol: o.Col, MinRow: o.Row, MaxCol: o.Col, MaxRow: o.Row}
}

// Extend returns the rectangle widened to include o.
func (r OffsetRect) Extend(o OffsetCoord) OffsetRect {
	return OffsetRect{
		MinCol: min(r.MinCol, o.Col),
		MinRow: min(r.MinRow, o.Row),
		MaxCol: max(r.MaxCol, o.Col),
		MaxRow: max(r.MaxRow, o.Row),
	}
}

// Contains returns true if o lies inside the rectangle.
func (r OffsetRect) Contains(o OffsetCoord) bool {
	return o.Col >= r.MinCol && o.Col <= r.MaxCol && o.Row >= r.MinRow && o.Row <= r.MaxRow
}

// Cols returns the number of columns covered.
func (r OffsetRect) Cols() int {
	return r.MaxCol - r.MinCol + 1
}

// Rows returns the number of rows covered.
func (r OffsetRect) Rows() int {
	return r.MaxRow - r.MinRow + 1
}
