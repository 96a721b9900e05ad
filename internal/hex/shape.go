package hex

// Shape declares which hexes belong to a board.
// Maps carry a shape but never enforce it; callers consult Contains
// before reading or writing outside its domain.
type Shape interface {
	Contains(h Hex) bool
}

// Unbounded accepts every hex.
type Unbounded struct{}

// Contains always returns true.
func (Unbounded) Contains(Hex) bool {
	return true
}

// Limit is one optional edge of a Rectangle.
type Limit struct {
	Value   int
	Bounded bool
}

// Open is a Limit with no bound.
var Open = Limit{}

// At returns a Limit bounded at v (inclusive).
func At(v int) Limit {
	return Limit{Value: v, Bounded: true}
}

// Rectangle accepts hexes whose offset coordinates fall inside inclusive
// column and row limits. Any edge may be open.
// With ShaveOddRows set and a bounded Right edge, the last column of every
// odd row is excluded, so staggered rows do not stick out half a hex.
type Rectangle struct {
	Left         Limit
	Top          Limit
	Right        Limit
	Bottom       Limit
	ShaveOddRows bool
}

// RectangularShape builds a Rectangle shape.
func RectangularShape(left, top, right, bottom Limit, shaveOddRows bool) Rectangle {
	return Rectangle{
		Left:         left,
		Top:          top,
		Right:        right,
		Bottom:       bottom,
		ShaveOddRows: shaveOddRows,
	}
}

// Contains returns true if h lies within the rectangle.
func (r Rectangle) Contains(h Hex) bool {
	o := h.Offset()
	if r.Left.Bounded && o.Col < r.Left.Value {
		return false
	}
	if r.Top.Bounded && o.Row < r.Top.Value {
		return false
	}
	if r.Bottom.Bounded && o.Row > r.Bottom.Value {
		return false
	}
	if r.Right.Bounded {
		maxCol := r.Right.Value
		if r.ShaveOddRows && o.IsOddRow() {
			maxCol--
		}
		if o.Col > maxCol {
			return false
		}
	}
	return true
}

// ColumnsInRow returns the first and last legal column of a row.
// ok is false if the rectangle has an open side edge or the row is excluded.
func (r Rectangle) ColumnsInRow(row int) (first, last int, ok bool) {
	if !r.Left.Bounded || !r.Right.Bounded {
		return 0, 0, false
	}
	if r.Top.Bounded && row < r.Top.Value {
		return 0, 0, false
	}
	if r.Bottom.Bounded && row > r.Bottom.Value {
		return 0, 0, false
	}
	last = r.Right.Value
	if r.ShaveOddRows && row&1 == 1 {
		last--
	}
	if last < r.Left.Value {
		return 0, 0, false
	}
	return r.Left.Value, last, true
}

// WithTop returns a copy of the rectangle with a new top edge.
func (r Rectangle) WithTop(top Limit) Rectangle {
	r.Top = top
	return r
}
