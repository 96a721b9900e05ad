// Package hex provides axial hexagonal coordinates, offset addressing,
// pixel layouts and a sparse hex-indexed map.
// It has no dependencies on the game packages and is fully deterministic.
package hex

import "fmt"

// Hex is a cell on a hexagonal grid in axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Hex struct {
	Q int
	R int
}

// H is a convenience constructor for Hex.
func H(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// FromCube builds a Hex from cube coordinates.
// Panics if q + r + s != 0.
func FromCube(q, r, s int) Hex {
	if q+r+s != 0 {
		panic(fmt.Sprintf("hex: cube coordinates (%d,%d,%d) do not sum to zero", q, r, s))
	}
	return Hex{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// String returns a string representation of the hex.
func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h.Q, h.R, h.S())
}

// Add returns the component-wise sum of two hexes.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Subtract returns the component-wise difference of two hexes.
func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Scale multiplies both components by k.
func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k}
}

// Length returns the distance from the origin.
func (h Hex) Length() int {
	return (abs(h.Q) + abs(h.R) + abs(h.S())) / 2
}

// Distance returns the hex distance between two hexes.
func Distance(a, b Hex) int {
	return a.Subtract(b).Length()
}

// DistanceTo returns the hex distance to another hex.
func (h Hex) DistanceTo(other Hex) int {
	return Distance(h, other)
}

// directions lists the six unit offsets in neighbor index order 0..5.
var directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Direction returns the unit offset for direction i.
// The index wraps, so Direction(6) == Direction(0) and Direction(-1) == Direction(5).
func Direction(i int) Hex {
	return directions[((i%6)+6)%6]
}

// Neighbor returns the adjacent hex in direction i.
func (h Hex) Neighbor(i int) Hex {
	return h.Add(Direction(i))
}

// Neighbors returns the six adjacent hexes in direction order.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range directions {
		result[i] = h.Add(dir)
	}
	return result
}

// Range returns every hex within distance k of h, including h itself.
// Returns nil for negative k.
func (h Hex) Range(k int) []Hex {
	if k < 0 {
		return nil
	}
	result := make([]Hex, 0, 1+3*k*(k+1))
	for q := -k; q <= k; q++ {
		lo := max(-k, -q-k)
		hi := min(k, -q+k)
		for r := lo; r <= hi; r++ {
			result = append(result, h.Add(Hex{Q: q, R: r}))
		}
	}
	return result
}

// Ring returns the hexes at exactly distance k from h.
// Starts at h + Direction(4)*k and walks the six sides in direction order.
func (h Hex) Ring(k int) []Hex {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []Hex{h}
	}
	result := make([]Hex, 0, 6*k)
	cur := h.Add(Direction(4).Scale(k))
	for side := range 6 {
		for range k {
			result = append(result, cur)
			cur = cur.Neighbor(side)
		}
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
