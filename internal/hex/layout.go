package hex

import "math"

// Point is a position in continuous pixel space.
type Point struct {
	X float64
	Y float64
}

// P is a convenience constructor for Point.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the Euclidean length of the vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(other Point) float64 {
	return other.Sub(p).Len()
}

// Orientation holds the forward (hex to pixel) and inverse (pixel to hex)
// matrices of a hex layout, plus the angle of the first corner in
// multiples of 60 degrees.
type Orientation struct {
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
	StartAngle     float64
}

var sqrt3 = math.Sqrt(3)

// Pointy is the pointy-top orientation. Rows are horizontal.
var Pointy = Orientation{
	F0: sqrt3, F1: sqrt3 / 2, F2: 0, F3: 3.0 / 2.0,
	B0: sqrt3 / 3, B1: -1.0 / 3.0, B2: 0, B3: 2.0 / 3.0,
	StartAngle: 0.5,
}

// Flat is the flat-top orientation. Columns are vertical.
var Flat = Orientation{
	F0: 3.0 / 2.0, F1: 0, F2: sqrt3 / 2, F3: sqrt3,
	B0: 2.0 / 3.0, B1: 0, B2: -1.0 / 3.0, B3: sqrt3 / 3,
	StartAngle: 0,
}

// Layout maps hexes to pixel space. It is an immutable value.
type Layout struct {
	Orientation Orientation
	Size        Point // Corner radius per axis
	Origin      Point // Pixel position of hex (0,0)
}

// NewLayout creates a layout with the given orientation, size and origin.
func NewLayout(o Orientation, size, origin Point) Layout {
	return Layout{Orientation: o, Size: size, Origin: origin}
}

// CircleLayout returns a pointy-top layout in which circles of the given
// radius centered on each hex touch their six neighbors.
// The hex at (0,0) is centered at origin.
func CircleLayout(radius float64, origin Point) Layout {
	size := 2 * radius / sqrt3
	return NewLayout(Pointy, P(size, size), origin)
}

// HexToPixel returns the pixel center of h.
func (l Layout) HexToPixel(h Hex) Point {
	m := l.Orientation
	q, r := float64(h.Q), float64(h.R)
	x := (m.F0*q + m.F1*r) * l.Size.X
	y := (m.F2*q + m.F3*r) * l.Size.Y
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// PixelToHex returns the fractional hex containing p.
// Use FracHex.Round to get the nearest cell.
func (l Layout) PixelToHex(p Point) FracHex {
	m := l.Orientation
	pt := Point{
		X: (p.X - l.Origin.X) / l.Size.X,
		Y: (p.Y - l.Origin.Y) / l.Size.Y,
	}
	q := m.B0*pt.X + m.B1*pt.Y
	r := m.B2*pt.X + m.B3*pt.Y
	return FracHex{Q: q, R: r, S: -q - r}
}

// ClosestHex returns the hex whose cell contains p.
func (l Layout) ClosestHex(p Point) Hex {
	return l.PixelToHex(p).Round()
}

// CornerOffset returns the offset of corner i from a hex center.
func (l Layout) CornerOffset(i int) Point {
	angle := 2 * math.Pi * (l.Orientation.StartAngle + float64(i)) / 6
	return Point{X: l.Size.X * math.Cos(angle), Y: l.Size.Y * math.Sin(angle)}
}

// Corners returns the six polygon vertices of h.
func (l Layout) Corners(h Hex) [6]Point {
	var corners [6]Point
	center := l.HexToPixel(h)
	for i := range corners {
		corners[i] = center.Add(l.CornerOffset(i))
	}
	return corners
}

// RowHeight returns the vertical distance between a hex and its r+1 neighbor.
// For pointy layouts this is the spacing between rows.
func (l Layout) RowHeight() float64 {
	return l.Orientation.F3 * l.Size.Y
}

// FracHex is a continuous hex position, produced while converting pixels.
type FracHex struct {
	Q float64
	R float64
	S float64
}

// Round returns the nearest integer hex.
// Each component is rounded independently and the one with the largest
// rounding error is recomputed from the other two, checked in q, r, s order.
func (f FracHex) Round() Hex {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)

	qDiff := math.Abs(q - f.Q)
	rDiff := math.Abs(r - f.R)
	sDiff := math.Abs(s - f.S)

	switch {
	case qDiff > rDiff && qDiff > sDiff:
		q = -r - s
	case rDiff > sDiff:
		r = -q - s
	default:
		s = -q - r
	}
	return FromCube(int(q), int(r), int(s))
}

// Lerp interpolates between two fractional hexes.
func (f FracHex) Lerp(other FracHex, t float64) FracHex {
	return FracHex{
		Q: f.Q + (other.Q-f.Q)*t,
		R: f.R + (other.R-f.R)*t,
		S: f.S + (other.S-f.S)*t,
	}
}

// Frac returns h as a fractional hex.
func (h Hex) Frac() FracHex {
	return FracHex{Q: float64(h.Q), R: float64(h.R), S: float64(h.S())}
}

// Linedraw returns the hexes on the straight line from a to b, inclusive.
func Linedraw(a, b Hex) []Hex {
	n := Distance(a, b)
	// Nudge off exact edges so ties resolve consistently.
	start := FracHex{Q: float64(a.Q) + 1e-6, R: float64(a.R) + 1e-6, S: float64(a.S()) - 2e-6}
	end := FracHex{Q: float64(b.Q) + 1e-6, R: float64(b.R) + 1e-6, S: float64(b.S()) - 2e-6}
	result := make([]Hex, 0, n+1)
	step := 1.0 / float64(max(n, 1))
	for i := 0; i <= n; i++ {
		result = append(result, start.Lerp(end, step*float64(i)).Round())
	}
	return result
}
