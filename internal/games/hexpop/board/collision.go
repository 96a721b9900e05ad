package board

import (
	"math"

	"github.com/vovakirdan/hexpop/internal/hex"
)

// grazeFactor shrinks the projectile circle so near misses pass by.
const grazeFactor = 0.8

// Collision describes where a flying ball comes to rest.
type Collision struct {
	Landing hex.Hex // Empty legal cell the ball settles into
	Contact hex.Hex // Occupied or ceiling cell it touched
}

// DetectCollision checks a projectile centered at p against the field.
// It never mutates the board, so trajectory predictors may call it freely.
// ok is false while the projectile is still in free flight.
func (b *Board) DetectCollision(p hex.Point) (Collision, bool) {
	h := b.ClosestHexTo(p)

	if b.solid(h) {
		// Overshot into a filled cell or past the ceiling.
		landing, ok := b.reroute(h, p)
		if !ok {
			return Collision{}, false
		}
		return Collision{Landing: landing, Contact: h}, true
	}

	for _, n := range h.Neighbors() {
		if !b.solid(n) || !b.overlaps(p, n) {
			continue
		}
		if b.IsValidHex(h) {
			return Collision{Landing: h, Contact: n}, true
		}
		landing, ok := b.reroute(h, p)
		if !ok {
			return Collision{}, false
		}
		return Collision{Landing: landing, Contact: n}, true
	}
	return Collision{}, false
}

// solid reports whether a projectile cannot pass through h.
func (b *Board) solid(h hex.Hex) bool {
	return h.R < b.topRow || b.balls.Has(h)
}

// overlaps tests the reduced projectile circle at p against the full
// circle of the cell h.
func (b *Board) overlaps(p hex.Point, h hex.Hex) bool {
	r := b.cfg.Radius
	return p.DistanceTo(b.HexToPixelCenter(h)) < r*grazeFactor+r
}

// reroute picks a free neighbor of h for a projectile at p.
// The first neighbor in direction order whose circle overlaps the projectile
// wins; otherwise the nearest free one.
func (b *Board) reroute(h hex.Hex, p hex.Point) (hex.Hex, bool) {
	var (
		nearest hex.Hex
		best    = math.Inf(1)
		found   bool
	)
	for _, n := range h.Neighbors() {
		if !b.IsValidHex(n) || b.balls.Has(n) {
			continue
		}
		if b.overlaps(p, n) {
			return n, true
		}
		if d := p.DistanceTo(b.HexToPixelCenter(n)); d < best {
			nearest, best, found = n, d, true
		}
	}
	return nearest, found
}
