package board

import (
	"testing"

	"github.com/vovakirdan/hexpop/internal/hex"
)

// newTestBoard returns an 8-column staggered board with the default tuning.
func newTestBoard(t *testing.T) *Board {
	t.Helper()
	shape := hex.RectangularShape(hex.At(0), hex.At(0), hex.At(7), hex.Open, true)
	return New(DefaultConfig(), shape)
}

// place fills the given offsets with ball or fails the test.
func place(t *testing.T, b *Board, ball Ball, offsets ...hex.OffsetCoord) {
	t.Helper()
	for _, o := range offsets {
		if !b.Place(o.ToHex(), ball) {
			t.Fatalf("could not place %v at %v", ball, o)
		}
	}
}

// rising returns a projectile position slightly above the center of o,
// as if it were flying up into that cell.
func rising(b *Board, o hex.OffsetCoord) hex.Point {
	p := b.HexToPixelCenter(o.ToHex())
	return hex.P(p.X, p.Y-0.3*b.Radius())
}

func hexSet(hs []hex.Hex) map[hex.Hex]bool {
	set := make(map[hex.Hex]bool, len(hs))
	for _, h := range hs {
		set[h] = true
	}
	return set
}

func removalSet(rs []Removal) map[hex.Hex]bool {
	set := make(map[hex.Hex]bool, len(rs))
	for _, r := range rs {
		set[r.Hex] = true
	}
	return set
}
