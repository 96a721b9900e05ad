package board

import (
	"testing"

	"github.com/vovakirdan/hexpop/internal/hex"
)

func TestCollisionFreeFlight(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(0), hex.O(3, 0))

	p := b.HexToPixelCenter(hex.O(3, 6).ToHex())
	if _, ok := b.DetectCollision(p); ok {
		t.Error("projectile far below the field should not collide")
	}
	if _, ok := b.TryResolveLanding(p, Colored(1)); ok {
		t.Error("TryResolveLanding should report no collision")
	}
	if b.OccupiedCount() != 1 {
		t.Error("a miss must not mutate the board")
	}
}

func TestCollisionLandsInEmptyCeilingCell(t *testing.T) {
	b := newTestBoard(t)
	target := hex.O(4, 0)

	c, ok := b.DetectCollision(rising(b, target))
	if !ok {
		t.Fatal("expected a collision with the ceiling")
	}
	if hex.Distance(c.Landing, target.ToHex()) != 0 {
		t.Errorf("landed at %v, want %v", c.Landing.Offset(), target)
	}
	if c.Contact.R >= b.TopRow() {
		t.Errorf("contact %v should be above the ceiling", c.Contact)
	}
}

func TestCollisionAgainstBallBelowCeiling(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(0), hex.O(4, 0))

	// Odd row cell down and to the right of the ball, approached from below.
	target := hex.O(4, 1)
	p := b.HexToPixelCenter(target.ToHex())
	p.Y -= 0.3 * b.Radius()
	p.X -= 0.3 * b.Radius()

	c, ok := b.DetectCollision(p)
	if !ok {
		t.Fatal("expected a collision")
	}
	if c.Landing != target.ToHex() || c.Contact != hex.O(4, 0).ToHex() {
		t.Errorf("got landing %v contact %v", c.Landing.Offset(), c.Contact.Offset())
	}
}

func TestCollisionOvershootReroutes(t *testing.T) {
	b := newTestBoard(t)
	occupied := hex.O(3, 0)
	place(t, b, Colored(0), occupied, hex.O(4, 0))

	r := b.Radius()
	center := b.HexToPixelCenter(occupied.ToHex())
	p := hex.P(center.X+0.5*r, center.Y+0.4*r)

	if got := b.ClosestHexTo(p); got != occupied.ToHex() {
		t.Fatalf("test point should sit inside %v, got %v", occupied, got.Offset())
	}

	c, ok := b.DetectCollision(p)
	if !ok {
		t.Fatal("expected a collision")
	}
	// East is taken and the upper neighbors are above the ceiling, so the
	// first overlapping free neighbor is south-east.
	want := hex.O(3, 1).ToHex()
	if c.Landing != want {
		t.Errorf("landed at %v, want %v", c.Landing.Offset(), want.Offset())
	}
	if c.Contact != occupied.ToHex() {
		t.Errorf("contact %v, want %v", c.Contact.Offset(), occupied)
	}
	if b.IsOccupied(c.Landing) || !b.IsValidHex(c.Landing) {
		t.Error("landing must be a free legal cell")
	}
}

func TestCollisionPastCeilingReroutes(t *testing.T) {
	b := newTestBoard(t)
	p := b.HexToPixelCenter(hex.O(2, -1).ToHex())

	c, ok := b.DetectCollision(p)
	if !ok {
		t.Fatal("expected a collision above the ceiling")
	}
	if c.Landing.R != b.TopRow() || !b.IsValidHex(c.Landing) {
		t.Errorf("landing %v should be on the ceiling row", c.Landing.Offset())
	}
}

func TestCollisionIsReadOnly(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(0), hex.O(3, 0))
	b.Drain()

	for x := 0.0; x < 16*b.Radius(); x += 3 {
		for y := -b.Radius(); y < 8*b.Radius(); y += 3 {
			p := hex.P(x, y)
			first, ok1 := b.DetectCollision(p)
			second, ok2 := b.DetectCollision(p)
			if first != second || ok1 != ok2 {
				t.Fatalf("DetectCollision not deterministic at %+v", p)
			}
		}
	}

	if b.OccupiedCount() != 1 || len(b.Drain()) != 0 {
		t.Error("DetectCollision must not mutate the board")
	}
}

func TestGrazeIsForgiving(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(0), hex.O(3, 2))
	r := b.Radius()

	// Full radii would touch at 2r; the reduced circle needs 1.8r.
	center := b.HexToPixelCenter(hex.O(3, 2).ToHex())
	graze := hex.P(center.X+1.9*r, center.Y)
	if _, ok := b.DetectCollision(graze); ok {
		t.Error("a graze at 1.9r should pass by")
	}
	hit := hex.P(center.X+1.7*r, center.Y)
	if _, ok := b.DetectCollision(hit); !ok {
		t.Error("a hit at 1.7r should collide")
	}
}
