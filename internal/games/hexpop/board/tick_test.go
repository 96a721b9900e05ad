package board

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/hexpop/internal/hex"
)

func TestChainedDetonation(t *testing.T) {
	b := newTestBoard(t)
	// Fill rows 0..6 completely so every disk cell is occupied.
	for row := 0; row <= 6; row++ {
		first, last, _ := b.columnsInRow(row)
		for col := first; col <= last; col++ {
			place(t, b, Stone, hex.O(col, row))
		}
	}

	first := hex.O(3, 2).ToHex()
	second := hex.O(4, 3).ToHex()
	if hex.Distance(first, second) != 2 {
		t.Fatalf("bombs should be 2 apart, got %d", hex.Distance(first, second))
	}
	for _, h := range []hex.Hex{first, second} {
		b.balls.Set(h, Bomb)
	}
	b.fuses.Set(first, b.Now())

	res := b.AdvanceTick(b.Config().FuseDelay)
	if len(res.Detonations) != 1 {
		t.Fatalf("expected one chain, got %d", len(res.Detonations))
	}
	det := res.Detonations[0]
	if det.Origin != first {
		t.Errorf("origin %v, want %v", det.Origin, first)
	}

	want := make(map[hex.Hex]bool)
	for _, center := range []hex.Hex{first, second} {
		for _, h := range center.Range(2) {
			if b.IsValidHex(h) {
				want[h] = true
			}
		}
	}
	got := removalSet(det.Matched)
	if len(got) != len(want) {
		t.Errorf("blast removed %d cells, want %d", len(got), len(want))
	}
	for h := range want {
		if !got[h] {
			t.Errorf("blast missed %v", h.Offset())
		}
	}
	if b.IsOccupied(second) {
		t.Error("second bomb should have detonated")
	}
	if _, ok := b.FuseAt(second); ok {
		t.Error("second bomb fuse should be gone")
	}
}

func TestFuseDelay(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Stone, hex.O(2, 0), hex.O(3, 0))

	land, ok := b.TryResolveLanding(rising(b, hex.O(4, 0)), Bomb)
	if !ok {
		t.Fatal("expected landing")
	}
	if armedAt, ok := b.FuseAt(land.Hex); !ok || armedAt != 0 {
		t.Fatalf("landed bomb should arm at once, got %v %v", armedAt, ok)
	}

	delay := b.Config().FuseDelay
	if res := b.AdvanceTick(delay - time.Millisecond); len(res.Detonations) != 0 {
		t.Fatal("bomb detonated before its fuse matured")
	}
	res := b.AdvanceTick(time.Millisecond)
	if len(res.Detonations) != 1 {
		t.Fatal("bomb should detonate when the fuse matures")
	}
	if got := res.Detonations[0].Count(); got != 3 {
		t.Errorf("expected 3 balls removed, got %d", got)
	}
	if b.OccupiedCount() != 0 {
		t.Errorf("board should be empty, %d left", b.OccupiedCount())
	}
	if b.Now() != delay {
		t.Errorf("clock = %v, want %v", b.Now(), delay)
	}
}

func TestPowerUpExpires(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(0), hex.O(1, 0))
	h := hex.O(1, 0).ToHex()
	b.ArmPowerUp(h)

	duration := b.Config().PowerUpDuration
	if res := b.AdvanceTick(duration / 2); len(res.Expired) != 0 {
		t.Fatal("power-up expired too early")
	}
	res := b.AdvanceTick(duration / 2)
	if len(res.Expired) != 1 || res.Expired[0] != h {
		t.Fatalf("expected %v to expire, got %v", h, res.Expired)
	}
	if !b.IsOccupied(h) {
		t.Error("expiry must keep the ball")
	}
}

func TestPacingApproachesTarget(t *testing.T) {
	b := newTestBoard(t)
	cfg := b.Config()
	dt := 100 * time.Millisecond

	currentY := b.BottomEdgeY()
	catchUp := math.Pow((cfg.PreferredY-currentY)/10, 1.6)
	pushDown := math.Min(b.DistanceFromDeath()/8, cfg.PushDownCap)
	target := cfg.Baseline + catchUp + pushDown

	b.AdvanceTick(dt)
	factor := cfg.ApproachRate * dt.Seconds()
	if want := target * factor; math.Abs(b.Velocity()-want) > 1e-9 {
		t.Errorf("velocity = %f, want %f", b.Velocity(), want)
	}
	if want := b.Velocity() * dt.Seconds(); math.Abs(b.Position()-want) > 1e-9 {
		t.Errorf("position = %f, want %f", b.Position(), want)
	}
}

func TestPacingRecoversFromPushback(t *testing.T) {
	b := newTestBoard(t)
	b.velocity = Pushback(8)

	prev := b.Velocity()
	for i := 0; i < 20; i++ {
		b.AdvanceTick(50 * time.Millisecond)
		if b.Velocity() <= prev {
			t.Fatalf("tick %d: velocity %f did not rise from %f", i, b.Velocity(), prev)
		}
		prev = b.Velocity()
	}
}

func TestPacingNoCatchUpBelowPreferred(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreferredY = 0
	cfg.ApproachRate = 1000 // snap to target
	b := New(cfg, nil)

	b.AdvanceTick(10 * time.Millisecond)
	pushDown := math.Min((cfg.DeathLineY-2*cfg.Radius)/8, cfg.PushDownCap)
	if want := cfg.Baseline + pushDown; math.Abs(b.Velocity()-want) > 1e-9 {
		t.Errorf("velocity = %f, want %f", b.Velocity(), want)
	}
}

func TestSpeedScalesBaseline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreferredY = 0
	cfg.PushDownCap = 0
	cfg.ApproachRate = 1000
	b := New(cfg, nil)
	b.SetSpeed(3)

	b.AdvanceTick(10 * time.Millisecond)
	if want := 3 * cfg.Baseline; math.Abs(b.Velocity()-want) > 1e-9 {
		t.Errorf("velocity = %f, want %f", b.Velocity(), want)
	}
}

func TestDeathLineFails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DeathLineY = 100
	b := New(cfg, hex.RectangularShape(hex.At(0), hex.At(0), hex.At(7), hex.Open, true))
	place(t, b, Colored(0), hex.O(0, 0))

	if res := b.AdvanceTick(time.Millisecond); res.Failed {
		t.Fatal("board with a short column should not fail")
	}

	for row := 1; row <= 4; row++ {
		place(t, b, Colored(0), hex.O(0, row))
	}
	if b.DistanceFromDeath() > 0 {
		t.Fatalf("expected bottom edge past the death line, distance %f", b.DistanceFromDeath())
	}
	if res := b.AdvanceTick(time.Millisecond); !res.Failed {
		t.Error("expected failure once the bottom edge reaches the death line")
	}
}
