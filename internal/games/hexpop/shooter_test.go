package hexpop

import (
	"math"
	"testing"

	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
	"github.com/vovakirdan/hexpop/internal/hex"
)

func TestShooterDirection(t *testing.T) {
	s := Shooter{MaxAngle: math.Pi / 3}

	d := s.Direction()
	if math.Abs(d.X) > 1e-9 || math.Abs(d.Y+1) > 1e-9 {
		t.Errorf("straight up should be (0,-1), got %+v", d)
	}

	s.Rotate(math.Pi)
	if s.Angle != math.Pi/3 {
		t.Errorf("rotation not clamped: %f", s.Angle)
	}
	if d := s.Direction(); d.X <= 0 || d.Y >= 0 {
		t.Errorf("positive angle should aim up and right, got %+v", d)
	}
}

func TestShooterLaunch(t *testing.T) {
	s := Shooter{Origin: hex.P(100, 400), Loaded: board.Colored(1), Next: board.Colored(2)}

	p := s.Launch(600, board.Colored(3))
	if p.Ball != board.Colored(1) || p.Pos != s.Origin {
		t.Errorf("unexpected projectile %+v", p)
	}
	if math.Abs(p.Vel.Len()-600) > 1e-9 {
		t.Errorf("projectile speed %f, want 600", p.Vel.Len())
	}
	if s.Loaded != board.Colored(2) || s.Next != board.Colored(3) {
		t.Errorf("chamber not advanced: %v %v", s.Loaded, s.Next)
	}
}

func TestProjectileBouncesOffWalls(t *testing.T) {
	testCases := []struct {
		name  string
		start hex.Point
		vel   hex.Point
		wantX float64
	}{
		{"left wall", hex.P(20, 300), hex.P(-600, -100), 18},
		{"right wall", hex.P(236, 300), hex.P(600, -100), 238},
		{"free", hex.P(100, 300), hex.P(600, -100), 106},
	}

	for _, tc := range testCases {
		p := Projectile{Pos: tc.start, Vel: tc.vel}
		p.advance(0.01, 256, 16)

		if math.Abs(p.Pos.X-tc.wantX) > 1e-9 {
			t.Errorf("%s: x %f, want %f", tc.name, p.Pos.X, tc.wantX)
		}
		bounced := tc.name != "free"
		if (p.Vel.X*tc.vel.X < 0) != bounced {
			t.Errorf("%s: bounce=%v, velocity %+v", tc.name, bounced, p.Vel)
		}
		if math.Abs(p.Pos.Y-299) > 1e-9 {
			t.Errorf("%s: y %f, want 299", tc.name, p.Pos.Y)
		}
	}
}

func TestFeederRespectsPalette(t *testing.T) {
	f := NewFeeder(core.NewRNG(5), config.HexPopEndless{Colors: 3})

	for col := range 200 {
		ball, ok := f.Ball(col)
		if !ok {
			t.Fatal("feeder should fill every column")
		}
		if !ball.IsColor() || ball.Color >= 3 {
			t.Fatalf("unexpected fed ball %v", ball)
		}
	}

	f.SetColors(100)
	if f.Colors() != board.MaxColors {
		t.Errorf("palette should clamp to %d, got %d", board.MaxColors, f.Colors())
	}
}

func TestFeederSpecials(t *testing.T) {
	f := NewFeeder(core.NewRNG(5), config.HexPopEndless{Colors: 3, BombChance: 100})
	if ball, _ := f.Ball(0); ball != board.Bomb {
		t.Errorf("expected bomb, got %v", ball)
	}

	f = NewFeeder(core.NewRNG(5), config.HexPopEndless{Colors: 3, StoneChance: 100})
	if ball, _ := f.Ball(0); ball != board.Stone {
		t.Errorf("expected stone, got %v", ball)
	}
}

func TestEndlessBoardStartRows(t *testing.T) {
	endless := config.HexPopEndless{Columns: 8, StartRows: 3, Colors: 4}
	b := newEndlessBoard(board.DefaultConfig(), endless, NewFeeder(core.NewRNG(1), endless))

	// 8 + 7 + 8 cells with odd rows shaved
	if got := b.OccupiedCount(); got != 23 {
		t.Errorf("expected 23 balls, got %d", got)
	}
	if b.IsValidHex(hex.O(7, 1).ToHex()) {
		t.Error("odd rows should be shaved")
	}
}
