package board

import (
	"testing"

	"github.com/vovakirdan/hexpop/internal/hex"
)

func TestNewPanicsOnBadRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero radius")
		}
	}()
	cfg := DefaultConfig()
	cfg.Radius = 0
	New(cfg, nil)
}

func TestPlaceRespectsShapeAndOccupancy(t *testing.T) {
	b := newTestBoard(t)

	testCases := []struct {
		name string
		o    hex.OffsetCoord
		want bool
	}{
		{"inside", hex.O(3, 2), true},
		{"occupied", hex.O(3, 2), false},
		{"shaved odd column", hex.O(7, 1), false},
		{"right of board", hex.O(8, 0), false},
		{"above ceiling", hex.O(2, -1), false},
	}

	for _, tc := range testCases {
		if got := b.Place(tc.o.ToHex(), Colored(0)); got != tc.want {
			t.Errorf("%s: Place(%v) = %v, want %v", tc.name, tc.o, got, tc.want)
		}
	}
	if b.OccupiedCount() != 1 {
		t.Errorf("expected 1 ball, got %d", b.OccupiedCount())
	}
}

func TestQueries(t *testing.T) {
	b := newTestBoard(t)
	r := b.Radius()

	origin := b.HexToPixelCenter(hex.H(0, 0))
	if origin != hex.P(r, r) {
		t.Errorf("hex (0,0) should touch the wall and ceiling, got %+v", origin)
	}
	if got := b.ClosestHexTo(hex.P(r+3, r-2)); got != hex.H(0, 0) {
		t.Errorf("ClosestHexTo = %v", got)
	}

	if got := b.BottomEdgeY(); got != 2*r {
		t.Errorf("empty board bottom edge = %f, want %f", got, 2*r)
	}

	place(t, b, Colored(1), hex.O(0, 0), hex.O(0, 1), hex.O(4, 2))
	wantY := b.layout.HexToPixel(hex.O(4, 2).ToHex()).Y + r
	if got := b.BottomEdgeY(); got != wantY {
		t.Errorf("bottom edge = %f, want %f", got, wantY)
	}
	if got := b.DistanceFromDeath(); got != b.Config().DeathLineY-wantY {
		t.Errorf("distance from death = %f", got)
	}

	if ball, ok := b.BallAt(hex.O(0, 1).ToHex()); !ok || ball != Colored(1) {
		t.Errorf("BallAt = %v, %v", ball, ok)
	}
	if _, ok := b.BallAt(hex.O(5, 5).ToHex()); ok {
		t.Error("empty cell should report no ball")
	}
}

func TestColors(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(3), hex.O(0, 0))
	place(t, b, Colored(1), hex.O(1, 0), hex.O(2, 0))
	place(t, b, Stone, hex.O(3, 0))

	got := b.Colors()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Colors() = %v, want [1 3]", got)
	}
}

func TestAddCeilingRow(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(0), hex.O(2, 0))
	b.Drain()

	var cols []int
	b.AddCeilingRow(func(col int) (Ball, bool) {
		cols = append(cols, col)
		return Colored(col % 2), col != 3
	})

	if b.TopRow() != -1 {
		t.Fatalf("TopRow = %d, want -1", b.TopRow())
	}
	// Row -1 is odd, so its last column is shaved.
	if len(cols) != 7 || cols[0] != 0 || cols[6] != 6 {
		t.Errorf("fill called for columns %v", cols)
	}
	if b.OccupiedCount() != 7 {
		t.Errorf("expected 7 balls, got %d", b.OccupiedCount())
	}
	if b.IsOccupied(hex.O(3, -1).ToHex()) {
		t.Error("column skipped by fill should stay empty")
	}
	if !b.IsValidHex(hex.O(3, -1).ToHex()) || b.IsValidHex(hex.O(3, -2).ToHex()) {
		t.Error("ceiling did not move up by one row")
	}
	if got := b.HexToPixelCenter(hex.O(2, 0).ToHex()); got.Y != b.Radius() {
		t.Errorf("existing balls should not move, y = %f", got.Y)
	}

	events := b.Drain()
	if len(events) != 1 || events[0].Kind != EventBoardChanged {
		t.Errorf("expected one BoardChanged event, got %v", events)
	}
}

func TestArmPowerUp(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(2), hex.O(1, 0))
	place(t, b, Bomb, hex.O(2, 0))

	if !b.ArmPowerUp(hex.O(1, 0).ToHex()) {
		t.Error("power-up on a colored ball should arm")
	}
	if b.ArmPowerUp(hex.O(2, 0).ToHex()) {
		t.Error("power-up on a bomb should be refused")
	}
	if b.ArmPowerUp(hex.O(5, 0).ToHex()) {
		t.Error("power-up on an empty cell should be refused")
	}
	if got := b.PowerUps(); len(got) != 1 || got[0] != hex.O(1, 0).ToHex() {
		t.Errorf("PowerUps() = %v", got)
	}
}

func TestDrainCoalescesBoardChanged(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, Colored(0), hex.O(0, 0), hex.O(1, 0), hex.O(2, 0))

	events := b.Drain()
	if len(events) != 1 || events[0].Kind != EventBoardChanged {
		t.Errorf("expected one coalesced BoardChanged, got %v", events)
	}
	if len(b.Drain()) != 0 {
		t.Error("second drain should be empty")
	}
}

func TestBallString(t *testing.T) {
	testCases := []struct {
		ball Ball
		want string
	}{
		{Colored(0), "a"},
		{Colored(25), "z"},
		{Rainbow, "R"},
		{Bomb, "B"},
		{Stone, "S"},
	}
	for _, tc := range testCases {
		if got := tc.ball.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
