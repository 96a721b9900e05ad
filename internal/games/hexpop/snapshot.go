package hexpop

import (
	"math"

	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
)

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable serialization. Float values are
// stored in thousandths.
type Snapshot struct {
	Tick       int
	Mode       int
	LevelIndex int
	State      string
	Score      int
	LevelScore int
	Balls      int

	Angle  int
	Loaded int
	Next   int
	Bonus  []int

	// Shot is 5 ints: X, Y, VX, VY, Ball. Empty when nothing is in flight.
	Shot []int

	// Each cell is 5 ints: Q, R, Ball, Fuse age, Power-up age (-1 when unset)
	Cells    []int
	TopRow   int
	Position int
	Velocity int
	Clock    int64

	RNGState uint64
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// encodeBall packs a ball into one int.
func encodeBall(b board.Ball) int {
	return int(b.Kind)<<8 | b.Color
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.ticks,
		Mode:       int(g.mode),
		LevelIndex: g.levelIndex,
		State:      g.state,
		Score:      g.score,
		LevelScore: g.levelScore,
		Balls:      g.balls,
		Angle:      milli(g.shooter.Angle),
		Loaded:     encodeBall(g.shooter.Loaded),
		Next:       encodeBall(g.shooter.Next),
		RNGState:   g.rng.State(),
	}
	for _, b := range g.bonus {
		snap.Bonus = append(snap.Bonus, encodeBall(b))
	}
	if g.shot != nil {
		snap.Shot = []int{
			milli(g.shot.Pos.X), milli(g.shot.Pos.Y),
			milli(g.shot.Vel.X), milli(g.shot.Vel.Y),
			encodeBall(g.shot.Ball),
		}
	}

	b := g.board
	if b == nil {
		return snap
	}
	now := b.Now()
	for _, h := range b.Hexes() {
		ball, _ := b.BallAt(h)
		fuse, power := -1, -1
		if at, ok := b.FuseAt(h); ok {
			fuse = int((now - at).Milliseconds())
		}
		if at, ok := b.PowerUpAt(h); ok {
			power = int((now - at).Milliseconds())
		}
		snap.Cells = append(snap.Cells, h.Q, h.R, encodeBall(ball), fuse, power)
	}
	snap.TopRow = b.TopRow()
	snap.Position = milli(b.Position())
	snap.Velocity = milli(b.Velocity())
	snap.Clock = now.Milliseconds()
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Balls)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Angle)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Loaded)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Next)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TopRow)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Position)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Velocity)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Clock)      //#nosec G115 -- hash computation

	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, group := range [][]int{snap.Bonus, snap.Shot, snap.Cells} {
		h = h*31 + uint64(len(group)) //#nosec G115 -- hash computation
		for _, v := range group {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.RNGState

	return h
}
