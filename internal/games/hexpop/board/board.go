// Package board implements the hex-packed ball field of HexPop: collision
// detection for a flying ball, match and floating-island resolution, bomb
// chains, power-up timers and the descent pacing of the whole field.
//
// A Board is single-threaded. Read-only consumers such as an aim guide may
// call the query methods, but only the owner mutates it.
package board

import (
	"time"

	"github.com/vovakirdan/hexpop/internal/hex"
)

// Timestamp is a point on the board's game clock.
type Timestamp = time.Duration

// Board owns the balls on the field and their timers.
type Board struct {
	cfg    Config
	layout hex.Layout

	balls    *hex.Map[Ball]
	fuses    *hex.Map[Timestamp]
	powerUps *hex.Map[Timestamp]

	topRow    int
	positionY float64
	velocity  float64
	speed     float64 // Baseline multiplier
	now       Timestamp

	outbox  []Event
	changed bool
}

// New creates an empty board with the given shape.
// A nil shape accepts every hex. Panics if the radius is not positive.
func New(cfg Config, shape hex.Shape) *Board {
	if cfg.Radius <= 0 {
		panic("board: radius must be positive")
	}
	if shape == nil {
		shape = hex.Unbounded{}
	}

	b := &Board{
		cfg: cfg,
		// Hex (0,0) touches the left wall and the ceiling.
		layout:   hex.CircleLayout(cfg.Radius, hex.P(cfg.Radius, cfg.Radius)),
		balls:    hex.NewMap[Ball](shape),
		fuses:    hex.NewMap[Timestamp](shape),
		powerUps: hex.NewMap[Timestamp](shape),
		speed:    1,
	}
	if r, ok := shape.(hex.Rectangle); ok && r.Top.Bounded {
		b.topRow = r.Top.Value
	}
	return b
}

// Config returns the board tuning.
func (b *Board) Config() Config {
	return b.cfg
}

// Radius returns the ball radius.
func (b *Board) Radius() float64 {
	return b.cfg.Radius
}

// Shape returns the board shape.
func (b *Board) Shape() hex.Shape {
	return b.balls.Shape()
}

// Layout returns the pixel layout including the current vertical position.
func (b *Board) Layout() hex.Layout {
	l := b.layout
	l.Origin.Y += b.positionY
	return l
}

// Place puts a ball on an empty legal cell without running any resolution.
// Used to build the field from level data.
func (b *Board) Place(h hex.Hex, ball Ball) bool {
	if !b.IsValidHex(h) || b.balls.Has(h) {
		return false
	}
	b.balls.Set(h, ball)
	b.emit(Event{Kind: EventBoardChanged})
	return true
}

// IsOccupied reports whether a ball sits at h.
func (b *Board) IsOccupied(h hex.Hex) bool {
	return b.balls.Has(h)
}

// IsValidHex reports whether h is inside the shape and not above the ceiling.
func (b *Board) IsValidHex(h hex.Hex) bool {
	return h.R >= b.topRow && b.balls.Contains(h)
}

// BallAt returns the ball at h.
func (b *Board) BallAt(h hex.Hex) (Ball, bool) {
	return b.balls.Get(h)
}

// Hexes returns the occupied hexes sorted by row, then column.
func (b *Board) Hexes() []hex.Hex {
	return b.balls.Hexes()
}

// OccupiedCount returns the number of balls on the board.
func (b *Board) OccupiedCount() int {
	return b.balls.Len()
}

// Colors returns the distinct color indexes present, in ascending order.
func (b *Board) Colors() []int {
	var seen [MaxColors]bool
	for _, ball := range b.balls.All() {
		if ball.IsColor() {
			seen[ball.Color] = true
		}
	}
	var colors []int
	for c, ok := range seen {
		if ok {
			colors = append(colors, c)
		}
	}
	return colors
}

// FuseAt returns when the bomb at h was armed.
func (b *Board) FuseAt(h hex.Hex) (Timestamp, bool) {
	return b.fuses.Get(h)
}

// PowerUpAt returns when the power-up at h was started.
func (b *Board) PowerUpAt(h hex.Hex) (Timestamp, bool) {
	return b.powerUps.Get(h)
}

// PowerUps returns the hexes with live power-up timers, sorted.
func (b *Board) PowerUps() []hex.Hex {
	return b.powerUps.Hexes()
}

// ClosestHexTo returns the hex whose center is nearest to p.
func (b *Board) ClosestHexTo(p hex.Point) hex.Hex {
	return b.Layout().ClosestHex(p)
}

// HexToPixelCenter returns the center of h in world coordinates.
func (b *Board) HexToPixelCenter(h hex.Hex) hex.Point {
	return b.Layout().HexToPixel(h)
}

// TopRow returns the ceiling row.
func (b *Board) TopRow() int {
	return b.topRow
}

// BottomEdgeY returns the lowest ball edge, ignoring the vertical position.
// An empty board reports the bottom edge of the ceiling row.
func (b *Board) BottomEdgeY() float64 {
	bottom := b.layout.HexToPixel(hex.O(0, b.topRow).ToHex()).Y
	for h := range b.balls.All() {
		if y := b.layout.HexToPixel(h).Y; y > bottom {
			bottom = y
		}
	}
	return bottom + b.cfg.Radius
}

// TopEdgeY returns the top edge of the ceiling row in world coordinates.
func (b *Board) TopEdgeY() float64 {
	return b.HexToPixelCenter(hex.O(0, b.topRow).ToHex()).Y - b.cfg.Radius
}

// DistanceFromDeath returns how far the bottom edge is above the death line.
func (b *Board) DistanceFromDeath() float64 {
	return b.cfg.DeathLineY - b.BottomEdgeY() - b.positionY
}

// Position returns the vertical offset of the field.
func (b *Board) Position() float64 {
	return b.positionY
}

// Velocity returns the vertical speed of the field, positive downwards.
func (b *Board) Velocity() float64 {
	return b.velocity
}

// Now returns the board clock.
func (b *Board) Now() Timestamp {
	return b.now
}

// SetSpeed scales the baseline descent speed.
func (b *Board) SetSpeed(multiplier float64) {
	b.speed = multiplier
}

// AddCeilingRow inserts a row above the ceiling and moves the ceiling up.
// fill is called for every column the shape allows in the new row; it
// returns false to leave a column empty. Existing balls keep their
// world position.
func (b *Board) AddCeilingRow(fill func(col int) (Ball, bool)) {
	row := b.topRow - 1

	if r, ok := b.balls.Shape().(hex.Rectangle); ok && r.Top.Bounded {
		b.setShape(r.WithTop(hex.At(row)))
	}
	b.topRow = row

	first, last, ok := b.columnsInRow(row)
	if !ok {
		return
	}
	for col := first; col <= last; col++ {
		ball, ok := fill(col)
		if !ok {
			continue
		}
		b.balls.Set(hex.O(col, row).ToHex(), ball)
	}
	b.emit(Event{Kind: EventBoardChanged})
}

func (b *Board) columnsInRow(row int) (first, last int, ok bool) {
	if r, isRect := b.balls.Shape().(hex.Rectangle); isRect {
		if first, last, ok = r.ColumnsInRow(row); ok {
			return first, last, true
		}
	}
	// Shapes with open sides fall back to the widest extent seen so far.
	bounds, ok := b.balls.Bounds()
	if !ok {
		return 0, 0, false
	}
	return bounds.MinCol, bounds.MaxCol, true
}

func (b *Board) setShape(shape hex.Shape) {
	b.balls.SetShape(shape)
	b.fuses.SetShape(shape)
	b.powerUps.SetShape(shape)
}

// ArmPowerUp starts a power-up timer on the colored ball at h.
func (b *Board) ArmPowerUp(h hex.Hex) bool {
	ball, ok := b.balls.Get(h)
	if !ok || !ball.IsColor() {
		return false
	}
	b.powerUps.Set(h, b.now)
	b.emit(Event{Kind: EventBoardChanged})
	return true
}
