package hexpop

import (
	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
	"github.com/vovakirdan/hexpop/internal/hex"
)

// Feeder generates ceiling rows for the endless mode.
type Feeder struct {
	rng         *core.RNG
	colors      int
	stoneChance int
	bombChance  int
}

// NewFeeder creates a feeder drawing from rng.
func NewFeeder(rng *core.RNG, cfg config.HexPopEndless) *Feeder {
	return &Feeder{
		rng:         rng,
		colors:      core.Clamp(cfg.Colors, 1, board.MaxColors),
		stoneChance: cfg.StoneChance,
		bombChance:  cfg.BombChance,
	}
}

// Colors returns the current palette size.
func (f *Feeder) Colors() int {
	return f.colors
}

// SetColors changes the palette size for subsequent rows.
func (f *Feeder) SetColors(n int) {
	f.colors = core.Clamp(n, 1, board.MaxColors)
}

// Ball returns the ball for one fed cell. Every column is filled.
func (f *Feeder) Ball(int) (board.Ball, bool) {
	switch {
	case f.rng.Chance(f.bombChance):
		return board.Bomb, true
	case f.rng.Chance(f.stoneChance):
		return board.Stone, true
	}
	return board.Colored(f.rng.Intn(f.colors)), true
}

// newEndlessBoard builds the starting field of the endless mode.
func newEndlessBoard(cfg board.Config, endless config.HexPopEndless, f *Feeder) *board.Board {
	cols := max(endless.Columns, 2)
	shape := hex.RectangularShape(hex.At(0), hex.At(0), hex.At(cols-1), hex.Open, true)
	b := board.New(cfg, shape)

	for row := range endless.StartRows {
		first, last, ok := shape.ColumnsInRow(row)
		if !ok {
			continue
		}
		for col := first; col <= last; col++ {
			ball, _ := f.Ball(col)
			b.Place(hex.O(col, row).ToHex(), ball)
		}
	}
	b.Drain()
	return b
}

// feed adds ceiling rows while the top of the field is in view.
// Returns the number of rows added.
func feed(b *board.Board, f *Feeder) int {
	n := 0
	for b.TopEdgeY() > 0 {
		b.AddCeilingRow(f.Ball)
		n++
	}
	return n
}
