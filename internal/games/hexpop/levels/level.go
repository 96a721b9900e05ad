// Package levels provides level loading for HexPop.
// This package depends on board but board does not depend on levels.
package levels

import (
	"maps"

	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
	"github.com/vovakirdan/hexpop/internal/hex"
)

// Level represents a complete level definition.
type Level struct {
	ID           string
	Name         string
	Colors       int // Shooter palette size
	Width        int
	Rows         int
	ShaveOddRows bool
	Cells        map[hex.OffsetCoord]board.Ball
	Metadata     map[string]string
	FilePath     string
}

// Shape derives the board shape from the level extent. The bottom stays
// open so balls can land below the authored rows.
func (l *Level) Shape() hex.Rectangle {
	return hex.RectangularShape(hex.At(0), hex.At(0), hex.At(l.Width-1), hex.Open, l.ShaveOddRows)
}

// NewBoard creates a board from the level.
func (l *Level) NewBoard(cfg board.Config) *board.Board {
	b := board.New(cfg, l.Shape())
	for o, ball := range l.Cells {
		b.Place(o.ToHex(), ball)
	}
	b.Drain()
	return b
}

// BallCount returns the number of authored balls.
func (l *Level) BallCount() int {
	return len(l.Cells)
}

// Stack returns a new level with above placed on top of l.
// When above has an odd number of rows the stagger of l flips, so odd-row
// shaving is turned off to keep every ball inside the shape.
// Stacking a level onto itself panics.
func (l *Level) Stack(above *Level) *Level {
	if above == l {
		panic("levels: cannot stack a level onto itself")
	}

	shift := above.Rows
	stacked := &Level{
		ID:           above.ID + "+" + l.ID,
		Name:         above.Name + " / " + l.Name,
		Colors:       max(l.Colors, above.Colors),
		Width:        max(l.Width, above.Width),
		Rows:         above.Rows + l.Rows,
		ShaveOddRows: l.ShaveOddRows && above.ShaveOddRows && shift&1 == 0,
		Cells:        make(map[hex.OffsetCoord]board.Ball, len(l.Cells)+len(above.Cells)),
		Metadata:     make(map[string]string),
	}
	maps.Copy(stacked.Metadata, l.Metadata)
	maps.Copy(stacked.Metadata, above.Metadata)

	maps.Copy(stacked.Cells, above.Cells)
	for o, ball := range l.Cells {
		stacked.Cells[hex.O(o.Col, o.Row+shift)] = ball
	}
	return stacked
}
