// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
	"github.com/vovakirdan/hexpop/internal/hex"
)

// Cell codes of the text grid.
const (
	CodeEmpty   = '.'
	CodeRainbow = 'R'
	CodeBomb    = 'B'
	CodeStone   = 'S'
)

// ParseError reports an unrecognized cell code.
type ParseError struct {
	Line   int // 1-based line in the source file
	Column int // 1-based rune column in that line
	Code   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: unknown cell code %q", e.Line, e.Column, e.Code)
}

// Grid is a parsed text grid. Row 0 is the top row; odd rows are the
// staggered ones.
type Grid struct {
	Cells        map[hex.OffsetCoord]board.Ball
	Width        int  // Codes in the widest row
	Rows         int  // Number of rows, including empty ones
	ShaveOddRows bool // Every odd row is shorter than the widest even row
	MaxColor     int  // Highest color index used, -1 if none
}

// ParseGrid parses the cell rows of a level. firstLine is the source line
// number of the first line of text, used for error positions.
// Whitespace inside a row is ignored so odd rows can be indented.
// Blank lines before the first and after the last row are dropped.
func ParseGrid(text string, firstLine int) (Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	g := Grid{
		Cells:    make(map[hex.OffsetCoord]board.Ball),
		MaxColor: -1,
	}
	evenMax, oddMax := 0, 0

	for i := start; i < end; i++ {
		row := i - start
		col := 0
		column := 0
		for _, r := range lines[i] {
			column++
			if unicode.IsSpace(r) {
				continue
			}
			ball, ok, err := decode(r)
			if err != nil {
				return Grid{}, &ParseError{Line: firstLine + i, Column: column, Code: r}
			}
			if ok {
				g.Cells[hex.O(col, row)] = ball
				if ball.IsColor() && ball.Color > g.MaxColor {
					g.MaxColor = ball.Color
				}
			}
			col++
		}

		if row&1 == 1 {
			oddMax = max(oddMax, col)
		} else {
			evenMax = max(evenMax, col)
		}
	}

	g.Rows = end - start
	g.Width = max(evenMax, oddMax)
	g.ShaveOddRows = g.Rows > 1 && oddMax < evenMax
	return g, nil
}

// errUnknownCode marks a rune with no cell meaning.
var errUnknownCode = errors.New("unknown cell code")

// decode maps one code to a ball. ok is false for an empty cell.
func decode(r rune) (board.Ball, bool, error) {
	switch {
	case r == CodeEmpty:
		return board.Ball{}, false, nil
	case r >= 'a' && r <= 'z':
		return board.Colored(int(r - 'a')), true, nil
	case r == CodeRainbow:
		return board.Rainbow, true, nil
	case r == CodeBomb:
		return board.Bomb, true, nil
	case r == CodeStone:
		return board.Stone, true, nil
	default:
		return board.Ball{}, false, errUnknownCode
	}
}

// Encode renders cells back into text grid form. Odd rows are indented by
// one space.
func Encode(cells map[hex.OffsetCoord]board.Ball, width, rows int, shave bool) string {
	var sb strings.Builder
	for row := range rows {
		n := width
		if row&1 == 1 {
			sb.WriteByte(' ')
			if shave {
				n--
			}
		}
		for col := range n {
			if ball, ok := cells[hex.O(col, row)]; ok {
				sb.WriteString(ball.String())
			} else {
				sb.WriteRune(CodeEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
