package hexpop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
	"github.com/vovakirdan/hexpop/internal/hex"
)

// Visual characters for rendering
const (
	BallLeft   = '◖'
	BallRight  = '◗'
	PowerUpMid = '◈'
	BombLeft   = '<'
	BombRight  = '>'
	StoneChar  = '▓'
	GuideChar  = '·'
	DeathChar  = '┄'
)

// screenLayout places the field on the character grid. One character is
// one radius wide and one line is one row high.
type screenLayout struct {
	innerX, innerY int // Screen cell of world (0,0)
	cols, lines    int // Field size in cells
	rowHeight      float64
	minW, minH     int
}

func (g *Game) calculateLayout() {
	r := g.cfg.Board.Radius
	l := &g.layout
	l.rowHeight = r * math.Sqrt(3)
	l.cols = int(math.Round(g.width / r))
	l.lines = int(math.Ceil((g.shooter.Origin.Y + r) / l.rowHeight))

	// HUD line, box border, field, box border, status line
	l.minW = max(l.cols+2, 40)
	l.minH = l.lines + 4
	g.screenTooSmall = g.runtime.ScreenW < l.minW || g.runtime.ScreenH < l.minH

	l.innerX = (g.runtime.ScreenW - l.cols) / 2
	l.innerY = 2
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.board != nil {
		g.calculateLayout()
	}
}

// cell converts a world point to a field cell.
func (l *screenLayout) cell(p hex.Point, radius float64) (x, y int, ok bool) {
	x = int(math.Floor(p.X / radius))
	y = int(math.Floor(p.Y / l.rowHeight))
	if x < 0 || x >= l.cols || y < 0 || y >= l.lines {
		return 0, 0, false
	}
	return x + l.innerX, y + l.innerY, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot load levels")
		dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		return
	}

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)
	g.renderStatus(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	var title string
	if level := g.Level(); level != nil {
		title = fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.levels), level.Name)
	} else {
		title = "Endless"
	}
	dst.DrawTextCentered(0, title)

	balls := fmt.Sprintf("Balls: %d", g.balls)
	dst.DrawText(dst.Width()-len(balls)-1, 0, balls)
}

func (g *Game) renderField(dst *core.Screen) {
	l := &g.layout
	r := g.cfg.Board.Radius

	dst.DrawBox(core.NewRect(l.innerX-1, l.innerY-1, l.cols+2, l.lines+2))

	if y := int(math.Floor(g.cfg.Board.DeathLineY / l.rowHeight)); y < l.lines {
		dst.DrawHLine(l.innerX, l.innerY+y, l.cols, DeathChar, core.ColorGray)
	}

	if g.shot == nil && g.state == StatePlaying {
		guide := TraceGuide(g.board, &g.shooter, g.width, guidePoints)
		for i, p := range guide.Points {
			if i%3 != 2 {
				continue
			}
			if x, y, ok := l.cell(p, r); ok {
				dst.SetColored(x, y, GuideChar, core.ColorGray)
			}
		}
	}

	for _, h := range g.board.Hexes() {
		ball, _ := g.board.BallAt(h)
		g.drawBall(dst, g.board.HexToPixelCenter(h), ball, g.cellEffects(h))
	}

	if g.shot != nil {
		g.drawBall(dst, g.shot.Pos, g.shot.Ball, effects{})
	}
	g.drawBall(dst, g.shooter.Origin, g.shooter.Loaded, effects{})
}

type effects struct {
	powered bool
	armed   bool
}

func (g *Game) cellEffects(h hex.Hex) effects {
	_, powered := g.board.PowerUpAt(h)
	_, armed := g.board.FuseAt(h)
	return effects{powered: powered, armed: armed}
}

// drawBall draws a ball two cells wide centered on p.
func (g *Game) drawBall(dst *core.Screen, p hex.Point, ball board.Ball, fx effects) {
	r := g.cfg.Board.Radius
	x, y, ok := g.layout.cell(p.Sub(hex.P(r, 0)), r)
	if !ok {
		return
	}
	left, right, lc, rc := g.glyph(ball, fx)
	dst.SetColored(x, y, left, lc)
	if x+1 < g.layout.innerX+g.layout.cols {
		dst.SetColored(x+1, y, right, rc)
	}
}

func (g *Game) glyph(ball board.Ball, fx effects) (left, right rune, lc, rc core.Color) {
	switch ball.Kind {
	case board.KindRainbow:
		phase := g.ticks / 8
		return BallLeft, BallRight, core.BallColor(phase), core.BallColor(phase + 1)
	case board.KindBomb:
		c := core.ColorRed
		if fx.armed && (g.ticks/4)%2 == 0 {
			c = core.ColorYellow
		}
		return BombLeft, BombRight, c, c
	case board.KindStone:
		return StoneChar, StoneChar, core.ColorGray, core.ColorGray
	}
	c := core.BallColor(ball.Color)
	if fx.powered {
		return BallLeft, PowerUpMid, c, core.ColorWhite
	}
	return BallLeft, BallRight, c, c
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := g.layout.innerY + g.layout.lines + 1
	x := g.layout.innerX - 1

	dst.DrawText(x, y, "Next:")
	left, right, lc, rc := g.glyph(g.shooter.Next, effects{})
	dst.SetColored(x+6, y, left, lc)
	dst.SetColored(x+7, y, right, rc)

	if n := len(g.bonus); n > 0 {
		dst.DrawTextColored(x+9, y, fmt.Sprintf("+%d", n), core.ColorYellow)
	}

	hint := "←→ aim  SPACE fire  S swap"
	dst.DrawText(dst.Width()-len([]rune(hint))-1, y, hint)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateCleared:
		subtitle := fmt.Sprintf("Level score: %d  |  SPACE to continue", g.levelScore)
		g.drawCenteredBox(dst, "LEVEL CLEAR", subtitle)

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
