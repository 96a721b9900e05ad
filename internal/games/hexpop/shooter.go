package hexpop

import (
	"math"

	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
	"github.com/vovakirdan/hexpop/internal/hex"
)

// Shooter is the launcher at the bottom of the field.
type Shooter struct {
	Origin   hex.Point
	Angle    float64 // Radians from straight up, positive to the right
	MaxAngle float64
	Loaded   board.Ball
	Next     board.Ball
}

// Rotate turns the aim by delta radians within the allowed arc.
func (s *Shooter) Rotate(delta float64) {
	s.Angle = core.ClampF(s.Angle+delta, -s.MaxAngle, s.MaxAngle)
}

// Direction returns the unit vector of the current aim. Y grows downwards.
func (s *Shooter) Direction() hex.Point {
	return hex.P(math.Sin(s.Angle), -math.Cos(s.Angle))
}

// Swap exchanges the loaded and the next ball.
func (s *Shooter) Swap() {
	s.Loaded, s.Next = s.Next, s.Loaded
}

// Launch fires the loaded ball and moves next into the chamber.
func (s *Shooter) Launch(speed float64, next board.Ball) *Projectile {
	p := &Projectile{
		Pos:  s.Origin,
		Vel:  s.Direction().Scale(speed),
		Ball: s.Loaded,
	}
	s.Loaded = s.Next
	s.Next = next
	return p
}

// Projectile is a ball in flight, in world units.
type Projectile struct {
	Pos  hex.Point
	Vel  hex.Point // Units per second
	Ball board.Ball
}

// advance moves the projectile by dt seconds and reflects it off the side
// walls of a field width units wide.
func (p *Projectile) advance(dt, width, radius float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	left, right := radius, width-radius
	switch {
	case p.Pos.X < left:
		p.Pos.X = 2*left - p.Pos.X
		p.Vel.X = -p.Vel.X
	case p.Pos.X > right:
		p.Pos.X = 2*right - p.Pos.X
		p.Vel.X = -p.Vel.X
	}
}

// fly advances the projectile through subSteps collision checks within one
// tick and resolves it on the board as soon as it touches something.
func fly(b *board.Board, p *Projectile, dt float64, subSteps int, width float64) (board.Landing, bool) {
	if subSteps < 1 {
		subSteps = 1
	}
	step := dt / float64(subSteps)
	for range subSteps {
		p.advance(step, width, b.Radius())
		if land, ok := b.TryResolveLanding(p.Pos, p.Ball); ok {
			return land, true
		}
	}
	return board.Landing{}, false
}

// lost reports whether the projectile left the field above the ceiling
// without finding a cell to land in.
func (p *Projectile) lost(b *board.Board) bool {
	return p.Pos.Y < b.TopEdgeY()-4*b.Radius()
}

// Guide is the predicted path of the loaded ball.
type Guide struct {
	Points  []hex.Point
	Landing hex.Hex
	Hit     bool
}

// TraceGuide simulates the current aim in steps of half a radius using
// only board queries. It stops at the first collision or after maxPoints
// samples.
func TraceGuide(b *board.Board, s *Shooter, width float64, maxPoints int) Guide {
	var g Guide
	step := b.Radius() / 2
	p := Projectile{Pos: s.Origin, Vel: s.Direction()}

	for range maxPoints {
		p.advance(step, width, b.Radius())
		if c, ok := b.DetectCollision(p.Pos); ok {
			g.Landing = c.Landing
			g.Hit = true
			return g
		}
		if p.lost(b) {
			return g
		}
		g.Points = append(g.Points, p.Pos)
	}
	return g
}
