package board

import (
	"math"

	"github.com/vovakirdan/hexpop/internal/hex"
)

const (
	// matchThreshold is the smallest region that gets removed.
	matchThreshold = 3
	// blastRadius is the hex distance a bomb clears.
	blastRadius = 2
	// pushbackScale is the upward impulse per doubling of removed balls.
	pushbackScale = 48
)

// Removal is one cleared cell.
type Removal struct {
	Hex  hex.Hex
	Ball Ball
}

// Batch is one removal list: a match or a bomb chain plus the balls that
// fell afterwards.
type Batch struct {
	Matched  []Removal // Region or blast members
	Dropped  []Removal // Floating balls cut off from the ceiling
	Pushback float64   // Velocity added to the board
}

// Removed returns every removal of the batch, matched first.
func (b Batch) Removed() []Removal {
	out := make([]Removal, 0, len(b.Matched)+len(b.Dropped))
	out = append(out, b.Matched...)
	return append(out, b.Dropped...)
}

// Count returns the number of removed balls.
func (b Batch) Count() int {
	return len(b.Matched) + len(b.Dropped)
}

// Landing is the outcome of a resolved projectile.
type Landing struct {
	Hex     hex.Hex
	Contact hex.Hex
	Batch
}

// Pushback returns the velocity impulse for removing count balls.
func Pushback(count int) float64 {
	if count < matchThreshold {
		return 0
	}
	return -pushbackScale * math.Log2(float64(count))
}

// TryResolveLanding settles a projectile at p carrying ball, if it
// collides with anything, and runs the removal passes.
// Returns false without touching the board while the projectile is in
// free flight.
func (b *Board) TryResolveLanding(p hex.Point, ball Ball) (Landing, bool) {
	c, ok := b.DetectCollision(p)
	if !ok {
		return Landing{}, false
	}

	land := Landing{Hex: c.Landing, Contact: c.Contact}
	b.balls.Set(c.Landing, ball)
	b.emit(Event{Kind: EventBoardChanged})

	if ball.Kind == KindBomb {
		b.fuses.Set(c.Landing, b.now)
	}
	region, bombs := b.matchRegion(c.Landing)

	if len(region) == 0 {
		b.emit(Event{Kind: EventSettled, Hex: c.Landing})
		return land, true
	}

	land.Matched = b.clear(region)
	for _, h := range bombs {
		if _, armed := b.fuses.Get(h); !armed && b.isBomb(h) {
			b.fuses.Set(h, b.now)
		}
	}
	land.Batch = b.finishBatch(land.Matched)
	return land, true
}

// MatchRegion returns the cells that would be removed for the ball at h,
// or nil if fewer than three match.
func (b *Board) MatchRegion(h hex.Hex) []hex.Hex {
	region, _ := b.matchRegion(h)
	return region
}

func (b *Board) matchRegion(h hex.Hex) (region, bombs []hex.Hex) {
	ball, ok := b.balls.Get(h)
	if !ok {
		return nil, nil
	}
	switch ball.Kind {
	case KindColor:
		region, bombs = b.region(h, ball.Color)
		if len(region) < matchThreshold {
			return nil, nil
		}
		return region, bombs
	case KindRainbow:
		return b.rainbowRegion(h)
	default:
		return nil, nil
	}
}

// finishBatch drops floating balls, applies pushback and reports the batch.
func (b *Board) finishBatch(matched []Removal) Batch {
	batch := Batch{Matched: matched, Dropped: b.removeFloating()}
	batch.Pushback = Pushback(batch.Count())
	b.velocity += batch.Pushback
	b.emit(Event{Kind: EventBallsObtained, Balls: batch.Removed()})
	return batch
}

// region floods from start over balls matching color. Bombs touching the
// region are collected without extending it. Both lists are sorted.
func (b *Board) region(start hex.Hex, color int) (members, bombs []hex.Hex) {
	visited := map[hex.Hex]bool{start: true}
	seenBomb := make(map[hex.Hex]bool)
	queue := []hex.Hex{start}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		members = append(members, h)

		for _, n := range h.Neighbors() {
			if visited[n] || seenBomb[n] {
				continue
			}
			ball, ok := b.balls.Get(n)
			if !ok {
				continue
			}
			switch {
			case ball.Matches(color):
				visited[n] = true
				queue = append(queue, n)
			case ball.Kind == KindBomb:
				seenBomb[n] = true
				bombs = append(bombs, n)
			}
		}
	}

	hex.SortHexes(members)
	hex.SortHexes(bombs)
	return members, bombs
}

// rainbowRegion resolves a landed rainbow. Every color touching the
// rainbow chain containing start is flooded; regions of three or more are
// merged. A chain with no colored neighbors counts on its own.
func (b *Board) rainbowRegion(start hex.Hex) (members, bombs []hex.Hex) {
	chain, chainBombs := b.region(start, -1)

	var colors [MaxColors]bool
	for _, h := range chain {
		for _, n := range h.Neighbors() {
			if ball, ok := b.balls.Get(n); ok && ball.IsColor() {
				colors[ball.Color] = true
			}
		}
	}

	inRegion := make(map[hex.Hex]bool)
	inBombs := make(map[hex.Hex]bool)
	anyColor := false
	for color, present := range colors {
		if !present {
			continue
		}
		anyColor = true
		m, bs := b.region(start, color)
		if len(m) < matchThreshold {
			continue
		}
		for _, h := range m {
			inRegion[h] = true
		}
		for _, h := range bs {
			inBombs[h] = true
		}
	}

	if !anyColor && len(chain) >= matchThreshold {
		return chain, chainBombs
	}

	members = make([]hex.Hex, 0, len(inRegion))
	for h := range inRegion {
		members = append(members, h)
	}
	for h := range inBombs {
		bombs = append(bombs, h)
	}
	hex.SortHexes(members)
	hex.SortHexes(bombs)
	return members, bombs
}

// removeFloating clears every ball without a path to the ceiling row.
func (b *Board) removeFloating() []Removal {
	grounded := make(map[hex.Hex]bool)
	var queue []hex.Hex
	for h := range b.balls.All() {
		if h.R == b.topRow {
			grounded[h] = true
			queue = append(queue, h)
		}
	}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		for _, n := range h.Neighbors() {
			if grounded[n] || !b.balls.Has(n) {
				continue
			}
			grounded[n] = true
			queue = append(queue, n)
		}
	}

	var floating []hex.Hex
	for h := range b.balls.All() {
		if !grounded[h] {
			floating = append(floating, h)
		}
	}
	if len(floating) == 0 {
		return nil
	}
	hex.SortHexes(floating)
	return b.clear(floating)
}

// clear removes the given cells and their timers.
func (b *Board) clear(hs []hex.Hex) []Removal {
	removed := make([]Removal, 0, len(hs))
	for _, h := range hs {
		ball, ok := b.balls.Delete(h)
		if !ok {
			continue
		}
		b.fuses.Delete(h)
		if _, live := b.powerUps.Delete(h); live {
			b.emit(Event{Kind: EventPowerUpObtained, Hex: h})
		}
		removed = append(removed, Removal{Hex: h, Ball: ball})
	}
	if len(removed) > 0 {
		b.emit(Event{Kind: EventBoardChanged})
	}
	return removed
}

func (b *Board) isBomb(h hex.Hex) bool {
	ball, ok := b.balls.Get(h)
	return ok && ball.Kind == KindBomb
}
