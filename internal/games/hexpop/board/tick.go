package board

import (
	"math"
	"time"

	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/hex"
)

// Detonation is one matured bomb chain.
type Detonation struct {
	Origin hex.Hex
	Batch
}

// TickResult reports what happened during AdvanceTick.
type TickResult struct {
	Detonations []Detonation
	Expired     []hex.Hex // Power-ups that ran out
	Failed      bool      // Bottom edge reached the death line
}

// AdvanceTick moves the game clock by dt, detonates matured bombs,
// expires power-ups and updates the descent.
func (b *Board) AdvanceTick(dt time.Duration) TickResult {
	var res TickResult
	b.now += dt

	for _, h := range b.fuses.Hexes() {
		armedAt, ok := b.fuses.Get(h)
		if !ok || armedAt+b.cfg.FuseDelay > b.now {
			// Missing entries were swallowed by an earlier chain this tick.
			continue
		}
		res.Detonations = append(res.Detonations, b.detonate(h))
	}

	for _, h := range b.powerUps.Hexes() {
		if startedAt, _ := b.powerUps.Get(h); startedAt+b.cfg.PowerUpDuration <= b.now {
			b.powerUps.Delete(h)
			res.Expired = append(res.Expired, h)
		}
	}
	if len(res.Expired) > 0 {
		b.emit(Event{Kind: EventBoardChanged})
	}

	b.pace(dt.Seconds())
	res.Failed = b.DistanceFromDeath() <= 0
	return res
}

// detonate clears everything within blast range of origin. Bombs caught in
// the blast add their own range before anything is removed.
func (b *Board) detonate(origin hex.Hex) Detonation {
	collected := make(map[hex.Hex]bool)
	queued := map[hex.Hex]bool{origin: true}
	queue := []hex.Hex{origin}

	for len(queue) > 0 {
		center := queue[0]
		queue = queue[1:]
		for _, h := range center.Range(blastRadius) {
			if collected[h] || !b.balls.Has(h) {
				continue
			}
			collected[h] = true
			if b.isBomb(h) && !queued[h] {
				queued[h] = true
				queue = append(queue, h)
			}
		}
	}

	hs := make([]hex.Hex, 0, len(collected))
	for h := range collected {
		hs = append(hs, h)
	}
	hex.SortHexes(hs)

	return Detonation{Origin: origin, Batch: b.finishBatch(b.clear(hs))}
}

// pace steers the vertical velocity toward its target and moves the field.
func (b *Board) pace(dt float64) {
	currentY := b.BottomEdgeY() + b.positionY

	catchUp := math.Pow(math.Max(0, (b.cfg.PreferredY-currentY)/10), 1.6)
	pushDown := core.ClampF(b.DistanceFromDeath()/8, 0, b.cfg.PushDownCap)
	target := b.cfg.Baseline*b.speed + catchUp + pushDown

	b.velocity = core.Lerp(b.velocity, target, math.Min(1, b.cfg.ApproachRate*dt))
	b.positionY += b.velocity * dt
}
