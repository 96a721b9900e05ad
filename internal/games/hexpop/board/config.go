package board

import "time"

// Config holds the tuning of one board.
// World units are pixels of an abstract playfield; the ball radius sets
// the scale of everything else.
type Config struct {
	Radius float64 // Ball radius

	// Descent pacing. Velocity is positive downwards.
	DeathLineY   float64 // Board fails when its bottom edge reaches this y
	PreferredY   float64 // Resting y of the bottom edge
	Baseline     float64 // Constant descent speed
	PushDownCap  float64 // Upper bound of the push-down term
	ApproachRate float64 // Per-second rate velocity approaches its target

	FuseDelay       time.Duration // Armed bomb to detonation
	PowerUpDuration time.Duration // Lifetime of a power-up timer
}

// DefaultConfig returns the tuning used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Radius:          16,
		DeathLineY:      440,
		PreferredY:      220,
		Baseline:        2,
		PushDownCap:     6,
		ApproachRate:    2,
		FuseDelay:       750 * time.Millisecond,
		PowerUpDuration: 10 * time.Second,
	}
}
