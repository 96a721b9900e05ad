package core

// RNG is a deterministic pseudo-random number generator.
// Games receive one seeded from RuntimeConfig.Seed so that replays with the
// same seed and inputs are identical.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	// 64-bit LCG (Knuth MMIX constants), output mixed with xorshift.
	r.state = r.state*6364136223846793005 + 1442695040888963407
	x := r.state
	x ^= x >> 33
	return x
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Chance returns true with the given probability in percent.
func (r *RNG) Chance(percent int) bool {
	return r.Intn(100) < percent
}

// State returns the internal state, for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
