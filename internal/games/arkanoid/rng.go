package arkanoid

// Rand is the source of randomness used when building brick fields.
// *SimpleRNG and *math/rand.Rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// Low bits of an LCG have short periods; use the high ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}
