package engine

// RNG is a deterministic mulberry32 generator with position tracking.
// Identical seeds produce identical infinite sequences; the position counter
// increments with every draw, enabling save/restore of the stream.
type RNG struct {
	seed  int64
	state uint32
	pos   int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, state: uint32(seed)}
}

// Float64 returns the next value in [0, 1).
func (r *RNG) Float64() float64 {
	r.pos++
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z += (z ^ (z >> 7)) * (z | 61)
	return float64(z^(z>>14)) / 4294967296.0
}

// IntAround returns a uniform integer in [base-variance, base+variance].
func (r *RNG) IntAround(base, variance int) int {
	min := base - variance
	max := base + variance
	return int(r.Float64()*float64(max-min+1)) + min
}

// Intn returns a uniform integer in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// Seed returns the seed this generator was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// RestoreRNG creates an RNG and advances it to the given position,
// reproducing the exact stream state for save/load.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		rng.Float64()
	}
	return rng
}
