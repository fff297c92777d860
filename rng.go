package main

import (
	"hash/fnv"
	"math"
)

// Rand is a small deterministic 32-bit generator (mulberry mixing). Each
// composition build owns one instance; nothing in the program shares a
// global stream, so the same seed string always reproduces the same shape
// order, colors, positions, and launch velocities.
type Rand struct {
	state uint32
}

// NewRand derives the generator state by hashing a human-readable seed.
// Any string is a valid seed, including the empty one.
func NewRand(seed string) *Rand {
	return &Rand{state: hashSeed(seed)}
}

// hashSeed folds a seed string into 32 bits. The random stream and the
// texture noise both key off it.
func hashSeed(seed string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return h.Sum32()
}

func (r *Rand) next() uint32 {
	r.state += 0x6d2b79f5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return z ^ (z >> 14)
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.next()) / (1 << 32)
}

// Range returns the next value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Intn returns the next value in [0, n); n <= 0 yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// Angle returns the next angle in [0, 2π).
func (r *Rand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// Perm returns a seeded permutation of [0, n) (Fisher-Yates).
func (r *Rand) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
