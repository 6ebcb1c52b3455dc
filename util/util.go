package util

import (
	"math"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
// Tests and benchmarks use it to generate reproducible kinematics.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Triple returns a random (pt, eta, phi) triple with pt in (0, 10] GeV/c,
// eta in [-1, 1] and phi in [0, 2*pi).
func (r *RNG) Triple() (pt, eta, phi float32) {
	pt = float32(r.rand.Float64()*9.999) + 0.001
	eta = float32(r.rand.Float64()*2 - 1)
	phi = float32(r.rand.Float64() * 2 * math.Pi)
	return pt, eta, phi
}

// Triples generates num random kinematic triples.
func (r *RNG) Triples(num int) [][3]float32 {
	out := make([][3]float32, num)
	for i := range out {
		pt, eta, phi := r.Triple()
		out[i] = [3]float32{pt, eta, phi}
	}
	return out
}

// Mask returns a random 32-bit cut container.
func (r *RNG) Mask() uint32 {
	return r.rand.Uint32()
}
