package sim

import "math/rand"

// NoiseSource supplies standard-normal innovation draws. Fill must write
// one draw into every element of dst.
type NoiseSource interface {
	Fill(dst []float64)
}

// Gaussian draws standard-normal innovations from a seeded generator.
// It is not safe for concurrent use; create one source per goroutine.
type Gaussian struct {
	rng *rand.Rand
}

// NewGaussian creates a Gaussian noise source with a deterministic seed.
func NewGaussian(seed int64) *Gaussian {
	return &Gaussian{rng: rand.New(rand.NewSource(seed))}
}

// Fill writes standard-normal draws into dst.
func (g *Gaussian) Fill(dst []float64) {
	for i := range dst {
		dst[i] = g.rng.NormFloat64()
	}
}

// Fixed replays a pre-materialized draw sequence. Elements beyond its
// length are left at zero, so a short Fixed source pads with silence.
type Fixed []float64

// Fill copies the stored draws into dst.
func (f Fixed) Fill(dst []float64) {
	copy(dst, f)
}
