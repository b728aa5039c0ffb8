package arma

import (
	"fmt"
	"math"
)

// Process is an immutable scalar ARMA(p,q) process description.
//
// All fields are fixed at construction; accessor methods return copies, so
// a single Process value can be read concurrently by multiple engines.
type Process struct {
	phi   []float64
	theta []float64
	sigma float64

	maPoly []float64 // [1, theta_1, ..., theta_q]
	arPoly []float64 // [1, -phi_1, ..., -phi_p]
}

// New builds a process from its AR coefficients.
//
// MA coefficients default to [0] and the noise scale to 1; both are set
// through options. phi may be empty for a pure MA or white-noise process.
// All coefficients must be finite and the noise scale strictly positive.
func New(phi []float64, opts ...Option) (*Process, error) {
	cfg := applyOptions(opts...)

	if err := checkFinite("AR", phi); err != nil {
		return nil, err
	}

	if err := checkFinite("MA", cfg.theta); err != nil {
		return nil, err
	}

	if !(cfg.sigma > 0) || math.IsInf(cfg.sigma, 0) {
		return nil, fmt.Errorf("arma: noise scale must be a positive finite value: %v", cfg.sigma)
	}

	p := &Process{
		phi:   append([]float64(nil), phi...),
		theta: append([]float64(nil), cfg.theta...),
		sigma: cfg.sigma,
	}

	p.maPoly = make([]float64, len(p.theta)+1)
	p.maPoly[0] = 1
	copy(p.maPoly[1:], p.theta)

	p.arPoly = make([]float64, len(p.phi)+1)
	p.arPoly[0] = 1
	for i, v := range p.phi {
		p.arPoly[i+1] = -v
	}

	return p, nil
}

// checkFinite rejects NaN and infinite coefficients.
func checkFinite(kind string, coeffs []float64) error {
	for i, v := range coeffs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("arma: %s coefficient %d must be finite: %v", kind, i, v)
		}
	}
	return nil
}

// P returns the autoregressive order p.
func (p *Process) P() int { return len(p.phi) }

// Q returns the moving-average order q.
func (p *Process) Q() int { return len(p.theta) }

// AR returns a copy of the AR coefficients phi.
func (p *Process) AR() []float64 {
	return append([]float64(nil), p.phi...)
}

// MA returns a copy of the MA coefficients theta.
func (p *Process) MA() []float64 {
	return append([]float64(nil), p.theta...)
}

// NoiseScale returns the innovation standard deviation sigma.
func (p *Process) NoiseScale() float64 { return p.sigma }

// MAPoly returns a copy of the MA polynomial [1, theta_1, ..., theta_q],
// constant term first.
func (p *Process) MAPoly() []float64 {
	return append([]float64(nil), p.maPoly...)
}

// ARPoly returns a copy of the AR polynomial [1, -phi_1, ..., -phi_p],
// constant term first.
func (p *Process) ARPoly() []float64 {
	return append([]float64(nil), p.arPoly...)
}
