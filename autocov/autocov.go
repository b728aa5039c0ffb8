package autocov

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-arma/arma"
	"github.com/cwbudde/algo-arma/spectral"
)

// Errors returned by the autocovariance engine.
var (
	ErrNilProcess      = errors.New("autocov: process must not be nil")
	ErrInvalidLagCount = errors.New("autocov: lag count must be > 0")
)

// Defaults for the autocovariance engine.
const (
	// DefaultLagCount is the default number of returned lags.
	DefaultLagCount = 16

	// DefaultResolution is the default density grid size. It is a power of
	// two so the FFT backend can invert the sampled density directly.
	DefaultResolution = 2048
)

type autocovConfig struct {
	lagCount   int
	resolution int
}

// Option configures the autocovariance computation.
type Option func(*autocovConfig)

// WithLagCount sets the number of autocovariance lags to return, starting
// at lag 0 (the variance).
func WithLagCount(lagCount int) Option {
	return func(cfg *autocovConfig) {
		cfg.lagCount = lagCount
	}
}

// WithResolution sets the density grid size. Values are rounded up to the
// next power of two.
func WithResolution(resolution int) Option {
	return func(cfg *autocovConfig) {
		if resolution > 0 {
			cfg.resolution = resolution
		}
	}
}

func applyOptions(opts ...Option) autocovConfig {
	cfg := autocovConfig{
		lagCount:   DefaultLagCount,
		resolution: DefaultResolution,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Autocovariance returns the first lagCount autocovariances of the process,
// derived by inverse-transforming its sampled spectral density. Index 0 is
// the variance.
//
// lagCount must not exceed half the grid resolution; larger requests alias
// into reflected lags and are rejected.
func Autocovariance(proc *arma.Process, opts ...Option) ([]float64, error) {
	if proc == nil {
		return nil, ErrNilProcess
	}

	cfg := applyOptions(opts...)
	if cfg.lagCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLagCount, cfg.lagCount)
	}

	resolution := nextPowerOf2(cfg.resolution)
	if cfg.lagCount > resolution/2 {
		return nil, fmt.Errorf("autocov: lag count %d exceeds half the grid resolution %d", cfg.lagCount, resolution)
	}

	_, dens, err := spectral.Density(proc, spectral.WithResolution(resolution))
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(resolution)
	if err != nil {
		return nil, fmt.Errorf("autocov: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, resolution)
	for i, v := range dens {
		freq[i] = complex(v, 0)
	}

	lags := make([]complex128, resolution)
	if err := plan.Inverse(lags, freq); err != nil {
		return nil, fmt.Errorf("autocov: inverse transform failed: %w", err)
	}

	acov := make([]float64, cfg.lagCount)
	for k := range acov {
		acov[k] = real(lags[k])
	}

	return acov, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
