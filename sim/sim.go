package sim

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-arma/arma"
	"github.com/cwbudde/algo-arma/wold"
)

// Errors returned by the simulation engine.
var (
	ErrNilProcess = errors.New("sim: process must not be nil")
	ErrNilNoise   = errors.New("sim: noise source must not be nil")
)

// Defaults for the simulation engine.
const (
	// DefaultHorizon is the default path length.
	DefaultHorizon = 90

	// DefaultImpulseHorizon is the default Wold coefficient count used as
	// the convolution kernel length.
	DefaultImpulseHorizon = 30
)

type simConfig struct {
	horizon        int
	impulseHorizon int
}

// Option configures a simulation run.
type Option func(*simConfig)

// WithHorizon sets the number of returned path samples.
func WithHorizon(horizon int) Option {
	return func(cfg *simConfig) {
		cfg.horizon = horizon
	}
}

// WithImpulseHorizon sets the number of Wold coefficients used in the
// convolution kernel.
func WithImpulseHorizon(impulseHorizon int) Option {
	return func(cfg *simConfig) {
		cfg.impulseHorizon = impulseHorizon
	}
}

func applyOptions(opts ...Option) simConfig {
	cfg := simConfig{
		horizon:        DefaultHorizon,
		impulseHorizon: DefaultImpulseHorizon,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Simulate samples a realization of the process by convolving horizon+L
// scaled innovations from noise with the first L Wold coefficients, where
// L is the impulse horizon. It returns exactly horizon values.
func Simulate(proc *arma.Process, noise NoiseSource, opts ...Option) ([]float64, error) {
	if proc == nil {
		return nil, ErrNilProcess
	}

	if noise == nil {
		return nil, ErrNilNoise
	}

	cfg := applyOptions(opts...)
	if cfg.horizon <= 0 {
		return nil, fmt.Errorf("sim: horizon must be > 0: %d", cfg.horizon)
	}

	if cfg.impulseHorizon <= 0 {
		return nil, fmt.Errorf("sim: impulse horizon must be > 0: %d", cfg.impulseHorizon)
	}

	psi, err := wold.Coefficients(proc, wold.WithHorizon(cfg.impulseHorizon))
	if err != nil {
		return nil, err
	}

	eps := make([]float64, cfg.horizon+cfg.impulseHorizon)
	noise.Fill(eps)

	sigma := proc.NoiseScale()
	for i := range eps {
		eps[i] *= sigma
	}

	// Direct linear convolution; the kernel is short enough that the
	// time-domain path beats an FFT round trip.
	kernelLen := len(psi)
	full := make([]float64, len(eps)+kernelLen-1)
	for i, e := range eps {
		for j, w := range psi {
			full[i+j] += e * w
		}
	}

	// X[t] = full[t+L-1] is the causal window over eps[t..t+L-1].
	return full[kernelLen-1 : kernelLen-1+cfg.horizon], nil
}
