package spectral

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-arma/arma"
	"github.com/cwbudde/algo-arma/internal/poly"
)

// ErrNilProcess is returned when no process is supplied.
var ErrNilProcess = errors.New("spectral: process must not be nil")

// DefaultResolution is the default number of frequency samples.
const DefaultResolution = 1200

type spectrumConfig struct {
	resolution int
	oneSided   bool
}

// Option configures frequency grid generation.
type Option func(*spectrumConfig)

// WithResolution sets the number of frequency samples.
func WithResolution(resolution int) Option {
	return func(cfg *spectrumConfig) {
		if resolution > 0 {
			cfg.resolution = resolution
		}
	}
}

// WithOneSided restricts the frequency grid to the half circle [0, pi)
// instead of the default full circle [0, 2*pi).
func WithOneSided() Option {
	return func(cfg *spectrumConfig) {
		cfg.oneSided = true
	}
}

func applyOptions(opts ...Option) spectrumConfig {
	cfg := spectrumConfig{resolution: DefaultResolution}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// TransferFunction evaluates h(w) = P_ma(e^{-iw}) / P_ar(e^{-iw}) over the
// configured frequency grid. It returns the grid and the complex response,
// paired by index.
func TransferFunction(proc *arma.Process, opts ...Option) ([]float64, []complex128, error) {
	if proc == nil {
		return nil, nil, ErrNilProcess
	}

	cfg := applyOptions(opts...)

	span := 2 * math.Pi
	if cfg.oneSided {
		span = math.Pi
	}

	maPoly := proc.MAPoly()
	arPoly := proc.ARPoly()

	freqs := make([]float64, cfg.resolution)
	h := make([]complex128, cfg.resolution)
	step := span / float64(cfg.resolution)

	for j := range h {
		w := step * float64(j)
		freqs[j] = w
		h[j] = poly.EvalUnitCircle(maPoly, w) / poly.EvalUnitCircle(arPoly, w)
	}

	return freqs, h, nil
}

// Density computes the power spectral density sigma^2 * |h(w)|^2 over the
// configured frequency grid. It returns the grid and the density values,
// paired by index.
func Density(proc *arma.Process, opts ...Option) ([]float64, []float64, error) {
	freqs, h, err := TransferFunction(proc, opts...)
	if err != nil {
		return nil, nil, err
	}

	re := make([]float64, len(h))
	im := make([]float64, len(h))
	for i, c := range h {
		re[i] = real(c)
		im[i] = imag(c)
	}

	dens := make([]float64, len(h))
	vecmath.Power(dens, re, im)

	variance := proc.NoiseScale() * proc.NoiseScale()
	for i := range dens {
		dens[i] *= variance
	}

	return freqs, dens, nil
}
