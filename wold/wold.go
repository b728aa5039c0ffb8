package wold

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-arma/arma"
)

// ErrNilProcess is returned when no process is supplied.
var ErrNilProcess = errors.New("wold: process must not be nil")

// DefaultHorizon is the default number of computed coefficients.
const DefaultHorizon = 30

type woldConfig struct {
	horizon int
}

// Option configures the coefficient computation.
type Option func(*woldConfig)

// WithHorizon sets the number of coefficients to compute.
func WithHorizon(horizon int) Option {
	return func(cfg *woldConfig) {
		cfg.horizon = horizon
	}
}

func applyOptions(opts ...Option) woldConfig {
	cfg := woldConfig{horizon: DefaultHorizon}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Coefficients returns psi[0..horizon-1], the Wold coefficients of the
// process, computed by the linear recurrence
//
//	psi[0] = 1
//	psi[j] = theta_pad[j] + sum_{i=1..min(j,p)} phi_i * psi[j-i]
//
// where theta_pad is theta right-padded with zeros. The horizon must be at
// least the AR order p.
func Coefficients(proc *arma.Process, opts ...Option) ([]float64, error) {
	if proc == nil {
		return nil, ErrNilProcess
	}

	cfg := applyOptions(opts...)
	if cfg.horizon < proc.P() {
		return nil, fmt.Errorf("wold: horizon %d must be at least the AR order %d", cfg.horizon, proc.P())
	}

	psi := make([]float64, cfg.horizon)
	if cfg.horizon == 0 {
		return psi, nil
	}

	phi := proc.AR()
	theta := proc.MA()

	psi[0] = 1
	for j := 1; j < cfg.horizon; j++ {
		v := 0.0
		if j-1 < len(theta) {
			v = theta[j-1]
		}
		for i := 1; i <= len(phi) && i <= j; i++ {
			v += phi[i-1] * psi[j-i]
		}
		psi[j] = v
	}

	return psi, nil
}
