package arma

type processConfig struct {
	theta []float64
	sigma float64
}

// Option configures process construction.
type Option func(*processConfig)

// WithMA sets the MA coefficients theta. A single value describes an
// ARMA(p,1) process; passing more values extends the MA order.
func WithMA(theta ...float64) Option {
	return func(cfg *processConfig) {
		cfg.theta = theta
	}
}

// WithNoiseScale sets the innovation standard deviation sigma.
func WithNoiseScale(sigma float64) Option {
	return func(cfg *processConfig) {
		cfg.sigma = sigma
	}
}

func applyOptions(opts ...Option) processConfig {
	cfg := processConfig{
		theta: []float64{0},
		sigma: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
