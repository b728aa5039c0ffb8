// Package sim produces sampled realizations of an ARMA process.
//
// A realization is the causal convolution of scaled Gaussian innovations
// with the process's Wold coefficients:
//
//	X[t] = sum_{k=0..L-1} psi[k] * eps[t+L-1-k]
//
// where L is the impulse horizon. The engine draws horizon+L innovations
// from an injected NoiseSource and returns exactly horizon values.
//
// All randomness flows through the NoiseSource: Gaussian wraps a seeded
// generator for reproducible runs, and Fixed replays a pre-materialized
// draw sequence, which makes the engine fully deterministic in tests.
//
// # Usage
//
//	path, err := sim.Simulate(proc, sim.NewGaussian(42),
//		sim.WithHorizon(500),
//	)
package sim
