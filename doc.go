// Package algoarma characterizes scalar ARMA(p,q) processes analytically
// and via simulation.
//
// An ARMA(p,q) process is defined by p autoregressive coefficients, q
// moving-average coefficients, and the standard deviation of its white-noise
// innovation. From that definition the library derives four representations:
//
//   - Spectral density: the squared magnitude of the transfer function
//     P_ma(e^{-iw}) / P_ar(e^{-iw}), scaled by the innovation variance
//   - Autocovariance sequence: the inverse transform of a sampled density
//   - Wold coefficients: the equivalent MA(inf) impulse response
//   - Simulated paths: causal convolution of injected Gaussian innovations
//     with the Wold coefficients
//
// # Quick Start
//
//	proc, _ := arma.New([]float64{0.5}, arma.WithMA(0, -0.8))
//	freqs, dens, _ := spectral.Density(proc)
//	acov, _ := autocov.Autocovariance(proc, autocov.WithLagCount(8))
//	psi, _ := wold.Coefficients(proc, wold.WithHorizon(30))
//	path, _ := sim.Simulate(proc, sim.NewGaussian(1))
//
// # Packages
//
//   - arma: immutable process model and construction
//   - spectral: transfer function and power spectral density
//   - autocov: autocovariance from the sampled density
//   - wold: impulse-response (Wold) coefficients
//   - sim: sampled realizations from injected noise
//   - stats: time-domain summaries of simulated paths
//   - config: YAML-defined named process presets
//
// All operations are pure functions of their inputs; the one stochastic
// operation, simulation, sources its randomness from an explicitly injected
// noise source.
package algoarma
