// Package arma defines the immutable scalar ARMA(p,q) process model.
//
// A process is described by its AR coefficients phi, MA coefficients theta,
// and the standard deviation sigma of the white-noise innovation:
//
//	X_t = phi_1*X_{t-1} + ... + phi_p*X_{t-p}
//	      + eps_t + theta_1*eps_{t-1} + ... + theta_q*eps_{t-q}
//
// Construction normalizes the coefficients into the two filtering-form
// polynomials used by every downstream engine:
//
//	MA polynomial: 1 + theta_1*z + ... + theta_q*z^q
//	AR polynomial: 1 - phi_1*z - ... - phi_p*z^p
//
// A Process is never mutated after construction and may be shared across
// goroutines without synchronization.
//
// # Usage
//
//	proc, err := arma.New([]float64{0.5, 0.2},
//		arma.WithMA(0, -0.8),
//		arma.WithNoiseScale(2),
//	)
//
// Stability and invertibility of the coefficients are not checked: any
// finite values are accepted, and unstable parameterizations surface as
// singular spectral densities rather than construction errors.
package arma
