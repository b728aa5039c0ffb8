// Package spectral evaluates the frequency response and power spectral
// density of an ARMA process.
//
// The transfer function is the rational function
//
//	h(w) = P_ma(e^{-iw}) / P_ar(e^{-iw})
//
// evaluated over a uniform angular frequency grid, and the density is
// sigma^2 * |h(w)|^2. The grid spans the full circle [0, 2*pi) by default;
// WithOneSided restricts it to [0, pi). Frequencies are endpoint-exclusive,
// w_j = j * span / resolution, matching the DFT bin convention used by the
// autocovariance engine.
//
// # Usage
//
//	freqs, dens, err := spectral.Density(proc,
//		spectral.WithResolution(2048),
//	)
//
// For stable AR polynomials the density is nonnegative at every sampled
// frequency. If the AR polynomial has a root on the sampled grid, the
// corresponding value diverges to +Inf or NaN; this numerical singularity
// is reported in the output rather than raised as an error.
package spectral
