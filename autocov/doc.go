// Package autocov derives the autocovariance sequence of an ARMA process
// from its spectral density.
//
// The engine samples the density over the full circle, applies an inverse
// discrete frequency-to-time transform, and keeps the real parts of the
// first lagCount entries. Index 0 is the process variance and index k the
// lag-k autocovariance.
//
// The FFT backend works on power-of-two sizes, so requested resolutions are
// rounded up accordingly; the inverse transform of the sampled density
// converges with resolution, so the grid size only affects accuracy in the
// last floating-point digits for stable processes.
//
// The transform output is periodic with period equal to the grid
// resolution and the autocovariance is symmetric around lag zero, so lags
// beyond half the resolution would wrap into reflected values. The engine
// therefore rejects lagCount > resolution/2 instead of returning aliased
// data.
package autocov
