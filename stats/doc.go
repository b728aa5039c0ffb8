// Package stats summarizes simulated process paths in the time domain.
//
// Summarize computes the usual single-pass moments and extrema, and
// SampleAutocovariance estimates the autocovariance sequence of a path for
// comparison against the analytic sequence from the autocov package.
package stats
