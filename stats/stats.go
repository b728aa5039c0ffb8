package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyPath is returned when a path has no samples.
var ErrEmptyPath = errors.New("stats: path is empty")

// Summary holds time-domain statistics of a path.
type Summary struct {
	Length   int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      float64
	Max      float64
	RMS      float64
}

// Summarize computes all statistics in a single pass using Welford's
// online algorithm for numerical stability.
func Summarize(path []float64) Summary {
	n := len(path)
	if n == 0 {
		return Summary{}
	}

	var (
		mean   float64
		m2     float64
		minVal = path[0]
		maxVal = path[0]
	)

	for i, x := range path {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		if x < minVal {
			minVal = x
		}
		if x > maxVal {
			maxVal = x
		}
	}

	variance := m2 / float64(n)

	return Summary{
		Length:   n,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      minVal,
		Max:      maxVal,
		RMS:      math.Sqrt(variance + mean*mean),
	}
}

// SampleAutocovariance estimates the first lagCount autocovariances of a
// path using the biased estimator
//
//	gamma[k] = (1/n) * sum_{t=0..n-k-1} (x[t]-mean) * (x[t+k]-mean)
//
// Index 0 is the sample variance. lagCount must be between 1 and the path
// length.
func SampleAutocovariance(path []float64, lagCount int) ([]float64, error) {
	n := len(path)
	if n == 0 {
		return nil, ErrEmptyPath
	}

	if lagCount <= 0 || lagCount > n {
		return nil, fmt.Errorf("stats: lag count must be in [1, %d]: %d", n, lagCount)
	}

	mean := Summarize(path).Mean

	dev := make([]float64, n)
	for i, x := range path {
		dev[i] = x - mean
	}

	prod := make([]float64, n)
	acov := make([]float64, lagCount)

	for k := range acov {
		window := prod[:n-k]
		vecmath.MulBlock(window, dev[:n-k], dev[k:])

		sum := 0.0
		for _, v := range window {
			sum += v
		}
		acov[k] = sum / float64(n)
	}

	return acov, nil
}
