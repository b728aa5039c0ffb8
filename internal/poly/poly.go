// Package poly provides polynomial evaluation on the unit circle, shared by
// the spectral engines.
package poly

import "math/cmplx"

// EvalUnitCircle evaluates the polynomial with the given real coefficients
// (constant term first) at z = e^{-iw} using Horner's method.
//
// An empty coefficient slice evaluates to zero.
func EvalUnitCircle(coeffs []float64, w float64) complex128 {
	z := cmplx.Exp(complex(0, -w))

	var acc complex128
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*z + complex(coeffs[i], 0)
	}

	return acc
}
