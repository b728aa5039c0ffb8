package poly

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestEvalConstant(t *testing.T) {
	got := EvalUnitCircle([]float64{3}, 1.2345)
	if cmplx.Abs(got-3) > 1e-15 {
		t.Fatalf("constant polynomial: got %v want 3", got)
	}
}

func TestEvalAtZeroFrequency(t *testing.T) {
	// z = e^0 = 1, so the value is the coefficient sum.
	got := EvalUnitCircle([]float64{1, -0.5, 0.25}, 0)
	if cmplx.Abs(got-complex(0.75, 0)) > 1e-15 {
		t.Fatalf("w=0: got %v want 0.75", got)
	}
}

func TestEvalLinear(t *testing.T) {
	// 1 + z at w = pi gives 1 + e^{-i*pi} = 0.
	got := EvalUnitCircle([]float64{1, 1}, math.Pi)
	if cmplx.Abs(got) > 1e-15 {
		t.Fatalf("1+z at w=pi: got %v want 0", got)
	}
}

func TestEvalQuadraticKnownValue(t *testing.T) {
	// 1 + 2z + 3z^2 at w = pi/2, z = -i: 1 - 2i - 3 = -2 - 2i.
	got := EvalUnitCircle([]float64{1, 2, 3}, math.Pi/2)
	if cmplx.Abs(got-complex(-2, -2)) > 1e-12 {
		t.Fatalf("quadratic at w=pi/2: got %v want -2-2i", got)
	}
}

func TestEvalEmpty(t *testing.T) {
	if got := EvalUnitCircle(nil, 0.7); got != 0 {
		t.Fatalf("empty polynomial: got %v want 0", got)
	}
}
