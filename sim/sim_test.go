package sim

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-arma/arma"
	"github.com/cwbudde/algo-arma/autocov"
	"github.com/cwbudde/algo-arma/internal/testutil"
)

func mustProcess(t *testing.T, phi []float64, opts ...arma.Option) *arma.Process {
	t.Helper()
	p, err := arma.New(phi, opts...)
	if err != nil {
		t.Fatalf("arma.New error: %v", err)
	}
	return p
}

func TestPathLength(t *testing.T) {
	proc := mustProcess(t, []float64{0.5})

	for _, impulseHorizon := range []int{1, 10, 30, 64} {
		path, err := Simulate(proc, NewGaussian(1),
			WithHorizon(25),
			WithImpulseHorizon(impulseHorizon),
		)
		if err != nil {
			t.Fatalf("impulse horizon %d: Simulate error: %v", impulseHorizon, err)
		}
		if len(path) != 25 {
			t.Fatalf("impulse horizon %d: len=%d want=25", impulseHorizon, len(path))
		}
	}
}

func TestUnitShockReproducesImpulseResponse(t *testing.T) {
	proc := mustProcess(t, []float64{0.5}, arma.WithMA(0.0, -0.8))

	impulseHorizon := 8
	horizon := 5

	// A single unit innovation at index L-1 makes X[t] = psi[t].
	eps := testutil.UnitInnovation(horizon+impulseHorizon, impulseHorizon-1)

	path, err := Simulate(proc, Fixed(eps),
		WithHorizon(horizon),
		WithImpulseHorizon(impulseHorizon),
	)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	want := []float64{1.0, 0.5, -0.55, -0.275, -0.1375}
	testutil.RequireSliceNearlyEqual(t, path, want, 1e-12)
}

func TestZeroNoiseGivesZeroPath(t *testing.T) {
	proc := mustProcess(t, []float64{0.9}, arma.WithMA(0.3))

	path, err := Simulate(proc, Fixed(nil), WithHorizon(20))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, path, make([]float64, 20), 0)
}

func TestNoiseScaleScalesPath(t *testing.T) {
	eps := testutil.DeterministicGaussian(3, 40)

	unit := mustProcess(t, []float64{0.5})
	scaled := mustProcess(t, []float64{0.5}, arma.WithNoiseScale(2))

	pathUnit, err := Simulate(unit, Fixed(eps), WithHorizon(10))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	pathScaled, err := Simulate(scaled, Fixed(eps), WithHorizon(10))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	for i := range pathUnit {
		if math.Abs(pathScaled[i]-2*pathUnit[i]) > 1e-12 {
			t.Fatalf("index %d: %v is not twice %v", i, pathScaled[i], pathUnit[i])
		}
	}
}

func TestSeedReproducible(t *testing.T) {
	proc := mustProcess(t, []float64{0.5}, arma.WithMA(0.2))

	a, err := Simulate(proc, NewGaussian(99))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	b, err := Simulate(proc, NewGaussian(99))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, a, b, 0)
}

func TestLongRunVarianceMatchesAutocovariance(t *testing.T) {
	proc := mustProcess(t, []float64{0.5}, arma.WithNoiseScale(1.2))

	acov, err := autocov.Autocovariance(proc, autocov.WithLagCount(1))
	if err != nil {
		t.Fatalf("Autocovariance error: %v", err)
	}

	path, err := Simulate(proc, NewGaussian(7), WithHorizon(20000))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	sample := testutil.Variance(path)
	if math.Abs(sample-acov[0]) > 0.1*acov[0] {
		t.Fatalf("sample variance %v too far from analytic variance %v", sample, acov[0])
	}
}

func TestDefaults(t *testing.T) {
	proc := mustProcess(t, []float64{0.5})

	path, err := Simulate(proc, NewGaussian(1))
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}

	if len(path) != DefaultHorizon {
		t.Fatalf("len=%d want=%d", len(path), DefaultHorizon)
	}
}

func TestInvalidArguments(t *testing.T) {
	proc := mustProcess(t, []float64{0.5})

	if _, err := Simulate(nil, NewGaussian(1)); err != ErrNilProcess {
		t.Fatalf("err=%v want=ErrNilProcess", err)
	}

	if _, err := Simulate(proc, nil); err != ErrNilNoise {
		t.Fatalf("err=%v want=ErrNilNoise", err)
	}

	if _, err := Simulate(proc, NewGaussian(1), WithHorizon(0)); err == nil {
		t.Fatalf("expected error for zero horizon")
	}

	if _, err := Simulate(proc, NewGaussian(1), WithImpulseHorizon(-1)); err == nil {
		t.Fatalf("expected error for negative impulse horizon")
	}
}

func TestImpulseHorizonBelowAROrder(t *testing.T) {
	proc := mustProcess(t, []float64{0.5, -0.2, 0.1})

	_, err := Simulate(proc, NewGaussian(1), WithImpulseHorizon(2))
	if err == nil {
		t.Fatalf("expected wold horizon error to propagate")
	}
}
