package testutil

import (
	"math"
	"testing"
)

func TestDeterministicGaussianReproducible(t *testing.T) {
	a := DeterministicGaussian(42, 256)
	b := DeterministicGaussian(42, 256)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: draws differ for identical seeds", i)
		}
	}
}

func TestDeterministicGaussianMoments(t *testing.T) {
	draws := DeterministicGaussian(7, 100000)

	if m := Mean(draws); math.Abs(m) > 0.02 {
		t.Fatalf("mean=%v too far from 0", m)
	}

	if v := Variance(draws); math.Abs(v-1) > 0.03 {
		t.Fatalf("variance=%v too far from 1", v)
	}
}

func TestUnitInnovation(t *testing.T) {
	eps := UnitInnovation(8, 3)

	for i, v := range eps {
		want := 0.0
		if i == 3 {
			want = 1.0
		}
		if v != want {
			t.Fatalf("eps[%d]=%v want=%v", i, v, want)
		}
	}
}

func TestUnitInnovationOutOfRange(t *testing.T) {
	eps := UnitInnovation(4, 9)
	for i, v := range eps {
		if v != 0 {
			t.Fatalf("eps[%d]=%v want=0 for out-of-range position", i, v)
		}
	}
}
