package wold_test

import (
	"fmt"

	"github.com/cwbudde/algo-arma/arma"
	"github.com/cwbudde/algo-arma/wold"
)

func ExampleCoefficients() {
	proc, _ := arma.New([]float64{0.5}, arma.WithMA(0.0, -0.8))
	psi, _ := wold.Coefficients(proc, wold.WithHorizon(5))
	for j, v := range psi {
		fmt.Printf("psi[%d] = %.4f\n", j, v)
	}
	// Output:
	// psi[0] = 1.0000
	// psi[1] = 0.5000
	// psi[2] = -0.5500
	// psi[3] = -0.2750
	// psi[4] = -0.1375
}
