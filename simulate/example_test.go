package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/finquant/simulate"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMonteCarloTerminal
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Study a 30-day horizon with ±2% uniform daily shocks. Injecting a
//	midpoint-only source makes every shock exactly 1, which pins the
//	whole summary — handy for demonstrating the determinism contract.
//
// Complexity: O(simulations·days)
func ExampleMonteCarloTerminal() {
	opts := simulate.DefaultMCOptions()
	opts.Simulations = 100
	opts.Src = constSource{u: 0.5} // every shock is exactly 1

	sum, err := simulate.MonteCarloTerminal(100, 30, 0.02, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mean=%.2f probLoss=%.2f band=[%.2f, %.2f]\n",
		sum.Mean, sum.ProbLoss, sum.Lower, sum.Upper)
	// Output:
	// mean=100.00 probLoss=0.00 band=[100.00, 100.00]
}

// ExampleGBMPath walks a zero-volatility path: pure exponential drift,
// fully deterministic for any source.
func ExampleGBMPath() {
	path, err := simulate.GBMPath(100, 0.10, 0, 1.0, 4, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, price := range path {
		fmt.Printf("t=%d price=%.3f\n", i, price)
	}
	// Output:
	// t=0 price=100.000
	// t=1 price=102.532
	// t=2 price=105.127
	// t=3 price=107.788
	// t=4 price=110.517
}
