package fit_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/fit"
)

// ExampleFit fits a line to four points with equal y uncertainty.
func ExampleFit() {
	x := []float64{1, 2, 3, 4}
	y := []float64{2.1, 3.9, 6.2, 7.8}
	dy := []float64{0.1, 0.1, 0.1, 0.1}

	res, err := fit.Fit(x, y, dy, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("m = %.4f +- %.4f\n", res.Slope(), res.SlopeErr())
	fmt.Printf("q = %.4f +- %.4f\n", res.Intercept(), res.InterceptErr())
	fmt.Printf("chinorm = %.4f (%d ndof)\n", res.ChiNorm, res.DOF)
	for _, r := range res.Residuals {
		fmt.Printf("%.2f\n", r)
	}

	// Output:
	// m = 1.9400 +- 0.0447
	// q = 0.1500 +- 0.1225
	// chinorm = 4.1000 (2 ndof)
	// 0.10
	// -1.30
	// 2.30
	// -1.10
}

// ExampleFit_withXUncertainty propagates a constant x uncertainty. With equal
// effective uncertainties the parameters stay put while their errors grow.
func ExampleFit_withXUncertainty() {
	x := []float64{1, 2, 3, 4}
	y := []float64{2.1, 3.9, 6.2, 7.8}
	dy := []float64{0.1, 0.1, 0.1, 0.1}
	dx := []float64{0.05, 0.05, 0.05, 0.05}

	res, err := fit.Fit(x, y, dy, dx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("passes: %d\n", res.Passes)
	fmt.Printf("%s\n", res.Formula())
	fmt.Printf("dm = %.4f\n", res.SlopeErr())

	// Output:
	// passes: 2
	// y = 1.9400*x + 0.1500
	// dm = 0.0623
}

// ExampleFit_degenerate shows the error returned when all x are equal.
func ExampleFit_degenerate() {
	_, err := fit.Fit([]float64{1, 1, 1}, []float64{1, 2, 3}, []float64{1, 1, 1}, nil)
	fmt.Println(errors.Is(err, errs.ErrDegenerateFit))

	// Output:
	// true
}

// ExampleFitEach fits several runs concurrently.
func ExampleFitEach() {
	runs := []fit.Samples{
		{X: []float64{0, 1, 2}, Y: []float64{1, 3, 5}, DY: []float64{1, 1, 1}},
		{X: []float64{0, 1, 2}, Y: []float64{0, -1, -2}, DY: []float64{1, 1, 1}},
	}

	results, err := fit.FitEach(context.Background(), runs, fit.WithConcurrency(2))
	if err != nil {
		log.Fatal(err)
	}

	for i, res := range results {
		fmt.Printf("run %d: %s\n", i, res.Formula())
	}

	// Output:
	// run 0: y = 2.0000*x + 1.0000
	// run 1: y = -1.0000*x + 0.0000
}

// ExampleResult_Estimator predicts y with its uncertainty.
func ExampleResult_Estimator() {
	res, err := fit.Fit([]float64{1, 2, 3, 4}, []float64{2.1, 3.9, 6.2, 7.8}, []float64{0.1, 0.1, 0.1, 0.1}, nil)
	if err != nil {
		log.Fatal(err)
	}

	y, dy := res.Estimator().EstimateWithUncertainty(2.5)
	fmt.Printf("y(2.5) = %.3f +- %.3f\n", y, dy)

	// Output:
	// y(2.5) = 5.000 +- 0.050
}
