// Package fit performs weighted least-squares fits of the straight line
// y = m·x + q to measured samples with known uncertainties.
//
// Each sample carries a y uncertainty dy[i], which sets its inverse-variance
// weight w[i] = 1/dy[i]². Optionally an x uncertainty dx[i] can be supplied;
// it is propagated onto y through the slope of a preliminary fit.
//
// # Basic Fit
//
//	x := []float64{1, 2, 3, 4}
//	y := []float64{2.1, 3.9, 6.2, 7.8}
//	dy := []float64{0.1, 0.1, 0.1, 0.1}
//
//	res, err := fit.Fit(x, y, dy, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("m = %f +- %f\n", res.Slope(), res.SlopeErr())
//
// # Fit With X Uncertainty
//
// Passing a non-nil dx runs two passes. The first pass ignores dx and yields
// a preliminary slope m1. The second pass replaces dy with the effective
// uncertainty
//
//	dz[i] = sqrt((m1·dx[i])² + dy[i]²)
//
// and its result is returned. This is a first-order propagation valid when
// the line is a good local approximation over the scale of dx. The scheme
// runs exactly two passes; it does not iterate to a fixed point, so for large
// dx relative to the scatter the returned slope can still move if the fit
// were repeated.
//
// # Outputs
//
// A Result holds the parameters (slope, intercept), their standard errors,
// the normalized chi-squared Σr²/(n−2) and the standardized residuals
// r[i] = (y[i] − m·x[i] − q)/dy[i] for every sample.
//
// # Errors
//
// Invalid samples (length mismatch, fewer than three points, non-positive dy,
// negative dx, NaN or infinite values) are rejected before any arithmetic
// with errors matching errs.ErrInvalidInput. A singular design, such as all
// x equal, yields errs.ErrDegenerateFit. Overflow to NaN or infinity yields
// errs.ErrNonFiniteResult. No partial results are returned.
//
// # Concurrency
//
// Fit is synchronous and keeps no state between calls, so it is safe for
// concurrent use. FitEach fits many independent sample sets in parallel.
package fit
