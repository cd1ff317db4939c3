package fit

import (
	"fmt"

	"github.com/arloliu/linfit/errs"
)

// Result is the outcome of a fit.
type Result struct {
	// Params holds the slope and the intercept.
	Params [2]float64
	// Errors holds the standard errors of the slope and the intercept.
	Errors [2]float64
	// ChiNorm is the chi-squared divided by the degrees of freedom.
	// Values near 1 mean the scatter matches the stated uncertainties.
	ChiNorm float64
	// Residuals holds (y[i] − m·x[i] − q)/dy[i] for every sample. In a
	// two-pass fit dy is the effective uncertainty including dx.
	Residuals []float64
	// DOF is the number of degrees of freedom, n − 2.
	DOF int
	// Covariance is the covariance of slope and intercept.
	Covariance float64
	// Passes is 1 for a dy-only fit and 2 when dx was propagated.
	Passes int
}

// Slope returns the fitted slope m.
func (r *Result) Slope() float64 { return r.Params[0] }

// Intercept returns the fitted intercept q.
func (r *Result) Intercept() float64 { return r.Params[1] }

// SlopeErr returns the standard error of the slope.
func (r *Result) SlopeErr() float64 { return r.Errors[0] }

// InterceptErr returns the standard error of the intercept.
func (r *Result) InterceptErr() float64 { return r.Errors[1] }

// Formula returns the fitted line as text, e.g. "y = 1.9400*x + 0.1500".
func (r *Result) Formula() string {
	sign := "+"
	q := r.Params[1]
	if q < 0 {
		sign = "-"
		q = -q
	}

	return fmt.Sprintf("y = %.4f*x %s %.4f", r.Params[0], sign, q)
}

// String returns a compact summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{m: %.6g ± %.6g, q: %.6g ± %.6g, chinorm: %.4f, ndof: %d}",
		r.Params[0], r.Errors[0], r.Params[1], r.Errors[1], r.ChiNorm, r.DOF)
}

func (r *Result) checkFinite() error {
	values := [...]float64{r.Params[0], r.Params[1], r.Errors[0], r.Errors[1], r.Covariance, r.ChiNorm}
	for _, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s", errs.ErrNonFiniteResult, r)
		}
	}
	for i, v := range r.Residuals {
		if !isFinite(v) {
			return fmt.Errorf("%w: residual %d is %g", errs.ErrNonFiniteResult, i, v)
		}
	}

	return nil
}
