package fit

import (
	"fmt"
	"math"
)

// Estimator predicts y for a given x from fitted coefficients.
type Estimator interface {
	// Estimate returns the predicted y at x.
	Estimate(x float64) float64
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the model coefficients.
	SetCoefficients(coeffs []float64) error
}

// LineEstimator evaluates y = m·x + q and, when built from a Result, the
// uncertainty of the prediction.
type LineEstimator struct {
	slope, intercept       float64
	slopeErr, interceptErr float64
	covariance             float64
	coeffs                 []float64 // reused by Coefficients
}

var _ Estimator = (*LineEstimator)(nil)

// NewLineEstimator creates an estimator with the given coefficients and no
// parameter uncertainty.
func NewLineEstimator(slope, intercept float64) *LineEstimator {
	return &LineEstimator{
		slope:     slope,
		intercept: intercept,
		coeffs:    make([]float64, 2),
	}
}

// Estimator returns a LineEstimator carrying the fitted parameters, their
// errors and their covariance.
func (r *Result) Estimator() *LineEstimator {
	e := NewLineEstimator(r.Params[0], r.Params[1])
	e.slopeErr = r.Errors[0]
	e.interceptErr = r.Errors[1]
	e.covariance = r.Covariance

	return e
}

// Estimate returns m·x + q.
func (e *LineEstimator) Estimate(x float64) float64 {
	return e.slope*x + e.intercept
}

// EstimateWithUncertainty returns the prediction at x and its standard error
//
//	sqrt(x²·dm² + dq² + 2x·cov(m, q))
func (e *LineEstimator) EstimateWithUncertainty(x float64) (y, dy float64) {
	variance := x*x*e.slopeErr*e.slopeErr + e.interceptErr*e.interceptErr + 2*x*e.covariance
	if variance < 0 {
		// rounding near the minimum of the variance parabola
		variance = 0
	}

	return e.Estimate(x), math.Sqrt(variance)
}

// Coefficients returns [slope, intercept].
func (e *LineEstimator) Coefficients() []float64 {
	e.coeffs[0] = e.slope
	e.coeffs[1] = e.intercept

	return e.coeffs
}

// SetCoefficients sets [slope, intercept]. The parameter uncertainties are
// cleared since they no longer describe the new coefficients.
func (e *LineEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("line model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	e.slope = coeffs[0]
	e.intercept = coeffs[1]
	e.slopeErr, e.interceptErr, e.covariance = 0, 0, 0

	return nil
}
