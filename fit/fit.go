package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/pool"
)

// Fit fits y = m·x + q to the samples by weighted least squares.
//
// dy holds the y uncertainties and must be strictly positive. dx holds the
// optional x uncertainties; pass nil when x is exact. With dx present the fit
// runs two passes (see the package documentation) and returns the second.
//
// Parameters:
//   - x, y, dy: sample coordinates and y uncertainties, all of length n >= 3
//   - dx: x uncertainties of length n, or nil
//   - opts: fit options
//
// Returns:
//   - *Result: fitted parameters, uncertainties, chinorm and residuals
//   - error: validation, degeneracy or non-finite result error
//
// Example:
//
//	res, err := fit.Fit(x, y, dy, dx)
//	if errors.Is(err, errs.ErrDegenerateFit) {
//	    // all x equal
//	}
func Fit(x, y, dy, dx []float64, opts ...Option) (*Result, error) {
	return FitSamples(Samples{X: x, Y: y, DY: dy, DX: dx}, opts...)
}

// FitSamples is Fit taking a Samples value.
func FitSamples(s Samples, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return fitSamples(s, cfg)
}

func fitSamples(s Samples, cfg *Config) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	first, err := weightedFit(s.X, s.Y, s.DY, cfg.DegeneracyTolerance)
	if err != nil {
		if s.HasDX() {
			return nil, fmt.Errorf("first pass: %w", err)
		}

		return nil, err
	}

	if !s.HasDX() {
		return first, nil
	}

	// Project the x uncertainty onto y through the preliminary slope.
	dz, release := pool.GetFloat64Slice(s.Len())
	defer release()

	floats.ScaleTo(dz, first.Params[0], s.DX)
	for i, dy := range s.DY {
		dz[i] = math.Hypot(dz[i], dy)
	}

	second, err := weightedFit(s.X, s.Y, dz, cfg.DegeneracyTolerance)
	if err != nil {
		return nil, fmt.Errorf("second pass: %w", err)
	}
	second.Passes = 2

	return second, nil
}

// weightedFit runs a single closed-form pass. Inputs are assumed validated.
func weightedFit(x, y, dy []float64, tolerance float64) (*Result, error) {
	n := len(x)

	w, releaseW := pool.GetFloat64Slice(n)
	defer releaseW()
	wx, releaseWX := pool.GetFloat64Slice(n)
	defer releaseWX()

	// w = 1/dy²
	floats.MulTo(w, dy, dy)
	for i := range w {
		w[i] = 1 / w[i]
	}
	floats.MulTo(wx, w, x)

	s0 := floats.Sum(w)
	s1 := floats.Sum(wx)
	s2 := floats.Dot(wx, x)
	sy0 := floats.Dot(w, y)
	sy1 := floats.Dot(wx, y)

	delta := s0*s2 - s1*s1
	if !isFinite(delta) {
		return nil, fmt.Errorf("%w: determinant %g", errs.ErrNonFiniteResult, delta)
	}
	if math.Abs(delta) <= tolerance*s0*s2 {
		return nil, fmt.Errorf("%w: determinant %g is zero within tolerance %g", errs.ErrDegenerateFit, delta, tolerance)
	}

	slope := (s0*sy1 - sy0*s1) / delta
	intercept := (sy0*s2 - s1*sy1) / delta

	// r = (y − m·x − q)/dy
	residuals := make([]float64, n)
	floats.ScaleTo(residuals, -slope, x)
	floats.Add(residuals, y)
	floats.AddConst(-intercept, residuals)
	floats.Div(residuals, dy)

	res := &Result{
		Params:     [2]float64{slope, intercept},
		Errors:     [2]float64{math.Sqrt(s0 / delta), math.Sqrt(s2 / delta)},
		Covariance: -s1 / delta,
		Residuals:  residuals,
		ChiNorm:    floats.Dot(residuals, residuals) / float64(n-2),
		DOF:        n - 2,
		Passes:     1,
	}

	if err := res.checkFinite(); err != nil {
		return nil, err
	}

	return res, nil
}
