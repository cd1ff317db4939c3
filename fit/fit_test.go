package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/linfit/errs"
)

const tolerance = 1e-9

func concreteSamples() Samples {
	return Samples{
		X:  []float64{1, 2, 3, 4},
		Y:  []float64{2.1, 3.9, 6.2, 7.8},
		DY: []float64{0.1, 0.1, 0.1, 0.1},
	}
}

func TestFit_ConcreteScenario(t *testing.T) {
	s := concreteSamples()

	res, err := Fit(s.X, s.Y, s.DY, nil)
	require.NoError(t, err)

	// s0=400 s1=1000 s2=3000 sy0=2000 sy1=5970 delta=200000
	require.InDelta(t, 1.94, res.Slope(), tolerance)
	require.InDelta(t, 0.15, res.Intercept(), tolerance)
	require.InDelta(t, math.Sqrt(0.002), res.SlopeErr(), tolerance)
	require.InDelta(t, math.Sqrt(0.015), res.InterceptErr(), tolerance)
	require.InDelta(t, -0.005, res.Covariance, tolerance)
	require.InDelta(t, 4.1, res.ChiNorm, tolerance)
	require.Equal(t, 2, res.DOF)
	require.Equal(t, 1, res.Passes)
	require.InDeltaSlice(t, []float64{0.1, -1.3, 2.3, -1.1}, res.Residuals, tolerance)
}

func TestFit_MatchesWeightedRegression(t *testing.T) {
	tests := []struct {
		name string
		s    Samples
	}{
		{"concrete", concreteSamples()},
		{"mixed weights", Samples{
			X:  []float64{0, 1.5, 3, 4.5, 6, 7.5},
			Y:  []float64{9.8, 9.4, 8.1, 7.9, 7.2, 6.1},
			DY: []float64{0.1, 0.2, 0.1, 0.3, 0.5, 0.05},
		}},
		{"negative x", Samples{
			X:  []float64{-4, -2, 0, 2, 3},
			Y:  []float64{-20.1, -13.2, -7.3, -0.4, 2.9},
			DY: []float64{2, 1, 0.5, 0.25, 0.4},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := make([]float64, tt.s.Len())
			for i, dy := range tt.s.DY {
				w[i] = 1 / (dy * dy)
			}
			intercept, slope := stat.LinearRegression(tt.s.X, tt.s.Y, w, false)

			res, err := FitSamples(tt.s)
			require.NoError(t, err)
			require.InDelta(t, slope, res.Slope(), tolerance)
			require.InDelta(t, intercept, res.Intercept(), tolerance)
		})
	}
}

func TestFit_ExactRecovery(t *testing.T) {
	tests := []struct {
		name  string
		slope float64
		inter float64
		x     []float64
		dy    []float64
	}{
		{"unit weights", 2, 1, []float64{1, 2, 3, 4, 5}, []float64{1, 1, 1, 1, 1}},
		{"mixed weights", -0.5, 10, []float64{0, 1.5, 3, 4.5, 6, 7.5}, []float64{0.1, 0.2, 0.1, 0.3, 0.5, 0.05}},
		{"negative x", 3.25, -7, []float64{-4, -2, 0, 2}, []float64{2, 1, 0.5, 0.25}},
		{"three points", 1e-3, 1e3, []float64{10, 20, 40}, []float64{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := make([]float64, len(tt.x))
			for i, xi := range tt.x {
				y[i] = tt.slope*xi + tt.inter
			}

			res, err := Fit(tt.x, y, tt.dy, nil)
			require.NoError(t, err)
			require.InDelta(t, tt.slope, res.Slope(), 1e-9)
			require.InDelta(t, tt.inter, res.Intercept(), 1e-8)
			require.InDelta(t, 0, res.ChiNorm, 1e-12)
			require.Len(t, res.Residuals, len(tt.x))
			for i, r := range res.Residuals {
				require.InDelta(t, 0, r, 1e-7, "residual %d", i)
			}
		})
	}
}

func TestFit_UncertaintyScaling(t *testing.T) {
	s := Samples{
		X:  []float64{0.5, 1.1, 2.3, 2.9, 4.2, 5.0},
		Y:  []float64{1.2, 2.0, 4.9, 5.8, 8.1, 10.4},
		DY: []float64{0.2, 0.3, 0.2, 0.4, 0.3, 0.5},
	}
	base, err := FitSamples(s)
	require.NoError(t, err)

	for _, k := range []float64{0.01, 0.5, 3, 1000} {
		scaled := make([]float64, len(s.DY))
		for i, d := range s.DY {
			scaled[i] = d * k
		}

		res, err := Fit(s.X, s.Y, scaled, nil)
		require.NoError(t, err)

		require.InDelta(t, base.Slope(), res.Slope(), 1e-9)
		require.InDelta(t, base.Intercept(), res.Intercept(), 1e-9)
		require.InEpsilon(t, base.SlopeErr()*k, res.SlopeErr(), 1e-9)
		require.InEpsilon(t, base.InterceptErr()*k, res.InterceptErr(), 1e-9)
		require.InEpsilon(t, base.ChiNorm/(k*k), res.ChiNorm, 1e-9)
		for i := range res.Residuals {
			require.InDelta(t, base.Residuals[i]/k, res.Residuals[i], 1e-9)
		}
	}
}

func TestFit_XShift(t *testing.T) {
	s := Samples{
		X:  []float64{1, 2, 3, 4, 5},
		Y:  []float64{1.9, 4.2, 5.8, 8.1, 10.2},
		DY: []float64{0.1, 0.2, 0.1, 0.2, 0.1},
	}
	base, err := FitSamples(s)
	require.NoError(t, err)

	for _, c := range []float64{-3, 0.5, 100} {
		shifted := make([]float64, len(s.X))
		for i, xi := range s.X {
			shifted[i] = xi + c
		}

		res, err := Fit(shifted, s.Y, s.DY, nil)
		require.NoError(t, err)
		require.InDelta(t, base.Slope(), res.Slope(), 1e-8)
		require.InDelta(t, base.Intercept()-base.Slope()*c, res.Intercept(), 1e-6)
		require.InDelta(t, base.SlopeErr(), res.SlopeErr(), 1e-9)
		require.InDelta(t, base.ChiNorm, res.ChiNorm, 1e-8)
	}
}

func TestFit_TwoPassZeroDX(t *testing.T) {
	s := concreteSamples()

	single, err := Fit(s.X, s.Y, s.DY, nil)
	require.NoError(t, err)

	double, err := Fit(s.X, s.Y, s.DY, []float64{0, 0, 0, 0})
	require.NoError(t, err)

	require.Equal(t, 2, double.Passes)
	require.InDelta(t, single.Slope(), double.Slope(), tolerance)
	require.InDelta(t, single.Intercept(), double.Intercept(), tolerance)
	require.InDelta(t, single.SlopeErr(), double.SlopeErr(), tolerance)
	require.InDelta(t, single.InterceptErr(), double.InterceptErr(), tolerance)
	require.InDelta(t, single.ChiNorm, double.ChiNorm, tolerance)
	require.InDeltaSlice(t, single.Residuals, double.Residuals, tolerance)
}

func TestFit_TwoPassUniformDX(t *testing.T) {
	s := concreteSamples()
	s.DX = []float64{0.05, 0.05, 0.05, 0.05}

	res, err := FitSamples(s)
	require.NoError(t, err)

	// Uniform dz keeps the relative weights, so only the uncertainties move.
	ratio := math.Hypot(1.94*0.05, 0.1) / 0.1
	require.Equal(t, 2, res.Passes)
	require.InDelta(t, 1.94, res.Slope(), tolerance)
	require.InDelta(t, 0.15, res.Intercept(), tolerance)
	require.InEpsilon(t, math.Sqrt(0.002)*ratio, res.SlopeErr(), 1e-9)
	require.InEpsilon(t, math.Sqrt(0.015)*ratio, res.InterceptErr(), 1e-9)
	require.InEpsilon(t, 4.1/(ratio*ratio), res.ChiNorm, 1e-9)
}

func TestFit_TwoPassMatchesManualSecondPass(t *testing.T) {
	s := Samples{
		X:  []float64{0, 1, 2, 3, 4, 5},
		Y:  []float64{0.3, 2.2, 3.8, 6.4, 7.9, 10.1},
		DY: []float64{0.2, 0.2, 0.3, 0.3, 0.4, 0.4},
		DX: []float64{0.1, 0, 0.2, 0.05, 0.3, 0.1},
	}

	first, err := Fit(s.X, s.Y, s.DY, nil)
	require.NoError(t, err)

	dz := make([]float64, s.Len())
	for i := range dz {
		dz[i] = math.Sqrt(first.Slope()*s.DX[i]*first.Slope()*s.DX[i] + s.DY[i]*s.DY[i])
	}
	want, err := Fit(s.X, s.Y, dz, nil)
	require.NoError(t, err)

	got, err := FitSamples(s)
	require.NoError(t, err)

	require.InDelta(t, want.Slope(), got.Slope(), tolerance)
	require.InDelta(t, want.Intercept(), got.Intercept(), tolerance)
	require.InDelta(t, want.SlopeErr(), got.SlopeErr(), tolerance)
	require.InDelta(t, want.InterceptErr(), got.InterceptErr(), tolerance)
	require.InDelta(t, want.ChiNorm, got.ChiNorm, tolerance)
	require.InDeltaSlice(t, want.Residuals, got.Residuals, tolerance)
	require.Less(t, got.ChiNorm, first.ChiNorm)
}

func TestFit_DoesNotModifyInputs(t *testing.T) {
	s := concreteSamples()
	s.DX = []float64{0.1, 0.2, 0.3, 0.4}
	orig := Samples{
		X:  append([]float64(nil), s.X...),
		Y:  append([]float64(nil), s.Y...),
		DY: append([]float64(nil), s.DY...),
		DX: append([]float64(nil), s.DX...),
	}

	_, err := FitSamples(s)
	require.NoError(t, err)
	require.Equal(t, orig, s)
}

func TestFit_Degenerate(t *testing.T) {
	x := []float64{1, 1, 1}
	y := []float64{1, 2, 3}
	dy := []float64{0.1, 0.2, 0.3}

	t.Run("single pass", func(t *testing.T) {
		res, err := Fit(x, y, dy, nil)
		require.ErrorIs(t, err, errs.ErrDegenerateFit)
		require.Nil(t, res)
	})

	t.Run("first pass failure stops two-pass fit", func(t *testing.T) {
		res, err := Fit(x, y, dy, []float64{0.1, 0.1, 0.1})
		require.ErrorIs(t, err, errs.ErrDegenerateFit)
		require.ErrorContains(t, err, "first pass")
		require.Nil(t, res)
	})

	t.Run("nearly constant x", func(t *testing.T) {
		_, err := Fit([]float64{1, 1 + 1e-7, 1 + 2e-7}, y, dy, nil)
		require.ErrorIs(t, err, errs.ErrDegenerateFit)
	})
}

func TestFit_DegeneracyTolerance(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{1, 2.1, 2.9}
	dy := []float64{1, 1, 1}

	// relative determinant is var(x)/mean(x²) = 1/7
	_, err := Fit(x, y, dy, nil, WithDegeneracyTolerance(0.1))
	require.NoError(t, err)

	_, err = Fit(x, y, dy, nil, WithDegeneracyTolerance(0.2))
	require.ErrorIs(t, err, errs.ErrDegenerateFit)
}

func TestFit_InvalidInput(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name string
		s    Samples
		want error
	}{
		{
			name: "x longer than y",
			s:    Samples{X: []float64{1, 2, 3, 4, 5}, Y: []float64{1, 2, 3, 4}, DY: []float64{1, 1, 1, 1, 1}},
			want: errs.ErrLengthMismatch,
		},
		{
			name: "dy shorter",
			s:    Samples{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, 1}},
			want: errs.ErrLengthMismatch,
		},
		{
			name: "dx shorter",
			s:    Samples{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, 1, 1}, DX: []float64{0.1}},
			want: errs.ErrLengthMismatch,
		},
		{
			name: "empty non-nil dx",
			s:    Samples{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, 1, 1}, DX: []float64{}},
			want: errs.ErrLengthMismatch,
		},
		{
			name: "two samples",
			s:    Samples{X: []float64{1, 2}, Y: []float64{1, 2}, DY: []float64{1, 1}},
			want: errs.ErrInsufficientDOF,
		},
		{
			name: "no samples",
			s:    Samples{},
			want: errs.ErrInsufficientDOF,
		},
		{
			name: "zero dy",
			s:    Samples{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, 0, 1}},
			want: errs.ErrNonPositiveDY,
		},
		{
			name: "negative dy",
			s:    Samples{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, 1, -0.1}},
			want: errs.ErrNonPositiveDY,
		},
		{
			name: "negative dx",
			s:    Samples{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, 1, 1}, DX: []float64{0, -1, 0}},
			want: errs.ErrNegativeDX,
		},
		{
			name: "NaN x",
			s:    Samples{X: []float64{1, nan, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, 1, 1}},
			want: errs.ErrNonFiniteInput,
		},
		{
			name: "infinite dy",
			s:    Samples{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, inf, 1}},
			want: errs.ErrNonFiniteInput,
		},
		{
			name: "NaN dx",
			s:    Samples{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}, DY: []float64{1, 1, 1}, DX: []float64{0, 0, nan}},
			want: errs.ErrNonFiniteInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FitSamples(tt.s)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, res)
		})
	}
}

func TestFit_NonFiniteResult(t *testing.T) {
	x := []float64{1e200, 2e200, 3e200}
	y := []float64{1, 2, 3}
	dy := []float64{1, 1, 1}

	_, err := Fit(x, y, dy, nil)
	require.ErrorIs(t, err, errs.ErrNonFiniteResult)
	require.NotErrorIs(t, err, errs.ErrInvalidInput)
}

func TestFit_InvalidOptions(t *testing.T) {
	s := concreteSamples()

	for _, opt := range []Option{
		WithDegeneracyTolerance(-1),
		WithDegeneracyTolerance(math.NaN()),
		WithDegeneracyTolerance(math.Inf(1)),
		WithConcurrency(0),
	} {
		_, err := FitSamples(s, opt)
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	}
}

func TestResult_Formatting(t *testing.T) {
	res := &Result{Params: [2]float64{1.94, -0.15}, Errors: [2]float64{0.05, 0.12}, ChiNorm: 4.1, DOF: 2}

	require.Equal(t, "y = 1.9400*x - 0.1500", res.Formula())
	require.Equal(t, "Result{m: 1.94 ± 0.05, q: -0.15 ± 0.12, chinorm: 4.1000, ndof: 2}", res.String())
}
