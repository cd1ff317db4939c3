package fit

import (
	"fmt"
	"math"

	"github.com/arloliu/linfit/errs"
)

// MinSamples is the smallest sample count accepted by Fit. A straight line
// has two parameters, so three points leave one degree of freedom.
const MinSamples = 3

// Samples is a set of measured points.
//
// X, Y and DY must have the same length. DX is optional: nil means the x
// values are exact. When present it must have the same length as X.
type Samples struct {
	X  []float64
	Y  []float64
	DY []float64
	DX []float64
}

// Len returns the number of samples.
func (s Samples) Len() int {
	return len(s.X)
}

// HasDX reports whether x uncertainties are present.
func (s Samples) HasDX() bool {
	return s.DX != nil
}

// Validate checks the sample set invariants.
//
// The returned error matches errs.ErrInvalidInput and one of
// errs.ErrLengthMismatch, errs.ErrInsufficientDOF, errs.ErrNonFiniteInput,
// errs.ErrNonPositiveDY or errs.ErrNegativeDX.
func (s Samples) Validate() error {
	n := len(s.X)
	if len(s.Y) != n || len(s.DY) != n {
		return invalidInput(errs.ErrLengthMismatch, "len(x)=%d, len(y)=%d, len(dy)=%d", n, len(s.Y), len(s.DY))
	}
	if s.DX != nil && len(s.DX) != n {
		return invalidInput(errs.ErrLengthMismatch, "len(x)=%d, len(dx)=%d", n, len(s.DX))
	}
	if n < MinSamples {
		return invalidInput(errs.ErrInsufficientDOF, "%d samples, need at least %d", n, MinSamples)
	}

	for i := range n {
		if !isFinite(s.X[i]) || !isFinite(s.Y[i]) || !isFinite(s.DY[i]) {
			return invalidInput(errs.ErrNonFiniteInput, "sample %d: x=%g, y=%g, dy=%g", i, s.X[i], s.Y[i], s.DY[i])
		}
		if s.DY[i] <= 0 {
			return invalidInput(errs.ErrNonPositiveDY, "dy[%d]=%g", i, s.DY[i])
		}
		if s.DX == nil {
			continue
		}
		if !isFinite(s.DX[i]) {
			return invalidInput(errs.ErrNonFiniteInput, "dx[%d]=%g", i, s.DX[i])
		}
		if s.DX[i] < 0 {
			return invalidInput(errs.ErrNegativeDX, "dx[%d]=%g", i, s.DX[i])
		}
	}

	return nil
}

func invalidInput(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", errs.ErrInvalidInput, kind, fmt.Sprintf(format, args...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
