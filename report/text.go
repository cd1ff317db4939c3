package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/fit"
	"github.com/arloliu/linfit/internal/options"
)

// chiNormPlaces is the number of decimals for chinorm in rounded mode.
const chiNormPlaces = 3

// Text writes the fit summary to w.
//
// Parameters:
//   - w: destination writer
//   - res: fit result to render
//   - opts: layout options
//
// Returns:
//   - error: invalid option, nil result or write error
func Text(w io.Writer, res *fit.Result, opts ...Option) error {
	if res == nil {
		return fmt.Errorf("%w: nil result", errs.ErrInvalidInput)
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	var sb strings.Builder

	m, dm := formatPair(res.Slope(), res.SlopeErr(), cfg.SignificantDigits)
	q, dq := formatPair(res.Intercept(), res.InterceptErr(), cfg.SignificantDigits)
	fmt.Fprintf(&sb, "m = %s +- %s\n", m, dm)
	fmt.Fprintf(&sb, "q = %s +- %s\n", q, dq)

	chi := fmt.Sprintf("%f", res.ChiNorm)
	if cfg.SignificantDigits > 0 {
		chi = formatFixed(res.ChiNorm, chiNormPlaces)
	}
	fmt.Fprintf(&sb, "chinorm (%d ndof) = %s\n", res.DOF, chi)

	if cfg.ShowResiduals {
		sb.WriteString("r =\n")
		for _, r := range res.Residuals {
			if cfg.ResidualPlaces < 0 {
				fmt.Fprintf(&sb, "\t%f\n", r)
			} else {
				fmt.Fprintf(&sb, "\t%s\n", formatFixed(r, cfg.ResidualPlaces))
			}
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// Summary returns the fitted line with uncertainties rounded to two
// significant digits, e.g. "y = (1.940 +- 0.045)*x + (0.15 +- 0.12)".
func Summary(res *fit.Result) string {
	m, dm := RoundMeasurement(res.Slope(), res.SlopeErr(), 2)
	q, dq := RoundMeasurement(res.Intercept(), res.InterceptErr(), 2)

	return fmt.Sprintf("y = (%s +- %s)*x + (%s +- %s)", m, dm, q, dq)
}

// RoundMeasurement rounds uncertainty to digits significant digits and value
// to the same decimal place.
//
// Non-positive or non-finite uncertainties cannot set a decimal place; both
// numbers are then printed with %g.
//
// Example:
//
//	v, u := report.RoundMeasurement(1.9400001, 0.0447213, 2) // "1.940", "0.045"
func RoundMeasurement(value, uncertainty float64, digits int) (string, string) {
	if digits < 1 || !isFinite(value) || !isFinite(uncertainty) || uncertainty <= 0 {
		return fmt.Sprintf("%g", value), fmt.Sprintf("%g", uncertainty)
	}

	exact := decimal.NewFromFloat(uncertainty)
	mag := magnitude(exact)
	places := int32(digits-1) - mag

	du := exact.Round(places)
	// 0.0996 rounds to 0.10: the carry added a digit, so round one place coarser.
	if magnitude(du) > mag {
		places--
		du = exact.Round(places)
	}

	dv := decimal.NewFromFloat(value).Round(places)
	if places < 0 {
		return dv.String(), du.String()
	}

	return dv.StringFixed(places), du.StringFixed(places)
}

func formatPair(value, uncertainty float64, digits int) (string, string) {
	if digits == 0 {
		return fmt.Sprintf("%f", value), fmt.Sprintf("%f", uncertainty)
	}

	return RoundMeasurement(value, uncertainty, digits)
}

func formatFixed(v float64, places int) string {
	if !isFinite(v) {
		return fmt.Sprintf("%f", v)
	}

	return decimal.NewFromFloat(v).StringFixed(int32(places))
}

// magnitude returns the decimal exponent of the leading digit of a positive d.
// It is computed from the decimal digits, which avoids log10 rounding at
// exact powers of ten.
func magnitude(d decimal.Decimal) int32 {
	digits := len(d.Coefficient().String())

	return d.Exponent() + int32(digits) - 1
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
