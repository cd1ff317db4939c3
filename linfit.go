// Package linfit fits straight lines to measurements with known uncertainties.
//
// It computes the weighted least-squares estimate of y = m*x + q, the
// standard errors of m and q, the normalized chi-squared and the normalized
// residuals. When the x values carry an uncertainty dx too, it is folded into
// the weights with a second pass.
//
// # Basic Usage
//
//	x := []float64{1, 2, 3, 4}
//	y := []float64{2.1, 3.9, 6.2, 7.8}
//	dy := []float64{0.1, 0.1, 0.1, 0.1}
//
//	res, err := linfit.Fit(x, y, dy, nil)
//	if err != nil {
//	    return err
//	}
//	_ = linfit.Report(os.Stdout, res)
//
// # Archiving Measurements
//
// Sample sets can be stored in a compact checksummed binary frame:
//
//	data, err := linfit.Encode(fit.Samples{X: x, Y: y, DY: dy},
//	    dataset.WithCompression(format.CompressionZstd))
//	...
//	ds, err := linfit.Decode(data)
//
// # Package Structure
//
// This package wraps the most common calls. For full control use the
// packages directly:
//   - fit: the fitting routine, batch fitting and estimators
//   - report: text rendering of results
//   - dataset: binary frames and CSV input
//   - compress, encoding, endian, format: building blocks of the frame
//   - errs: sentinel errors
package linfit

import (
	"io"

	"github.com/arloliu/linfit/dataset"
	"github.com/arloliu/linfit/fit"
	"github.com/arloliu/linfit/report"
)

// Fit fits y = m*x + q to the samples. dx may be nil.
//
// See fit.Fit for the full contract.
func Fit(x, y, dy, dx []float64, opts ...fit.Option) (*fit.Result, error) {
	return fit.Fit(x, y, dy, dx, opts...)
}

// Encode stores samples in a new dataset frame with a random ID.
//
// Parameters:
//   - samples: sample set to archive
//   - opts: encoder options such as dataset.WithCompression
//
// Returns:
//   - []byte: encoded frame
//   - error: invalid samples or options
func Encode(samples fit.Samples, opts ...dataset.EncoderOption) ([]byte, error) {
	return dataset.Encode(dataset.New(samples), opts...)
}

// Decode reads a dataset frame produced by Encode.
func Decode(data []byte) (*dataset.Dataset, error) {
	return dataset.Decode(data)
}

// Report writes the text summary of res to w.
func Report(w io.Writer, res *fit.Result, opts ...report.Option) error {
	return report.Text(w, res, opts...)
}
