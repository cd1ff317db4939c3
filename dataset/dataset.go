// Package dataset stores sample sets in a compact binary frame and reads
// them back, so that measurement runs can be archived and re-fitted later.
//
// A frame is a 48-byte header followed by the payload: the x, y, dy and
// optional dx columns as raw float64 values, compressed with one of the
// codecs in package compress. The header records the sample count, both
// payload sizes and an xxHash64 checksum of the uncompressed columns, so
// truncation and corruption are detected on Decode.
//
//	ds := dataset.New(samples)
//	data, err := dataset.Encode(ds, dataset.WithCompression(format.CompressionS2))
//	...
//	ds, err = dataset.Decode(data)
//	res, err := ds.Fit()
//
// Sample sets can also be loaded from CSV with ReadCSV.
package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/linfit/fit"
)

// Dataset is a sample set with its archive identity.
type Dataset struct {
	// ID identifies the measurement run.
	ID uuid.UUID
	// CreatedAt is stored with microsecond precision.
	CreatedAt time.Time
	// Samples holds the measured points.
	Samples fit.Samples
}

// New wraps samples in a Dataset with a random ID and the current time.
func New(samples fit.Samples) *Dataset {
	return &Dataset{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		Samples:   samples,
	}
}

// Fit fits a line to the dataset samples.
func (d *Dataset) Fit(opts ...fit.Option) (*fit.Result, error) {
	return fit.FitSamples(d.Samples, opts...)
}
