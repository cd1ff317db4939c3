package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/fit"
)

// ReadCSV reads samples from comma-separated columns x,y,dy[,dx].
//
// Lines starting with '#' are comments and blank lines are skipped. The first
// record may be a header row; it is recognised by a non-numeric first field.
// The first data row fixes the column count, 3 or 4, for the whole input.
//
// The returned samples are not validated; fit.Fit and Encode do that.
//
// Example input:
//
//	# run 42
//	x,y,dy
//	1,2.1,0.1
//	2,3.9,0.1
func ReadCSV(r io.Reader) (fit.Samples, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var (
		s       fit.Samples
		columns int
		first   = true
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fit.Samples{}, fmt.Errorf("%w: csv: %w", errs.ErrInvalidInput, err)
		}

		line, _ := reader.FieldPos(0)
		if first {
			first = false
			if isHeaderRow(record) {
				continue
			}
		}

		if columns == 0 {
			columns = len(record)
			if columns != 3 && columns != 4 {
				return fit.Samples{}, fmt.Errorf("%w: csv line %d: %d columns, want 3 or 4",
					errs.ErrInvalidInput, line, columns)
			}
		}
		if len(record) != columns {
			return fit.Samples{}, fmt.Errorf("%w: %w: csv line %d: %d columns, want %d",
				errs.ErrInvalidInput, errs.ErrLengthMismatch, line, len(record), columns)
		}

		var row [4]float64
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return fit.Samples{}, fmt.Errorf("%w: csv line %d column %d: %w", errs.ErrInvalidInput, line, i+1, err)
			}
			row[i] = v
		}

		s.X = append(s.X, row[0])
		s.Y = append(s.Y, row[1])
		s.DY = append(s.DY, row[2])
		if columns == 4 {
			s.DX = append(s.DX, row[3])
		}
	}

	if columns == 0 {
		return fit.Samples{}, fmt.Errorf("%w: csv: no samples", errs.ErrInvalidInput)
	}

	return s, nil
}

// WriteCSV writes samples as x,y,dy[,dx] with a header row.
func WriteCSV(w io.Writer, s fit.Samples) error {
	if err := s.Validate(); err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	header := []string{"x", "y", "dy"}
	if s.HasDX() {
		header = append(header, "dx")
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for i := range s.Len() {
		record[0] = formatFloat(s.X[i])
		record[1] = formatFloat(s.Y[i])
		record[2] = formatFloat(s.DY[i])
		if s.HasDX() {
			record[3] = formatFloat(s.DX[i])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)

	return err != nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
