package dataset

import (
	"fmt"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/encoding"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/fit"
	"github.com/arloliu/linfit/internal/hash"
)

// Decode reads a dataset frame produced by Encode.
//
// The header is validated first, then the payload size, the decompressed size
// and the checksum. The decoded samples are validated like fit input.
//
// Parameters:
//   - data: complete frame
//
// Returns:
//   - *Dataset: decoded dataset; its slices do not alias data
//   - error: ErrInvalidHeaderSize, ErrInvalidHeaderFlags, ErrUnsupportedCompression,
//     ErrInvalidPayloadSize, ErrChecksumMismatch or a sample validation error
func Decode(data []byte) (*Dataset, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload has %d bytes, header says %d",
			errs.ErrInvalidPayloadSize, len(payload), header.PayloadSize)
	}

	codec, err := compress.GetCodec(header.Flag.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload, int(header.RawSize))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	if !hash.Verify(raw, header.Checksum) {
		return nil, fmt.Errorf("%w: dataset %s", errs.ErrChecksumMismatch, header.ID)
	}

	samples, err := decodeColumns(raw, header)
	if err != nil {
		return nil, err
	}

	if err := samples.Validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", header.ID, err)
	}

	return &Dataset{
		ID:        header.ID,
		CreatedAt: header.CreatedAtTime(),
		Samples:   samples,
	}, nil
}

func decodeColumns(raw []byte, header Header) (fit.Samples, error) {
	n := int(header.SampleCount)
	width := n * encoding.FloatSize
	dec := encoding.NewFloatColumnDecoder(header.Flag.GetEndianEngine())

	columns := make([][]float64, header.Flag.ColumnCount)
	for i := range columns {
		col, err := dec.Decode(raw[i*width:(i+1)*width], n)
		if err != nil {
			return fit.Samples{}, err
		}
		columns[i] = col
	}

	s := fit.Samples{X: columns[0], Y: columns[1], DY: columns[2]}
	if header.Flag.HasDX() {
		s.DX = columns[3]
	}

	return s, nil
}
