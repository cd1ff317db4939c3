package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/linfit/errs"
)

// S2Compressor compresses payloads with S2, a faster Snappy extension.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data with S2 block encoding.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block after checking its declared length.
func (c S2Compressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize("s2", nil, rawSize)
	}
	if err := checkRawSize("s2", rawSize); err != nil {
		return nil, err
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n != rawSize {
		return nil, fmt.Errorf("%w: s2 payload declares %d bytes, want %d",
			errs.ErrInvalidPayloadSize, n, rawSize)
	}

	out, err := s2.Decode(make([]byte, rawSize), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return checkSize("s2", out, rawSize)
}
