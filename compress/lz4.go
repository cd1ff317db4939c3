package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/linfit/errs"
)

// lz4CompressorPool reuses lz4.Compressor hash tables between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads with LZ4 block mode, the fastest
// decompression of the built-in codecs.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 block.
//
// Returns:
//   - []byte: compressed block (nil for empty input)
//   - error: compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block. The block format does not record its
// decoded length, so the buffer is sized from rawSize once rawSize is shown
// to be reachable from len(data).
func (c LZ4Compressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize("lz4", nil, rawSize)
	}
	if err := checkRawSize("lz4", rawSize); err != nil {
		return nil, err
	}
	// A block expands at most ~255x; a larger claim cannot be satisfied by data.
	if rawSize > 255*len(data)+16 {
		return nil, fmt.Errorf("%w: lz4 block of %d bytes cannot expand to %d",
			errs.ErrInvalidPayloadSize, len(data), rawSize)
	}

	buf := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return checkSize("lz4", buf[:n], rawSize)
}
