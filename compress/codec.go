package compress

import (
	"fmt"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
)

// Compressor compresses an encoded dataset payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	// Empty input compresses to nil.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Thread Safety: implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload. rawSize is the uncompressed size
	// recorded in the dataset header; output of any other length is an error.
	Decompress(data []byte, rawSize int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compressing one payload.
type Stats struct {
	// Algorithm is the codec that produced the payload.
	Algorithm format.CompressionType
	// RawSize is the payload size before compression.
	RawSize int64
	// CompressedSize is the stored payload size.
	CompressedSize int64
}

// Ratio returns CompressedSize / RawSize, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.RawSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.RawSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s Stats) SpaceSavings() float64 {
	if s.RawSize == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}

// MaxRawSize is the largest uncompressed payload a Decompressor accepts.
// Larger rawSize values are rejected before any buffer is allocated.
const MaxRawSize = 128 << 20 // 128MiB

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
//
// Returns:
//   - Codec: shared, stateless codec
//   - error: ErrUnsupportedCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}

func checkSize(name string, out []byte, rawSize int) ([]byte, error) {
	if len(out) != rawSize {
		return nil, fmt.Errorf("%w: %s payload decompressed to %d bytes, want %d",
			errs.ErrInvalidPayloadSize, name, len(out), rawSize)
	}

	return out, nil
}

// checkRawSize rejects a header-declared size before it drives an allocation.
func checkRawSize(name string, rawSize int) error {
	if rawSize < 0 || rawSize > MaxRawSize {
		return fmt.Errorf("%w: %s payload of %d bytes exceeds limit %d",
			errs.ErrInvalidPayloadSize, name, rawSize, MaxRawSize)
	}

	return nil
}
