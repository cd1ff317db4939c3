package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/linfit/errs"
)

// zstdDecoderPool keeps warmed-up decoders; klauspost/compress decoders run
// allocation free after the first use.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecoderMaxMemory(MaxRawSize),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// ZstdCompressor compresses payloads with Zstandard. It gives the best ratio
// of the built-in codecs and suits long-term archives of measurement runs.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Compress compresses data with a pooled encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decodes data with a pooled decoder.
//
// The frame's declared content size must equal rawSize, and decoder memory is
// capped at MaxRawSize, so a forged header cannot force a large allocation.
func (c ZstdCompressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize("zstd", nil, rawSize)
	}
	if err := checkRawSize("zstd", rawSize); err != nil {
		return nil, err
	}

	var frame zstd.Header
	if err := frame.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if frame.HasFCS && frame.FrameContentSize != uint64(rawSize) {
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes, want %d",
			errs.ErrInvalidPayloadSize, frame.FrameContentSize, rawSize)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return checkSize("zstd", out, rawSize)
}
