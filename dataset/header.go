package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/encoding"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
)

// HeaderSize is the fixed size of the dataset header.
const HeaderSize = 48

// MaxSamples is the largest sample count a frame may hold: four columns of
// MaxSamples values fill compress.MaxRawSize.
const MaxSamples = compress.MaxRawSize / (dxColumnCount * encoding.FloatSize)

// Header is the fixed-size section at the start of a dataset frame.
type Header struct {
	// Flag holds options, column count and compression. Byte offset 0-3.
	Flag Flag
	// SampleCount is the number of samples. Byte offset 4-7.
	SampleCount uint32
	// RawSize is the uncompressed payload size, 8*SampleCount*ColumnCount. Byte offset 8-11.
	RawSize uint32
	// PayloadSize is the stored payload size. Byte offset 12-15.
	PayloadSize uint32
	// Checksum is the xxHash64 of the uncompressed payload. Byte offset 16-23.
	Checksum uint64
	// ID identifies the dataset. Byte offset 24-39.
	ID uuid.UUID
	// CreatedAt is the creation time in unix microseconds. Byte offset 40-47.
	CreatedAt int64
}

// Parse parses the header from exactly HeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize, flag validation errors or ErrInvalidPayloadSize
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// Options is little-endian regardless of the column byte order.
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.ColumnCount = data[2]
	h.Flag.Compression = format.CompressionType(data[3])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.SampleCount = engine.Uint32(data[4:8])
	h.RawSize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])
	copy(h.ID[:], data[24:40])
	h.CreatedAt = int64(engine.Uint64(data[40:48])) //nolint: gosec

	if h.SampleCount > MaxSamples {
		return fmt.Errorf("%w: %d samples exceed limit %d", errs.ErrInvalidPayloadSize, h.SampleCount, MaxSamples)
	}

	want := uint64(h.SampleCount) * uint64(h.Flag.ColumnCount) * encoding.FloatSize
	if uint64(h.RawSize) != want {
		return fmt.Errorf("%w: raw size %d, want %d for %d samples",
			errs.ErrInvalidPayloadSize, h.RawSize, want, h.SampleCount)
	}

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.ColumnCount
	b[3] = byte(h.Flag.Compression)
	engine.PutUint32(b[4:8], h.SampleCount)
	engine.PutUint32(b[8:12], h.RawSize)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.Checksum)
	copy(b[24:40], h.ID[:])
	engine.PutUint64(b[40:48], uint64(h.CreatedAt)) //nolint: gosec

	return b
}

// CreatedAtTime returns CreatedAt as a UTC time.
func (h *Header) CreatedAtTime() time.Time {
	return time.UnixMicro(h.CreatedAt).UTC()
}

// Stats returns the compression statistics of the payload.
func (h *Header) Stats() compress.Stats {
	return compress.Stats{
		Algorithm:      h.Flag.Compression,
		RawSize:        int64(h.RawSize),
		CompressedSize: int64(h.PayloadSize),
	}
}

// ParseHeader parses the header at the start of a dataset frame.
//
// Parameters:
//   - data: frame bytes, at least HeaderSize long
//
// Returns:
//   - Header: parsed header
//   - error: ErrInvalidHeaderSize or header validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
