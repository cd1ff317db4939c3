package dataset

import (
	"fmt"

	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
)

const (
	// HasDXMask marks a dataset that carries a dx column.
	HasDXMask uint16 = 0x0001
	// EndiannessMask selects big-endian columns when set.
	EndiannessMask uint16 = 0x0002
	// ReservedMask bits must be zero.
	ReservedMask uint16 = 0x000C
	// MagicNumberMask covers bits 4-15 of Options.
	MagicNumberMask uint16 = 0xFFF0
	// MagicDatasetV1 identifies dataset format v1 (0b1110_1100_0001_0000).
	MagicDatasetV1 uint16 = 0xEC10
)

const (
	baseColumnCount = 3 // x, y, dy
	dxColumnCount   = 4 // x, y, dy, dx
)

// Flag is the packed first word of the header.
type Flag struct {
	// Options is always little-endian on disk.
	// Bit 0 is the dx flag, 0 means no dx column, 1 means dx present.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved and must be 0.
	// Bit 4-15 hold the magic number MagicDatasetV1.
	Options uint16

	// ColumnCount is 3 without dx and 4 with dx.
	ColumnCount uint8

	// Compression is the payload codec.
	Compression format.CompressionType
}

// NewFlag returns a little-endian, zstd-compressed flag without dx.
func NewFlag() Flag {
	return Flag{
		Options:     MagicDatasetV1,
		ColumnCount: baseColumnCount,
		Compression: format.CompressionZstd,
	}
}

// HasDX reports whether the dx column is present.
func (f Flag) HasDX() bool {
	return f.Options&HasDXMask != 0
}

// SetHasDX sets the dx flag and the matching column count.
func (f *Flag) SetHasDX(enabled bool) {
	if enabled {
		f.Options |= HasDXMask
		f.ColumnCount = dxColumnCount
	} else {
		f.Options &^= HasDXMask
		f.ColumnCount = baseColumnCount
	}
}

// IsBigEndian reports whether columns are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.FromFlag(f.IsBigEndian())
}

// MagicNumber returns bits 4-15 of Options.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks magic number, reserved bits, column count and compression.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicDatasetV1 {
		return fmt.Errorf("%w: magic 0x%04x", errs.ErrInvalidHeaderFlags, f.MagicNumber())
	}
	if f.Options&ReservedMask != 0 {
		return fmt.Errorf("%w: reserved bits 0x%04x", errs.ErrInvalidHeaderFlags, f.Options&ReservedMask)
	}

	want := uint8(baseColumnCount)
	if f.HasDX() {
		want = dxColumnCount
	}
	if f.ColumnCount != want {
		return fmt.Errorf("%w: column count %d, want %d", errs.ErrInvalidHeaderFlags, f.ColumnCount, want)
	}

	if !f.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, uint8(f.Compression))
	}

	return nil
}
