package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/internal/options"
)

// EncoderConfig controls how a dataset frame is written.
type EncoderConfig struct {
	// Compression is the payload codec. Defaults to Zstd.
	Compression format.CompressionType
	// Engine is the byte order of header fields and columns. Defaults to little-endian.
	Engine endian.EndianEngine
	// ID overrides the dataset ID when not uuid.Nil.
	ID uuid.UUID
	// CreatedAt overrides the dataset creation time when not zero.
	CreatedAt time.Time
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig(opts ...EncoderOption) (*EncoderConfig, error) {
	cfg := &EncoderConfig{
		Compression: format.CompressionZstd,
		Engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the payload codec.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: %w: 0x%02x", errs.ErrInvalidOption, errs.ErrUnsupportedCompression, uint8(compression))
		}
		cfg.Compression = compression

		return nil
	})
}

// WithLittleEndian writes the frame little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.Engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes the frame big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.Engine = endian.GetBigEndianEngine()
	})
}

// WithID stores id instead of the dataset's own ID.
func WithID(id uuid.UUID) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.ID = id
	})
}

// WithCreatedAt stores t instead of the dataset's creation time.
func WithCreatedAt(t time.Time) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if t.IsZero() {
			return fmt.Errorf("%w: zero creation time", errs.ErrInvalidOption)
		}
		cfg.CreatedAt = t

		return nil
	})
}
