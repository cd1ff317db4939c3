package dataset

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/encoding"
	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/hash"
)

// Encode writes ds as a dataset frame.
//
// The samples are validated with the same rules as fit.Fit, so every frame
// Encode produces can be fitted after decoding. ds is not modified; a missing
// ID or creation time is filled in for the frame only.
//
// Parameters:
//   - ds: dataset to encode
//   - opts: encoder options
//
// Returns:
//   - []byte: header followed by the compressed payload
//   - error: invalid samples, invalid options or compression failure
func Encode(ds *Dataset, opts ...EncoderOption) ([]byte, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", errs.ErrInvalidInput)
	}

	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	s := ds.Samples
	if s.Len() > MaxSamples {
		return nil, fmt.Errorf("%w: %d samples exceed limit %d", errs.ErrInvalidInput, s.Len(), MaxSamples)
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	flag := NewFlag()
	flag.Compression = cfg.Compression
	flag.SetHasDX(s.HasDX())
	if endian.IsBigEndian(cfg.Engine) {
		flag.WithBigEndian()
	}

	n := s.Len()
	rawSize := n * int(flag.ColumnCount) * encoding.FloatSize

	enc := encoding.NewFloatColumnEncoder(flag.GetEndianEngine())
	defer enc.Finish()

	enc.WriteSlice(s.X)
	enc.WriteSlice(s.Y)
	enc.WriteSlice(s.DY)
	if s.HasDX() {
		enc.WriteSlice(s.DX)
	}
	raw := enc.Bytes()

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes", errs.ErrInvalidPayloadSize, len(payload))
	}

	header := Header{
		Flag:        flag,
		SampleCount: uint32(n),            //nolint: gosec
		RawSize:     uint32(rawSize),      //nolint: gosec
		PayloadSize: uint32(len(payload)), //nolint: gosec
		Checksum:    hash.Checksum(raw),
		ID:          frameID(ds, cfg),
		CreatedAt:   frameTime(ds, cfg).UnixMicro(),
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

func frameID(ds *Dataset, cfg *EncoderConfig) uuid.UUID {
	switch {
	case cfg.ID != uuid.Nil:
		return cfg.ID
	case ds.ID != uuid.Nil:
		return ds.ID
	default:
		return uuid.New()
	}
}

func frameTime(ds *Dataset, cfg *EncoderConfig) time.Time {
	switch {
	case !cfg.CreatedAt.IsZero():
		return cfg.CreatedAt
	case !ds.CreatedAt.IsZero():
		return ds.CreatedAt
	default:
		return time.Now()
	}
}
