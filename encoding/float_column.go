package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/pool"
)

// FloatSize is the encoded size of one float64 value.
const FloatSize = 8

// FloatColumnEncoder writes float64 values as raw IEEE-754 bits in the byte
// order of its engine.
type FloatColumnEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*FloatColumnEncoder)(nil)

// NewFloatColumnEncoder creates an encoder backed by a pooled column buffer.
//
// Parameters:
//   - engine: byte order of the encoded values
//
// Returns:
//   - *FloatColumnEncoder: encoder ready for Write and WriteSlice
func NewFloatColumnEncoder(engine endian.EndianEngine) *FloatColumnEncoder {
	return &FloatColumnEncoder{
		engine: engine,
		buf:    pool.GetColumnBuffer(),
	}
}

// Write appends one value.
//
// Panics if Finish has been called.
func (e *FloatColumnEncoder) Write(v float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.engine.PutUint64(e.buf.Extend(FloatSize), math.Float64bits(v))
}

// WriteSlice appends all values after a single buffer growth.
//
// Panics if Finish has been called.
func (e *FloatColumnEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.count += len(values)
	dst := e.buf.Extend(len(values) * FloatSize)
	for i, v := range values {
		off := i * FloatSize
		e.engine.PutUint64(dst[off:off+FloatSize], math.Float64bits(v))
	}
}

// Bytes returns the encoded values.
//
// Panics if Finish has been called.
func (e *FloatColumnEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *FloatColumnEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
//
// Panics if Finish has been called.
func (e *FloatColumnEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool.
func (e *FloatColumnEncoder) Finish() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// FloatColumnDecoder reads columns produced by FloatColumnEncoder. It is
// stateless and safe for concurrent use.
type FloatColumnDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = FloatColumnDecoder{}

// NewFloatColumnDecoder creates a decoder. The engine must match the encoder's.
func NewFloatColumnDecoder(engine endian.EndianEngine) FloatColumnDecoder {
	return FloatColumnDecoder{engine: engine}
}

// All yields the first count values of data. It yields nothing when data is
// shorter than count values.
func (d FloatColumnDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 || len(data) < count*FloatSize {
			return
		}

		for i := range count {
			off := i * FloatSize
			if !yield(math.Float64frombits(d.engine.Uint64(data[off : off+FloatSize]))) {
				return
			}
		}
	}
}

// Decode returns a freshly allocated slice of count values.
//
// Returns:
//   - []float64: decoded column
//   - error: ErrInvalidPayloadSize when len(data) != count*8
func (d FloatColumnDecoder) Decode(data []byte, count int) ([]float64, error) {
	if count < 0 || len(data) != count*FloatSize {
		return nil, fmt.Errorf("%w: column of %d values needs %d bytes, got %d",
			errs.ErrInvalidPayloadSize, count, count*FloatSize, len(data))
	}

	out := make([]float64, 0, count)
	for v := range d.All(data, count) {
		out = append(out, v)
	}

	return out, nil
}
