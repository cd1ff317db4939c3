package encoding

import "iter"

// ColumnarEncoder accumulates one column of a dataset payload.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded column. The slice is valid until Finish and
	// must not be modified.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the encoded size in bytes.
	Size() int

	// Finish returns the internal buffer to the pool. The encoder is unusable
	// afterwards:
	//
	//	enc := NewFloatColumnEncoder(engine)
	//	defer enc.Finish()
	Finish()

	// Write appends a single value.
	Write(v T)

	// WriteSlice appends all values with one buffer growth.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values back from an encoded column.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values. Short data yields fewer values.
	All(data []byte, count int) iter.Seq[T]

	// Decode returns exactly count values or an error when data has the wrong size.
	Decode(data []byte, count int) ([]T, error)
}
