package pool

import "sync"

const (
	// ColumnBufferDefaultSize is the initial capacity of a pooled column buffer,
	// enough for 512 float64 samples.
	ColumnBufferDefaultSize = 1024 * 4 // 4KiB
	// ColumnBufferMaxThreshold is the largest buffer kept in the pool.
	ColumnBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a growable byte slice that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow makes room for at least n more bytes without changing the length.
//
// Small buffers grow by ColumnBufferDefaultSize, larger ones by 25% of their
// capacity, and never by less than n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := ColumnBufferDefaultSize
	if cap(bb.B) > 4*ColumnBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Extend grows the buffer if needed and lengthens it by n bytes, returning
// the newly exposed region.
func (bb *ByteBuffer) Extend(n int) []byte {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start : start+n]
}

// Write appends data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool. Buffers that grew
// beyond maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var columnDefaultPool = NewByteBufferPool(ColumnBufferDefaultSize, ColumnBufferMaxThreshold)

// GetColumnBuffer retrieves a ByteBuffer from the default column pool.
func GetColumnBuffer() *ByteBuffer {
	return columnDefaultPool.Get()
}

// PutColumnBuffer returns a ByteBuffer to the default column pool.
func PutColumnBuffer(bb *ByteBuffer) {
	columnDefaultPool.Put(bb)
}
