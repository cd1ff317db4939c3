package compress

// NoOpCompressor stores payloads unchanged.
//
// Both directions return the input slice itself; callers must not modify the
// input while the result is in use.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as is.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as is after checking its length against rawSize.
func (c NoOpCompressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	return checkSize("uncompressed", data, rawSize)
}
