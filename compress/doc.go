// Package compress provides the payload codecs of the dataset format.
//
// A dataset payload is a block of raw float64 columns. Measurement series are
// often smooth or repetitive (equal uncertainties, evenly spaced x), so a
// general-purpose codec usually shrinks them considerably:
//
//   - None: payload stored as is
//   - Zstd: best ratio, moderate speed (klauspost/compress/zstd)
//   - S2: balanced ratio and speed (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4 block mode)
//
// Codecs are stateless values; Zstd and LZ4 keep pooled encoders internally
// and are safe for concurrent use.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	stored, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(stored, rawSize)
package compress
