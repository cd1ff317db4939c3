// Package encoding serializes dataset columns.
//
// Every column of a dataset (x, y, dy and the optional dx) is a run of
// float64 values stored as raw IEEE-754 bits, 8 bytes each, in the byte order
// chosen for the dataset:
//
//	enc := encoding.NewFloatColumnEncoder(endian.GetLittleEndianEngine())
//	defer enc.Finish()
//	enc.WriteSlice(samples.X)
//	payload = append(payload, enc.Bytes()...)
//
//	dec := encoding.NewFloatColumnDecoder(endian.GetLittleEndianEngine())
//	x, err := dec.Decode(payload[:n*8], n)
//
// Raw storage keeps every bit of the measurement, including signed zeros.
// Size reduction is left to the payload codec in package compress.
package encoding
