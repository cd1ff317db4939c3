// Package endian selects the byte order used for dataset columns.
//
// EndianEngine merges binary.ByteOrder and binary.AppendByteOrder so one value
// can both append columns while encoding and read them back while decoding.
// Little-endian is the default for new datasets; big-endian is kept for
// archives produced on big-endian acquisition hardware.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(v))
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// FromFlag returns the big-endian engine when bigEndian is set and the
// little-endian engine otherwise.
func FromFlag(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
