// Package endian selects the byte order of multi-byte batch header fields.
//
// EndianEngine merges binary.ByteOrder and binary.AppendByteOrder so a header
// can be both parsed in place and appended to a buffer through one value:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, count)
//	count = engine.Uint32(buf[4:8])
//
// The returned engines are the immutable binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
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

// GetEngine returns the big-endian engine if bigEndian is set, otherwise the little-endian one.
func GetEngine(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	b := engine.AppendUint16(nil, 0x0102)
	return b[0] == 0x01
}
