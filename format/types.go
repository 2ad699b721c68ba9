package format

type (
	Kind            uint8
	CompressionType uint8
)

const (
	KindInvalid     Kind = 0x0 // KindInvalid is the kind of the zero Value and is never encodable.
	KindInt         Kind = 0x1 // KindInt represents a 32-bit signed integer.
	KindText        Kind = 0x2 // KindText represents a UTF-8 string.
	KindLong        Kind = 0x3 // KindLong represents a 64-bit signed integer.
	KindIntSequence Kind = 0x4 // KindIntSequence represents an ordered sequence of 32-bit integers.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindInt:
		return "Int"
	case KindText:
		return "Text"
	case KindLong:
		return "Long"
	case KindIntSequence:
		return "IntSequence"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the encodable kinds.
func (k Kind) Valid() bool {
	return k >= KindInt && k <= KindIntSequence
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a supported compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
