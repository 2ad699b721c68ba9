package batch

import (
	"fmt"

	"github.com/arloliu/jval/endian"
	"github.com/arloliu/jval/errs"
	"github.com/arloliu/jval/format"
)

const (
	// HeaderSize is the fixed size of a batch header in bytes.
	HeaderSize = 24
	// Magic identifies a batch frame.
	Magic uint16 = 0xB47C

	flagBigEndian uint8 = 1 << 0
	knownFlags          = flagBigEndian
)

// Header is the decoded form of the fixed-size batch header.
type Header struct {
	// Flags holds option bits; only the big-endian bit is defined.
	Flags uint8
	// Compression is the codec applied to the payload.
	Compression format.CompressionType
	// Count is the number of values in the batch.
	Count uint32
	// PayloadSize is the uncompressed payload size in bytes.
	PayloadSize uint32
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64
}

// BigEndian reports whether the multi-byte fields after the magic are big-endian.
func (h Header) BigEndian() bool {
	return h.Flags&flagBigEndian != 0
}

func (h Header) engine() endian.EndianEngine {
	return endian.GetEngine(h.BigEndian())
}

// Append appends the encoded header to dst.
func (h Header) Append(dst []byte) []byte {
	engine := h.engine()

	dst = append(dst, byte(Magic&0xFF), byte(Magic>>8), h.Flags, byte(h.Compression))
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return append(dst, 0, 0, 0, 0)
}

// Parse decodes the header from the first HeaderSize bytes of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if magic := uint16(data[0]) | uint16(data[1])<<8; magic != Magic {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagic, magic)
	}

	h.Flags = data[2]
	if h.Flags&^knownFlags != 0 {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidHeaderFlags, h.Flags)
	}

	h.Compression = format.CompressionType(data[3])
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompression, data[3])
	}

	engine := h.engine()
	h.Count = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	return nil
}
