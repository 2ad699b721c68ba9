package batch

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/jval/compress"
	"github.com/arloliu/jval/errs"
	"github.com/arloliu/jval/format"
	"github.com/arloliu/jval/internal/hash"
	"github.com/arloliu/jval/internal/pool"
)

// Batch is a sealed, read-only collection of JSON texts.
type Batch struct {
	header  Header
	data    []byte // full frame
	payload []byte // uncompressed payload
	offsets []int  // start of each line in payload
}

// Open parses and verifies a batch frame.
//
// The returned Batch may reference data, which must not be modified afterwards.
//
// Errors:
//   - errs.ErrInvalidHeaderSize, errs.ErrInvalidMagic, errs.ErrInvalidHeaderFlags,
//     errs.ErrInvalidCompression: malformed header
//   - errs.ErrPayloadSize, errs.ErrChecksumMismatch, errs.ErrLineCount: corrupted payload
func Open(data []byte) (*Batch, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s payload: %w", header.Compression, err)
	}

	if uint64(len(payload)) != uint64(header.PayloadSize) {
		return nil, fmt.Errorf("%w: got %d bytes, header says %d", errs.ErrPayloadSize, len(payload), header.PayloadSize)
	}

	if sum := hash.Sum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016X, header says 0x%016X", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	offsets := lineOffsets(payload)
	if uint64(len(offsets)) != uint64(header.Count) {
		return nil, fmt.Errorf("%w: got %d lines, header says %d", errs.ErrLineCount, len(offsets), header.Count)
	}

	return &Batch{
		header:  header,
		data:    data,
		payload: payload,
		offsets: offsets,
	}, nil
}

func lineOffsets(payload []byte) []int {
	if len(payload) == 0 {
		return nil
	}

	offsets := make([]int, 0, bytes.Count(payload, []byte{'\n'})+1)
	offsets = append(offsets, 0)
	for i, c := range payload {
		if c == '\n' {
			offsets = append(offsets, i+1)
		}
	}

	return offsets
}

// Header returns the decoded frame header.
func (b *Batch) Header() Header {
	return b.header
}

// Bytes returns the encoded frame. The slice must not be modified.
func (b *Batch) Bytes() []byte {
	return b.data
}

// Len returns the number of values in the batch.
func (b *Batch) Len() int {
	return len(b.offsets)
}

// Compression returns the payload compression type.
func (b *Batch) Compression() format.CompressionType {
	return b.header.Compression
}

// Stats reports how well the payload compressed.
func (b *Batch) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      b.header.Compression,
		OriginalSize:   int64(len(b.payload)),
		CompressedSize: int64(len(b.data) - HeaderSize),
	}
}

// Line returns the JSON text of the i-th value.
func (b *Batch) Line(i int) (string, bool) {
	if i < 0 || i >= len(b.offsets) {
		return "", false
	}

	return string(b.line(i)), true
}

func (b *Batch) line(i int) []byte {
	start := b.offsets[i]
	end := len(b.payload)
	if i+1 < len(b.offsets) {
		end = b.offsets[i+1] - 1 // drop the separator
	}

	return b.payload[start:end]
}

// Lines returns an iterator over the JSON text of every value, in insertion order.
func (b *Batch) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range b.offsets {
			if !yield(string(b.line(i))) {
				return
			}
		}
	}
}

// WriteLines writes every value to w as JSON Lines, each followed by '\n'.
func (b *Batch) WriteLines(w io.Writer) (int64, error) {
	bb := pool.GetBatchBuffer()
	defer pool.PutBatchBuffer(bb)

	bb.Grow(len(b.payload) + 1)
	_, _ = bb.Write(b.payload)
	_ = bb.WriteByte('\n')

	return bb.WriteTo(w)
}
