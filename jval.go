// Package jval encodes a small, closed set of primitive values as JSON text.
//
// jval deliberately supports only four kinds of value, each with exactly one
// canonical JSON form:
//
//   - Integer (32-bit): decimal digits, e.g. 1
//   - Text: a quoted JSON string, e.g. "abcd"
//   - Long-integer (64-bit): decimal digits, e.g. 10
//   - Sequence-of-Integer: a JSON array of numbers, e.g. [1]
//
// Values are built with the constructors in the value package and encoded
// without reflection. Encoded values can additionally be packed into compressed,
// checksummed batches (see the batch package).
//
// # Basic Usage
//
//	s, err := jval.Encode(value.Text("abcd"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s) // "abcd"
//
// Batching values as JSON Lines:
//
//	builder, _ := jval.NewCompressedBatchBuilder()
//	builder.Add(value.Int(1))
//	builder.Add(value.IntSequence(1, 2, 3))
//	sealed, _ := builder.Finish()
//
//	opened, _ := jval.OpenBatch(sealed.Bytes())
//	opened.WriteLines(os.Stdout)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoder and
// batch packages. For fine-grained control, use those packages directly.
package jval

import (
	"io"

	"github.com/arloliu/jval/batch"
	"github.com/arloliu/jval/encoder"
	"github.com/arloliu/jval/format"
	"github.com/arloliu/jval/value"
)

var defaultEncoder = encoder.New()

var compressedBatchOptions = []batch.BuilderOption{
	batch.WithLittleEndian(),
	batch.WithCompression(format.CompressionZstd),
}

// Encode returns the JSON text of v.
//
// Returns errs.ErrUnsupportedValueKind (wrapped) if v is the zero Value.
//
// Example:
//
//	s, _ := jval.Encode(value.IntSequence(1)) // [1]
func Encode(v value.Value) (string, error) {
	return defaultEncoder.Encode(v)
}

// MustEncode is like Encode but panics if v cannot be encoded.
//
// Intended for values built from literals, where an error is a programming mistake.
func MustEncode(v value.Value) string {
	s, err := defaultEncoder.Encode(v)
	if err != nil {
		panic(err)
	}

	return s
}

// AppendEncode appends the JSON text of v to dst. On error dst is returned unchanged.
func AppendEncode(dst []byte, v value.Value) ([]byte, error) {
	return defaultEncoder.AppendEncode(dst, v)
}

// EncodeTo writes the JSON text of v to w. Nothing is written on error.
func EncodeTo(w io.Writer, v value.Value) (int, error) {
	return defaultEncoder.EncodeTo(w, v)
}

// NewBatchBuilder creates a batch builder with custom options.
//
// Available options:
//   - batch.WithLittleEndian() / batch.WithBigEndian()
//   - batch.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - batch.WithEncoder(enc)
//
// Returns an error if the configuration is invalid.
func NewBatchBuilder(opts ...batch.BuilderOption) (*batch.Builder, error) {
	return batch.NewBuilder(opts...)
}

// NewDefaultBatchBuilder creates an uncompressed, little-endian batch builder.
//
// Best for small batches, where compression framing costs more than it saves.
func NewDefaultBatchBuilder() (*batch.Builder, error) {
	return batch.NewBuilder()
}

// NewCompressedBatchBuilder creates a Zstd-compressed, little-endian batch builder.
//
// Additional options are applied after the defaults and may override them.
func NewCompressedBatchBuilder(opts ...batch.BuilderOption) (*batch.Builder, error) {
	allOpts := append(append([]batch.BuilderOption{}, compressedBatchOptions...), opts...)
	return batch.NewBuilder(allOpts...)
}

// OpenBatch parses and verifies a sealed batch.
//
// Parameters:
//   - data: The raw frame bytes (from Batch.Bytes() or storage)
//
// Returns:
//   - *batch.Batch: The verified batch
//   - error: Header, decompression or checksum error
func OpenBatch(data []byte) (*batch.Batch, error) {
	return batch.Open(data)
}
