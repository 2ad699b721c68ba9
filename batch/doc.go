// Package batch packs encoded values into a self-describing binary frame.
//
// A Builder encodes each added value with the JSON encoder and keeps the
// results as JSON Lines. Finish seals the lines into a Batch: a fixed 24-byte
// header followed by the (optionally compressed) payload. Open parses such a
// frame back, verifies it and exposes the JSON text of every value.
//
// # Frame Layout
//
//	offset  size  field
//	0       2     magic 0xB47C, always little-endian
//	2       1     flags (bit 0: big-endian header fields)
//	3       1     compression type (format.CompressionType)
//	4       4     value count
//	8       4     uncompressed payload size
//	12      8     xxHash64 of the uncompressed payload
//	20      4     reserved, zero
//	24      -     payload
//
// The uncompressed payload is the JSON text of each value joined by '\n',
// without a trailing newline. JSON text produced by the encoder never contains
// a raw newline, so the separator is unambiguous.
//
// # Usage
//
//	b, err := batch.NewBuilder(batch.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	_ = b.Add(value.Int(1))
//	_ = b.Add(value.Text("abcd"))
//	sealed, err := b.Finish()
//
//	opened, err := batch.Open(sealed.Bytes())
//	for line := range opened.Lines() {
//	    fmt.Println(line)
//	}
//
// Lines are returned as raw JSON text; this package does not parse JSON.
//
// # Thread Safety
//
// A Builder is not safe for concurrent use. A Batch is read-only and may be
// shared between goroutines.
package batch
