// Package compress provides compression codecs for sealed batch payloads.
//
// A batch payload is a run of JSON texts separated by newlines. JSON text is
// highly repetitive (brackets, commas, quoted keys and short digit runs), so a
// general-purpose compressor usually shrinks it well. The codec is selected per
// batch and recorded in the batch header, so readers never need to be told
// which algorithm was used.
//
// Supported algorithms:
//   - None: payload stored as-is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// All codecs implement Codec:
//
//	codec, err := compress.CreateCodec(format.CompressionS2, "payload")
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress(payload)
//	original, err := codec.Decompress(packed)
//
// All codec implementations are safe for concurrent use. Zstd and LZ4 keep
// pooled encoder state internally.
package compress
