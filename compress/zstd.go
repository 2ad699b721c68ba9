package compress

// ZstdCompressor provides Zstandard compression for batch payloads.
//
// Zstd gives the best ratio of the built-in codecs on JSON text and is the
// natural choice for batches that are archived or shipped over the network.
//
// The default build uses the pure Go klauspost/compress/zstd implementation.
// Building with the gozstd tag (and cgo) switches to valyala/gozstd, which
// wraps the reference C library. Both produce standard Zstd frames, so batches
// written by one build are readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
