package batch

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/jval/compress"
	"github.com/arloliu/jval/encoder"
	"github.com/arloliu/jval/errs"
	"github.com/arloliu/jval/format"
	"github.com/arloliu/jval/internal/hash"
	"github.com/arloliu/jval/internal/options"
	"github.com/arloliu/jval/internal/pool"
	"github.com/arloliu/jval/value"
)

// MaxValueCount is the largest number of values a batch can hold.
const MaxValueCount = math.MaxUint32

type builderConfig struct {
	compression format.CompressionType
	bigEndian   bool
	encoder     *encoder.Encoder
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*builderConfig]

// WithCompression sets the payload compression. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) BuilderOption {
	return options.New(func(cfg *builderConfig) error {
		if !compression.Valid() {
			return fmt.Errorf("invalid payload compression: %s", compression)
		}
		cfg.compression = compression

		return nil
	})
}

// WithBigEndian writes the header's multi-byte fields in big-endian order.
func WithBigEndian() BuilderOption {
	return options.NoError(func(cfg *builderConfig) {
		cfg.bigEndian = true
	})
}

// WithLittleEndian writes the header's multi-byte fields in little-endian order (default).
func WithLittleEndian() BuilderOption {
	return options.NoError(func(cfg *builderConfig) {
		cfg.bigEndian = false
	})
}

// WithEncoder sets the encoder used by Add. A nil encoder keeps the default.
func WithEncoder(enc *encoder.Encoder) BuilderOption {
	return options.NoError(func(cfg *builderConfig) {
		if enc != nil {
			cfg.encoder = enc
		}
	})
}

// Builder accumulates encoded values until Finish seals them into a Batch.
type Builder struct {
	cfg      builderConfig
	codec    compress.Codec
	buf      *pool.ByteBuffer
	offsets  []int // start of each line in buf
	finished bool
}

// NewBuilder creates a Builder.
//
// Returns an error if any option is invalid.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{
			compression: format.CompressionNone,
			encoder:     encoder.New(),
		},
	}

	if err := options.Apply(&b.cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(b.cfg.compression, "payload")
	if err != nil {
		return nil, err
	}
	b.codec = codec
	b.buf = pool.GetBatchBuffer()

	return b, nil
}

// Add encodes v and appends it to the batch as one line.
//
// Nothing is appended if v cannot be encoded.
func (b *Builder) Add(v value.Value) error {
	if b.finished {
		return errs.ErrBatchFinished
	}

	if uint64(len(b.offsets)) >= MaxValueCount {
		return errs.ErrTooManyValues
	}

	mark := b.buf.Len()
	if len(b.offsets) > 0 {
		_ = b.buf.WriteByte('\n')
	}
	start := b.buf.Len()

	out, err := b.cfg.encoder.AppendEncode(b.buf.B, v)
	if err != nil {
		b.buf.Truncate(mark)
		return fmt.Errorf("failed to add value %d: %w", len(b.offsets), err)
	}
	b.buf.B = out
	b.offsets = append(b.offsets, start)

	return nil
}

// Len returns the number of values added so far.
func (b *Builder) Len() int {
	return len(b.offsets)
}

// Size returns the uncompressed payload size accumulated so far.
func (b *Builder) Size() int {
	if b.buf == nil {
		return 0
	}

	return b.buf.Len()
}

// Finish compresses the payload and returns the sealed Batch.
//
// Finish fails with errs.ErrEmptyBatch if no value was added; the Builder stays
// usable in that case. After a successful Finish the Builder rejects further
// calls with errs.ErrBatchFinished.
func (b *Builder) Finish() (*Batch, error) {
	if b.finished {
		return nil, errs.ErrBatchFinished
	}

	if len(b.offsets) == 0 {
		return nil, errs.ErrEmptyBatch
	}

	payload := b.buf.Bytes()
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("payload size %d exceeds maximum %d", len(payload), uint32(math.MaxUint32))
	}

	compressed, err := b.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	header := Header{
		Compression: b.cfg.compression,
		Count:       uint32(len(b.offsets)), //nolint:gosec
		PayloadSize: uint32(len(payload)),   //nolint:gosec
		Checksum:    hash.Sum(payload),
	}
	if b.cfg.bigEndian {
		header.Flags |= flagBigEndian
	}

	data := make([]byte, 0, HeaderSize+len(compressed))
	data = header.Append(data)
	data = append(data, compressed...)

	sealed := &Batch{
		header:  header,
		data:    data,
		offsets: b.offsets,
	}
	if b.cfg.compression == format.CompressionNone {
		sealed.payload = data[HeaderSize:]
	} else {
		sealed.payload = slices.Clone(payload)
	}

	pool.PutBatchBuffer(b.buf)
	b.buf = nil
	b.offsets = nil
	b.finished = true

	return sealed, nil
}
