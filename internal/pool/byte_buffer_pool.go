package pool

import (
	"io"
	"sync"
)

// Default sizes for the shared pools.
const (
	EncodeBufferDefaultSize  = 256             // a single encoded value
	EncodeBufferMaxThreshold = 1024 * 64       // 64KiB
	BatchBufferDefaultSize   = 1024 * 16       // 16KiB
	BatchBufferMaxThreshold  = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a growable byte slice handed out by a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Truncate shrinks the buffer to its first n bytes.
// Panics if n is negative or greater than the current length.
func (bb *ByteBuffer) Truncate(n int) {
	if n < 0 || n > len(bb.B) {
		panic("Truncate: invalid length")
	}
	bb.B = bb.B[:n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by at least EncodeBufferDefaultSize, larger ones by 25% of
// their capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := EncodeBufferDefaultSize
	if cap(bb.B) > 4*EncodeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put instead
// of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
// A maxThreshold of zero keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	encodeDefaultPool = NewByteBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)
	batchDefaultPool  = NewByteBufferPool(BatchBufferDefaultSize, BatchBufferMaxThreshold)
)

// GetEncodeBuffer retrieves a ByteBuffer sized for a single encoded value.
func GetEncodeBuffer() *ByteBuffer {
	return encodeDefaultPool.Get()
}

// PutEncodeBuffer returns a ByteBuffer to the encode pool.
func PutEncodeBuffer(bb *ByteBuffer) {
	encodeDefaultPool.Put(bb)
}

// GetBatchBuffer retrieves a ByteBuffer sized for a batch payload.
func GetBatchBuffer() *ByteBuffer {
	return batchDefaultPool.Get()
}

// PutBatchBuffer returns a ByteBuffer to the batch pool.
func PutBatchBuffer(bb *ByteBuffer) {
	batchDefaultPool.Put(bb)
}
