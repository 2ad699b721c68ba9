package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	_, _ = bb.Write([]byte(`"abcd"`))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("[1,2"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.NoError(t, bb.WriteByte(']'))

	require.Equal(t, "[1,2]", string(bb.Bytes()))
}

func TestByteBuffer_Truncate(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("1\n10\n"))

	bb.Truncate(2)
	require.Equal(t, "1\n", string(bb.Bytes()))

	require.Panics(t, func() { bb.Truncate(3) })
	require.Panics(t, func() { bb.Truncate(-1) })
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("10"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.Equal(t, "10", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("1"))

	_, err := bb.WriteTo(failingWriter{})
	require.EqualError(t, err, "write failed")
}

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.Grow(32)

	assert.Equal(t, 64, bb.Cap(), "Grow should not reallocate when capacity is sufficient")
}

func TestByteBuffer_Grow_SmallBuffer(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("12345678"))

	bb.Grow(1)

	assert.Equal(t, 8+EncodeBufferDefaultSize, bb.Cap())
	assert.Equal(t, "12345678", string(bb.Bytes()), "Grow should preserve data")
}

func TestByteBuffer_Grow_LargeBuffer(t *testing.T) {
	size := 8 * EncodeBufferDefaultSize
	bb := NewByteBuffer(size)
	bb.B = bb.B[:size]

	bb.Grow(1)

	assert.Equal(t, size+size/4, bb.Cap())
}

func TestByteBuffer_Grow_MoreThanDefaultGrowth(t *testing.T) {
	bb := NewByteBuffer(0)
	required := EncodeBufferDefaultSize * 3

	bb.Grow(required)

	assert.GreaterOrEqual(t, bb.Cap(), required)
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetEncodeBuffer(t *testing.T) {
	bb := GetEncodeBuffer()
	defer PutEncodeBuffer(bb)

	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
}

func TestGetBatchBuffer(t *testing.T) {
	bb := GetBatchBuffer()
	defer PutBatchBuffer(bb)

	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
}

func TestPut_NilBuffer(t *testing.T) {
	require.NotPanics(t, func() {
		PutEncodeBuffer(nil)
		PutBatchBuffer(nil)
	})
}

func TestPool_ResetsOnPut(t *testing.T) {
	p := NewByteBufferPool(16, 0)

	bb := p.Get()
	_, _ = bb.Write([]byte("stale"))
	p.Put(bb)

	// Whatever buffer comes back, it must be empty.
	got := p.Get()
	require.Equal(t, 0, got.Len())
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	_, _ = bb.Write([]byte("oversized"))
	p.Put(bb)

	// An oversized buffer is dropped, not reset.
	require.Equal(t, "oversized", string(bb.Bytes()))
}

func TestByteBufferPool_MaxThreshold_Accept(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	_, _ = bb.Write([]byte("ok"))
	p.Put(bb)

	require.Equal(t, 0, bb.Len(), "accepted buffer should be reset")
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := GetEncodeBuffer()
				_, _ = bb.Write([]byte("[1]"))
				assert.Equal(t, "[1]", string(bb.Bytes()))
				PutEncodeBuffer(bb)
			}
		}()
	}
	wg.Wait()
}
