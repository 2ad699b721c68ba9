package compress

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jval/format"
)

var allCompressionTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// jsonLinesPayload builds a payload shaped like a sealed batch.
func jsonLinesPayload(lines int) []byte {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch i % 4 {
		case 0:
			fmt.Fprintf(&b, "%d", i)
		case 1:
			fmt.Fprintf(&b, "%q", "abcd")
		case 2:
			fmt.Fprintf(&b, "%d", int64(i)*1_000_000_007)
		default:
			fmt.Fprintf(&b, "[%d,%d,%d]", i, i+1, i+2)
		}
	}

	return []byte(b.String())
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allCompressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := CreateCodec(format.CompressionType(0x9), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid payload compression")
}

func TestGetCodec(t *testing.T) {
	for _, ct := range allCompressionTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"single line": []byte("1"),
		"demo values": []byte("1\n\"abcd\"\n10\n[1]"),
		"small batch": jsonLinesPayload(64),
		"large batch": jsonLinesPayload(20000),
	}

	for _, ct := range allCompressionTypes {
		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				codec, err := GetCodec(ct)
				require.NoError(t, err)

				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(payload, decompressed))
			})
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestCodec_CompressesRepetitiveJSON(t *testing.T) {
	payload := jsonLinesPayload(20000)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), ct.String())
	}
}

func TestCodec_CorruptedInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte("[1]")

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{"good compression", CompressionStats{format.CompressionZstd, 1000, 300}, 0.3, 70.0},
		{"no compression benefit", CompressionStats{format.CompressionNone, 500, 500}, 1.0, 0.0},
		{"compression overhead", CompressionStats{format.CompressionS2, 100, 120}, 1.2, -20.0},
		{"zero original size", CompressionStats{format.CompressionLZ4, 0, 100}, 0.0, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}
