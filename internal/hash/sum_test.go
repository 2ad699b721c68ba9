package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Sum([]byte(tt.data)))
		})
	}
}

func TestSum_DetectsChange(t *testing.T) {
	a := Sum([]byte("1\n\"abcd\"\n10\n[1]"))
	b := Sum([]byte("1\n\"abcd\"\n10\n[2]"))

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Sum([]byte("1\n\"abcd\"\n10\n[1]")))
}
