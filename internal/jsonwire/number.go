package jsonwire

import "strconv"

// AppendInt appends the decimal form of n as a JSON number.
//
// JSON has a single number type, so integers of every width share this
// representation: an optional minus sign followed by digits, without
// leading zeros, exponent or suffix.
func AppendInt(dst []byte, n int64) []byte {
	return strconv.AppendInt(dst, n, 10)
}

// AppendIntArray appends src as a JSON array of numbers, preserving order.
// An empty or nil slice is written as [].
func AppendIntArray[T ~int8 | ~int16 | ~int32 | ~int64](dst []byte, src []T) []byte {
	dst = append(dst, '[')
	for i, v := range src {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(v), 10)
	}

	return append(dst, ']')
}
