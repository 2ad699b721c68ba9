// Package jsonwire holds the low-level rules for writing JSON text.
//
// Every function appends to a caller-owned slice and never allocates beyond
// growing that slice.
package jsonwire

import (
	"slices"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// AppendQuote appends src to dst as a JSON string per RFC 8259, section 7.
//
// Only the characters the grammar requires are escaped: the quotation mark,
// the reverse solidus and the C0 control characters. Backspace, form feed,
// newline, carriage return and tab use their short escapes; the remaining
// controls use \u00XX. Invalid UTF-8 bytes are replaced with U+FFFD, so the
// output is always valid JSON.
func AppendQuote(dst []byte, src string) []byte {
	dst = slices.Grow(dst, len(`"`)+len(src)+len(`"`))
	dst = append(dst, '"')

	var i, n int
	for n < len(src) {
		// Handle single-byte ASCII.
		if c := src[n]; c < utf8.RuneSelf {
			n++
			if needEscapeASCII(c) {
				dst = append(dst, src[i:n-1]...)
				dst = appendEscapedASCII(dst, c)
				i = n
			}

			continue
		}

		// Handle multi-byte Unicode.
		r, rn := utf8.DecodeRuneInString(src[n:])
		n += rn
		if r == utf8.RuneError && rn == 1 {
			dst = append(dst, src[i:n-rn]...)
			dst = append(dst, "\ufffd"...)
			i = n
		}
	}
	dst = append(dst, src[i:n]...)

	return append(dst, '"')
}

func needEscapeASCII(c byte) bool {
	return c < ' ' || c == '"' || c == '\\'
}

func appendEscapedASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\':
		return append(dst, '\\', c)
	case '\b':
		return append(dst, `\b`...)
	case '\f':
		return append(dst, `\f`...)
	case '\n':
		return append(dst, `\n`...)
	case '\r':
		return append(dst, `\r`...)
	case '\t':
		return append(dst, `\t`...)
	default:
		return append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
	}
}
