// Package value defines Value, the tagged variant accepted by the encoder.
//
// A Value holds exactly one of the supported kinds:
//
//	value.Int(1)               // Integer, 32-bit
//	value.Text("abcd")         // Text
//	value.Long(10)             // Long-integer, 64-bit
//	value.IntSequence(1, 2, 3) // Sequence-of-Integer, 32-bit elements
//
// Values are immutable. The zero Value has kind format.KindInvalid and is
// rejected by the encoder.
package value

import (
	"slices"

	"github.com/arloliu/jval/format"
)

// Value is an immutable tagged variant over the encodable kinds.
//
// The kind alone decides which payload field is meaningful; accessors for any
// other kind report false.
type Value struct {
	kind format.Kind
	num  int64
	text string
	seq  []int32
}

// Int returns an Integer value.
func Int(n int32) Value {
	return Value{kind: format.KindInt, num: int64(n)}
}

// Text returns a Text value.
func Text(s string) Value {
	return Value{kind: format.KindText, text: s}
}

// Long returns a Long-integer value.
func Long(n int64) Value {
	return Value{kind: format.KindLong, num: n}
}

// IntSequence returns a Sequence-of-Integer value holding a copy of elems.
//
// Later changes to the caller's slice are not observed by the Value.
func IntSequence(elems ...int32) Value {
	return Value{kind: format.KindIntSequence, seq: slices.Clone(elems)}
}

// Kind returns the variant tag.
func (v Value) Kind() format.Kind {
	return v.kind
}

// IsValid reports whether v holds one of the encodable kinds.
func (v Value) IsValid() bool {
	return v.kind.Valid()
}

// Int returns the payload of an Integer value.
func (v Value) Int() (int32, bool) {
	if v.kind != format.KindInt {
		return 0, false
	}

	return int32(v.num), true //nolint:gosec
}

// Text returns the payload of a Text value.
func (v Value) Text() (string, bool) {
	if v.kind != format.KindText {
		return "", false
	}

	return v.text, true
}

// Long returns the payload of a Long-integer value.
func (v Value) Long() (int64, bool) {
	if v.kind != format.KindLong {
		return 0, false
	}

	return v.num, true
}

// IntSequence returns a copy of the elements of a Sequence-of-Integer value.
func (v Value) IntSequence() ([]int32, bool) {
	if v.kind != format.KindIntSequence {
		return nil, false
	}

	return slices.Clone(v.seq), true
}

// Len returns the number of elements of a Sequence-of-Integer value, or 0 for any other kind.
func (v Value) Len() int {
	if v.kind != format.KindIntSequence {
		return 0
	}

	return len(v.seq)
}

// Elems returns the elements of a Sequence-of-Integer value without copying.
// The returned slice must not be modified.
func (v Value) Elems() []int32 {
	if v.kind != format.KindIntSequence {
		return nil
	}

	return v.seq
}

// Num returns the payload of an Integer or Long-integer value widened to int64.
func (v Value) Num() (int64, bool) {
	switch v.kind { //nolint:exhaustive
	case format.KindInt, format.KindLong:
		return v.num, true
	default:
		return 0, false
	}
}
