// Package encoder converts value.Value into canonical JSON text.
//
// The encoder is an explicit switch over the value kinds; it never inspects
// Go types through reflection. Each supported kind maps to exactly one rule:
//
//	Int          1       -> 1
//	Text         "abcd"  -> "abcd"
//	Long         10      -> 10
//	IntSequence  [1]     -> [1]
//
// Any other kind, including the zero Value, fails with
// errs.ErrUnsupportedValueKind and produces no output.
package encoder

import (
	"fmt"
	"io"

	"github.com/arloliu/jval/errs"
	"github.com/arloliu/jval/format"
	"github.com/arloliu/jval/internal/jsonwire"
	"github.com/arloliu/jval/internal/pool"
	"github.com/arloliu/jval/value"
)

// Encoder turns values into JSON text.
//
// An Encoder holds no mutable state and is safe for concurrent use. The zero
// Encoder is ready to use.
type Encoder struct{}

// New returns an Encoder. It takes no options: the output for each kind is fixed.
func New() *Encoder {
	return &Encoder{}
}

// Encode returns the JSON text of v.
//
// Parameters:
//   - v: Value to encode
//
// Returns:
//   - string: JSON text of v (empty on error)
//   - error: ErrUnsupportedValueKind if v's kind is not encodable
func (e *Encoder) Encode(v value.Value) (string, error) {
	bb := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(bb)

	out, err := e.AppendEncode(bb.B, v)
	if err != nil {
		return "", err
	}
	bb.B = out

	return string(out), nil
}

// AppendEncode appends the JSON text of v to dst.
//
// On error dst is returned unchanged.
func (e *Encoder) AppendEncode(dst []byte, v value.Value) ([]byte, error) {
	switch v.Kind() { //nolint:exhaustive
	case format.KindInt, format.KindLong:
		n, _ := v.Num()
		return jsonwire.AppendInt(dst, n), nil
	case format.KindText:
		s, _ := v.Text()
		return jsonwire.AppendQuote(dst, s), nil
	case format.KindIntSequence:
		return jsonwire.AppendIntArray(dst, v.Elems()), nil
	default:
		return dst, fmt.Errorf("%w: %s", errs.ErrUnsupportedValueKind, v.Kind())
	}
}

// EncodeTo writes the JSON text of v to w in a single Write call.
//
// Nothing is written if v cannot be encoded. The returned count is the number
// of bytes written by w.
func (e *Encoder) EncodeTo(w io.Writer, v value.Value) (int, error) {
	bb := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(bb)

	out, err := e.AppendEncode(bb.B, v)
	if err != nil {
		return 0, err
	}
	bb.B = out

	return w.Write(out)
}
