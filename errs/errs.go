// Package errs defines the sentinel errors returned by jval packages.
//
// Errors are wrapped with context by the returning package, so callers should
// compare with errors.Is rather than ==.
package errs

import "errors"

// Encoding errors.
var (
	// ErrUnsupportedValueKind is returned when a value's kind is outside the encodable set.
	ErrUnsupportedValueKind = errors.New("unsupported value kind")
)

// Batch errors.
var (
	ErrEmptyBatch         = errors.New("batch has no values")
	ErrBatchFinished      = errors.New("batch builder already finished")
	ErrInvalidHeaderSize  = errors.New("invalid batch header size")
	ErrInvalidMagic       = errors.New("invalid batch magic number")
	ErrInvalidHeaderFlags = errors.New("invalid batch header flags")
	ErrInvalidCompression = errors.New("invalid batch compression type")
	ErrChecksumMismatch   = errors.New("batch payload checksum mismatch")
	ErrPayloadSize        = errors.New("batch payload size mismatch")
	ErrLineCount          = errors.New("batch line count mismatch")
	ErrTooManyValues      = errors.New("batch value count exceeds limit")
)
