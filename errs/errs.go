// Package errs defines the sentinel errors returned by ctext packages.
//
// Call sites wrap these sentinels with context using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is rather than by equality.
package errs

import "errors"

// Argument and range errors.
var (
	// ErrOutOfRange is returned when an index, offset or length argument lies
	// outside the valid bounds of the text or builder it addresses.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for malformed arguments such as negative
	// capacities, invalid code points or malformed escape sequences.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLengthOverflow is returned when a required length or capacity overflows
	// or exceeds the implementation limit. It is always reported before any
	// allocation or mutation takes place.
	ErrLengthOverflow = errors.New("required length exceeds implementation limit")
)

// Serialization errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidHeaderFlags     = errors.New("invalid header flags")
	ErrInvalidMagic           = errors.New("invalid magic number")
	ErrPayloadSizeMismatch    = errors.New("payload size mismatch")
	ErrChecksumMismatch       = errors.New("payload checksum mismatch")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
