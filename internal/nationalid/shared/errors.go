package shared

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable failure taxonomy for decoding national IDs.
type ErrorKind string

const (
	KindEmptyInput             ErrorKind = "empty_input"
	KindNonNumericInput        ErrorKind = "non_numeric_input"
	KindBadLength              ErrorKind = "bad_length"
	KindChecksumMismatch       ErrorKind = "checksum_mismatch"
	KindInvalidDate            ErrorKind = "invalid_date"
	KindInvalidSexCode         ErrorKind = "invalid_sex_code"
	KindInvalidCitizenshipCode ErrorKind = "invalid_citizenship_code"
	KindInvalidSerial          ErrorKind = "invalid_serial"
	KindMalformedNumber        ErrorKind = "malformed_number"
)

// Sentinels, one per kind, so callers can use errors.Is.
var (
	ErrEmptyInput             = errors.New("empty input")
	ErrNonNumericInput        = errors.New("non-numeric input")
	ErrBadLength              = errors.New("bad length")
	ErrChecksumMismatch       = errors.New("checksum mismatch")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidSexCode         = errors.New("invalid sex code")
	ErrInvalidCitizenshipCode = errors.New("invalid citizenship code")
	ErrInvalidSerial          = errors.New("invalid serial")
	ErrMalformedNumber        = errors.New("malformed number")

	ErrUnknownFormat = errors.New("unknown national ID format")
)

var kindSentinels = map[ErrorKind]error{
	KindEmptyInput:             ErrEmptyInput,
	KindNonNumericInput:        ErrNonNumericInput,
	KindBadLength:              ErrBadLength,
	KindChecksumMismatch:       ErrChecksumMismatch,
	KindInvalidDate:            ErrInvalidDate,
	KindInvalidSexCode:         ErrInvalidSexCode,
	KindInvalidCitizenshipCode: ErrInvalidCitizenshipCode,
	KindInvalidSerial:          ErrInvalidSerial,
	KindMalformedNumber:        ErrMalformedNumber,
}

// FormatError reports why a national ID failed to decode.
// Param names the offending input parameter or field.
type FormatError struct {
	Kind    ErrorKind
	Param   string
	Message string
}

// NewFormatError creates a FormatError of the given kind.
func NewFormatError(kind ErrorKind, param, message string) *FormatError {
	return &FormatError{Kind: kind, Param: param, Message: message}
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Param, e.Kind, e.Message)
}

// Unwrap exposes the kind sentinel.
func (e *FormatError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// KindOf extracts the error kind from an error, or "" when err is not a
// FormatError.
func KindOf(err error) ErrorKind {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
