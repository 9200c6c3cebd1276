// Package eswatini decodes Eswatini personal identification numbers (PINs).
//
// A PIN is 13 decimal digits: a yymmdd date of birth, a 4-digit sex code and
// a 3-digit serial. Two-digit years up to 30 belong to the 2000s.
package eswatini

import (
	"fmt"
	"strings"
	"time"

	"natid/internal/nationalid/fields"
	"natid/internal/nationalid/luhn"
	"natid/internal/nationalid/shared"
)

const (
	centuryPivot = 30

	femaleCodeMin = 1100
	femaleCodeMax = 6100
	maleCodeMin   = 6100
	maleCodeMax   = 9999

	serialMin = 0
	serialMax = 999

	paramPIN = "pin"
)

// PIN is a decoded Eswatini PIN. The zero value is not a valid PIN; values
// are only produced by Parse and are never modified afterwards.
//
// Identity is (DateOfBirth, Gender, SerialNumber): use Equal or Key rather
// than ==, which also compares the raw sex code.
type PIN struct {
	dateOfBirth   time.Time
	gender        shared.Gender
	serial        int
	sexCode       int
	checksumValid bool
}

// Key is the comparable identity of a PIN, usable as a map key.
type Key struct {
	DateOfBirth  time.Time
	Gender       shared.Gender
	SerialNumber int
}

var _ shared.Identity = PIN{}

// Option adjusts a single Parse call.
type Option func(*parseOptions)

type parseOptions struct {
	requireChecksum bool
}

// RequireChecksum rejects PINs whose digits fail the Luhn check.
func RequireChecksum() Option {
	return func(o *parseOptions) {
		o.requireChecksum = true
	}
}

// Parse decodes text as an Eswatini PIN, stopping at the first failed check.
// Failures are *shared.FormatError values carrying the failure kind.
func Parse(text string, opts ...Option) (PIN, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(text) == "" {
		return PIN{}, shared.NewFormatError(shared.KindEmptyInput, paramPIN, "PIN is required")
	}
	if !fields.IsDigits(text) {
		return PIN{}, shared.NewFormatError(shared.KindNonNumericInput, paramPIN, "PIN must contain decimal digits only")
	}
	if len(text) != fields.Length {
		return PIN{}, shared.NewFormatError(shared.KindBadLength, paramPIN,
			fmt.Sprintf("PIN must be %d digits, got %d", fields.Length, len(text)))
	}

	checksumValid, err := luhn.ValidString(text)
	if err != nil {
		return PIN{}, err
	}
	if o.requireChecksum && !checksumValid {
		return PIN{}, shared.NewFormatError(shared.KindChecksumMismatch, paramPIN, "PIN check digit does not match")
	}

	rec := fields.Extract(text)
	rec.FullYear = shared.FullYear(rec.Year2, centuryPivot)

	dob, ok := shared.CalendarDate(rec.FullYear, rec.Month, rec.Day)
	if !ok {
		return PIN{}, shared.NewFormatError(shared.KindInvalidDate, "date_of_birth",
			fmt.Sprintf("%04d-%02d-%02d is not a calendar date", rec.FullYear, rec.Month, rec.Day))
	}

	gender := classifySex(rec.SexCode)
	if gender == shared.GenderUnknown {
		return PIN{}, shared.NewFormatError(shared.KindInvalidSexCode, "sex_code",
			fmt.Sprintf("sex code %04d is outside the known ranges", rec.SexCode))
	}

	if rec.Trailing < serialMin || rec.Trailing > serialMax {
		return PIN{}, shared.NewFormatError(shared.KindInvalidSerial, "serial_number",
			fmt.Sprintf("serial %d is outside %d-%d", rec.Trailing, serialMin, serialMax))
	}

	return PIN{
		dateOfBirth:   dob,
		gender:        gender,
		serial:        rec.Trailing,
		sexCode:       rec.SexCode,
		checksumValid: checksumValid,
	}, nil
}

// TryParse is Parse without the error: ok is false and pin is the zero
// value on any failure.
func TryParse(text string, opts ...Option) (pin PIN, ok bool) {
	pin, err := Parse(text, opts...)
	if err != nil {
		return PIN{}, false
	}
	return pin, true
}

// MustParse parses text, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustParse(text string, opts ...Option) PIN {
	pin, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return pin
}

// classifySex maps a sex code to a gender. The ranges share 6100; the female
// range is checked first and wins.
func classifySex(code int) shared.Gender {
	switch {
	case code >= femaleCodeMin && code <= femaleCodeMax:
		return shared.GenderFemale
	case code >= maleCodeMin && code <= maleCodeMax:
		return shared.GenderMale
	default:
		return shared.GenderUnknown
	}
}

func (p PIN) Format() shared.Format {
	return shared.FormatEswatini
}

func (p PIN) DateOfBirth() time.Time {
	return p.dateOfBirth
}

func (p PIN) Gender() shared.Gender {
	return p.gender
}

// SerialNumber returns the trailing 3-digit group as a number.
func (p PIN) SerialNumber() int {
	return p.serial
}

// SexCode returns the raw 4-digit sex code.
func (p PIN) SexCode() int {
	return p.sexCode
}

// ChecksumValid reports whether the parsed digits passed the Luhn check.
func (p PIN) ChecksumValid() bool {
	return p.checksumValid
}

// Key returns the identity of the PIN.
func (p PIN) Key() Key {
	return Key{DateOfBirth: p.dateOfBirth, Gender: p.gender, SerialNumber: p.serial}
}

// Equal reports whether both PINs decode to the same identity.
func (p PIN) Equal(other PIN) bool {
	return p.dateOfBirth.Equal(other.dateOfBirth) &&
		p.gender == other.gender &&
		p.serial == other.serial
}

// IsZero returns true if this is the zero value (uninitialized).
func (p PIN) IsZero() bool {
	return p.dateOfBirth.IsZero()
}

// String rebuilds the 13-digit PIN from the decoded fields.
func (p PIN) String() string {
	if p.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d%02d%02d%04d%03d",
		p.dateOfBirth.Year()%100, int(p.dateOfBirth.Month()), p.dateOfBirth.Day(), p.sexCode, p.serial)
}
