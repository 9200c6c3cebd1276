// Package southafrica decodes South African identity numbers.
//
// An ID number is 13 decimal digits laid out as YYMMDD SSSS C A Z:
//   - YYMMDD: date of birth; two-digit years up to 26 belong to the 2000s
//   - SSSS: sex code, below 5000 for females
//   - C: citizenship (0 citizen, 1 permanent resident, 2 refugee)
//   - A: spacer digit
//   - Z: Luhn check digit over the whole number
package southafrica

import (
	"fmt"
	"strings"
	"time"

	"natid/internal/nationalid/fields"
	"natid/internal/nationalid/luhn"
	"natid/internal/nationalid/shared"
)

const (
	centuryPivot = 26

	maleCodeThreshold = 5000

	spacerMax = 9

	paramIDNumber = "id_number"
)

// CitizenshipInfo holds the three digits of the trailing group.
// Checksum is the same physical digit as the ID's Luhn check digit.
type CitizenshipInfo struct {
	Code     int
	Spacer   int
	Checksum int
}

// ID is a decoded South African identity number. The zero value is not a
// valid ID; values are only produced by Parse and are never modified
// afterwards.
//
// Identity is (DateOfBirth, SerialNumber, Gender, CitizenshipStatus): use
// Equal or Key rather than ==, which also compares the raw sex code.
type ID struct {
	dateOfBirth time.Time
	gender      shared.Gender
	sexCode     int
	citizenship CitizenshipInfo
	status      shared.CitizenshipStatus
}

// Key is the comparable identity of an ID, usable as a map key.
type Key struct {
	DateOfBirth       time.Time
	SerialNumber      int
	Gender            shared.Gender
	CitizenshipStatus shared.CitizenshipStatus
}

var _ shared.Identity = ID{}

// Parse decodes text as a South African ID number, stopping at the first
// failed check. Failures are *shared.FormatError values carrying the failure
// kind. There is no lenient mode.
func Parse(text string) (ID, error) {
	if strings.TrimSpace(text) == "" {
		return ID{}, shared.NewFormatError(shared.KindEmptyInput, paramIDNumber, "ID number is required")
	}
	if len(text) != fields.Length {
		return ID{}, shared.NewFormatError(shared.KindBadLength, paramIDNumber,
			fmt.Sprintf("ID number must be %d digits, got %d", fields.Length, len(text)))
	}
	if !fields.IsDigits(text) {
		return ID{}, shared.NewFormatError(shared.KindNonNumericInput, paramIDNumber, "ID number must contain decimal digits only")
	}

	valid, err := luhn.ValidString(text)
	if err != nil {
		return ID{}, err
	}
	if !valid {
		return ID{}, shared.NewFormatError(shared.KindChecksumMismatch, paramIDNumber, "ID number check digit does not match")
	}

	rec := fields.Extract(text)
	rec.FullYear = shared.FullYear(rec.Year2, centuryPivot)

	dob, ok := shared.CalendarDate(rec.FullYear, rec.Month, rec.Day)
	if !ok {
		return ID{}, shared.NewFormatError(shared.KindInvalidDate, "date_of_birth",
			fmt.Sprintf("%04d-%02d-%02d is not a calendar date", rec.FullYear, rec.Month, rec.Day))
	}

	gender := classifySex(rec.SexCode)
	if !gender.IsKnown() {
		return ID{}, shared.NewFormatError(shared.KindInvalidSexCode, "sex_code",
			fmt.Sprintf("sex code %04d is not classifiable", rec.SexCode))
	}

	info := decompose(rec.Trailing)
	status := classifyCitizenship(info.Code)
	if status == shared.CitizenshipUnknown {
		return ID{}, shared.NewFormatError(shared.KindInvalidCitizenshipCode, "citizenship",
			fmt.Sprintf("citizenship code %d is not one of 0, 1, 2", info.Code))
	}

	// Always holds for a single decimal digit.
	if info.Spacer > spacerMax {
		return ID{}, shared.NewFormatError(shared.KindInvalidSerial, "spacer",
			fmt.Sprintf("spacer digit %d is out of range", info.Spacer))
	}

	return ID{
		dateOfBirth: dob,
		gender:      gender,
		sexCode:     rec.SexCode,
		citizenship: info,
		status:      status,
	}, nil
}

// TryParse is Parse without the error: ok is false and id is the zero value
// on any failure.
func TryParse(text string) (id ID, ok bool) {
	id, err := Parse(text)
	if err != nil {
		return ID{}, false
	}
	return id, true
}

// MustParse parses text, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustParse(text string) ID {
	id, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}

// decompose re-reads the trailing group as three zero-padded digits.
func decompose(trailing int) CitizenshipInfo {
	digits := fmt.Sprintf("%03d", trailing)
	return CitizenshipInfo{
		Code:     int(digits[0] - '0'),
		Spacer:   int(digits[1] - '0'),
		Checksum: int(digits[2] - '0'),
	}
}

func classifySex(code int) shared.Gender {
	if code < maleCodeThreshold {
		return shared.GenderFemale
	}
	return shared.GenderMale
}

func classifyCitizenship(code int) shared.CitizenshipStatus {
	switch code {
	case 0:
		return shared.FullCitizen
	case 1:
		return shared.PermanentResident
	case 2:
		return shared.Refugee
	default:
		return shared.CitizenshipUnknown
	}
}

func (id ID) Format() shared.Format {
	return shared.FormatSouthAfrica
}

func (id ID) DateOfBirth() time.Time {
	return id.dateOfBirth
}

func (id ID) Gender() shared.Gender {
	return id.gender
}

func (id ID) CitizenshipStatus() shared.CitizenshipStatus {
	return id.status
}

// Citizenship returns the decoded trailing-group digits.
func (id ID) Citizenship() CitizenshipInfo {
	return id.citizenship
}

// SerialNumber is the spacer and check digits read as a two-digit number.
func (id ID) SerialNumber() int {
	return id.citizenship.Spacer*10 + id.citizenship.Checksum
}

// CheckDigit returns the Luhn check digit, the last digit of the number.
func (id ID) CheckDigit() int {
	return id.citizenship.Checksum
}

// SexCode returns the raw 4-digit sex code.
func (id ID) SexCode() int {
	return id.sexCode
}

// Key returns the identity of the ID.
func (id ID) Key() Key {
	return Key{
		DateOfBirth:       id.dateOfBirth,
		SerialNumber:      id.SerialNumber(),
		Gender:            id.gender,
		CitizenshipStatus: id.status,
	}
}

// Equal reports whether both IDs decode to the same identity.
func (id ID) Equal(other ID) bool {
	return id.dateOfBirth.Equal(other.dateOfBirth) &&
		id.SerialNumber() == other.SerialNumber() &&
		id.gender == other.gender &&
		id.status == other.status
}

// IsZero returns true if this is the zero value (uninitialized).
func (id ID) IsZero() bool {
	return id.dateOfBirth.IsZero()
}

// String rebuilds the 13-digit ID number from the decoded fields, with every
// field zero-padded to its full width.
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d%02d%02d%04d%d%d%d",
		id.dateOfBirth.Year()%100, int(id.dateOfBirth.Month()), id.dateOfBirth.Day(),
		id.sexCode, id.citizenship.Code, id.citizenship.Spacer, id.citizenship.Checksum)
}
