// Package shared provides the shared kernel for national ID decoding.
//
// The kernel holds the vocabulary both ID formats decode into: gender,
// citizenship status, the format code and the Identity capability. The two
// decoders share no base type; each implements Identity independently.
//
// Domain Purity: This package performs no I/O and never reads the clock.
// Time is always received as a parameter from the application layer.
package shared

import (
	"strings"
	"time"
)

// Gender is the sex classification decoded from an ID's sex-code field.
type Gender string

const (
	GenderFemale  Gender = "female"
	GenderMale    Gender = "male"
	GenderUnknown Gender = "unknown"
)

// String returns the gender value.
func (g Gender) String() string {
	return string(g)
}

// IsKnown returns true for Female and Male.
func (g Gender) IsKnown() bool {
	return g == GenderFemale || g == GenderMale
}

// CitizenshipStatus is decoded from the South African citizenship digit.
type CitizenshipStatus string

const (
	FullCitizen        CitizenshipStatus = "full_citizen"
	PermanentResident  CitizenshipStatus = "permanent_resident"
	Refugee            CitizenshipStatus = "refugee"
	CitizenshipUnknown CitizenshipStatus = "unknown"
)

// String returns the citizenship status value.
func (c CitizenshipStatus) String() string {
	return string(c)
}

// Format identifies a supported national ID scheme by ISO 3166 alpha-2 code.
type Format string

const (
	FormatEswatini    Format = "SZ"
	FormatSouthAfrica Format = "ZA"
)

var formatAliases = map[string]Format{
	"sz":           FormatEswatini,
	"eswatini":     FormatEswatini,
	"za":           FormatSouthAfrica,
	"south_africa": FormatSouthAfrica,
}

// ParseFormat resolves a format code or alias, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrUnknownFormat
	}
	return f, nil
}

// String returns the format code.
func (f Format) String() string {
	return string(f)
}

// Identity is the capability every decoded national ID exposes.
type Identity interface {
	Format() Format
	DateOfBirth() time.Time
	Gender() Gender
	SerialNumber() int
	// String reconstructs a canonical digit string from the decoded fields.
	String() string
}
