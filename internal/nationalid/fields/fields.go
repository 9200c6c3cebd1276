// Package fields splits a 13-digit national ID into its fixed-width fields.
//
// Both supported formats share the layout:
//
//	YY MM DD SSSS TTT
//	0  2  4  6    10  13
//
// where SSSS is the sex code and TTT the trailing group. Extraction never
// fails; callers confirm the input is exactly Length decimal digits first and
// make every validity decision themselves.
package fields

// Length is the number of digits in a supported national ID.
const Length = 13

// Record holds the integer fields of one national ID. It lives only for the
// duration of a single parse.
type Record struct {
	Year2    int // two-digit year as written
	FullYear int // set by the decoder after applying its century pivot
	Month    int
	Day      int
	SexCode  int
	Trailing int
}

// Extract reads the fixed-width fields from digits.
func Extract(digits string) Record {
	return Record{
		Year2:    atoi(digits[0:2]),
		Month:    atoi(digits[2:4]),
		Day:      atoi(digits[4:6]),
		SexCode:  atoi(digits[6:10]),
		Trailing: atoi(digits[10:13]),
	}
}

// IsDigits reports whether s is non-empty and made of ASCII decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// atoi converts a pre-validated digit string.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
