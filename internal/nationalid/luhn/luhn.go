// Package luhn implements the mod-10 (Luhn) checksum used by both national
// ID formats.
//
// Digits are processed from the rightmost one leftward with 1-based
// positions. Digits at even positions are doubled, and 9 is subtracted when
// the doubled value exceeds 9; digits at odd positions count as-is. A full
// number (payload followed by its check digit) is valid when that sum is a
// multiple of ten.
package luhn

import (
	"math"

	"natid/internal/nationalid/shared"
)

const paramPayload = "payload"

// Sum returns the Luhn digit sum of payload.
// Negative payloads are rejected with a MalformedNumber error.
func Sum(payload int64) (int, error) {
	if payload < 0 {
		return 0, shared.NewFormatError(shared.KindMalformedNumber, paramPayload, "payload must be non-negative")
	}
	sum := 0
	for pos := 1; payload > 0; pos++ {
		sum += weigh(int(payload%10), pos)
		payload /= 10
	}
	return sum, nil
}

// CheckDigit returns the digit d for which (Sum(payload)+d) mod 10 == 0.
func CheckDigit(payload int64) (int, error) {
	sum, err := Sum(payload)
	if err != nil {
		return 0, err
	}
	return checkDigitFor(sum), nil
}

// Valid reports whether number, including its trailing check digit, passes
// the Luhn check.
func Valid(number int64) (bool, error) {
	sum, err := Sum(number)
	if err != nil {
		return false, err
	}
	return sum%10 == 0, nil
}

// ValidCheckDigit reports whether check is the Luhn check digit of payload.
func ValidCheckDigit(payload int64, check int) (bool, error) {
	want, err := CheckDigit(payload)
	if err != nil {
		return false, err
	}
	return check == want, nil
}

// Complete appends the check digit that makes payload a valid full number,
// so that Valid(Complete(payload)) holds. CheckDigit weighs payload's digits
// in their own positions; Complete weighs them as they sit once shifted left
// by the appended digit.
func Complete(payload int64) (int64, error) {
	if payload > math.MaxInt64/10 {
		return 0, shared.NewFormatError(shared.KindMalformedNumber, paramPayload, "payload too large")
	}
	d, err := CheckDigit(payload * 10)
	if err != nil {
		return 0, err
	}
	return payload*10 + int64(d), nil
}

// ValidString runs Valid over a decimal digit string without converting it to
// an integer, so leading zeros and lengths beyond int64 are handled.
func ValidString(digits string) (bool, error) {
	sum := 0
	for i, pos := len(digits)-1, 1; i >= 0; i, pos = i-1, pos+1 {
		c := digits[i]
		if c < '0' || c > '9' {
			return false, shared.NewFormatError(shared.KindMalformedNumber, paramPayload, "payload must contain decimal digits only")
		}
		sum += weigh(int(c-'0'), pos)
	}
	return sum%10 == 0, nil
}

// weigh applies the positional transform to a single digit.
func weigh(digit, pos int) int {
	if pos%2 != 0 {
		return digit
	}
	doubled := digit * 2
	if doubled > 9 {
		doubled -= 9
	}
	return doubled
}

func checkDigitFor(sum int) int {
	if sum%10 == 0 {
		return 0
	}
	return 10 - sum%10
}
