package shared

import "time"

// FullYear expands a two-digit year using a fixed century pivot:
// years up to and including pivot fall in the 2000s, the rest in the 1900s.
func FullYear(twoDigit, pivot int) int {
	if twoDigit <= pivot {
		return 2000 + twoDigit
	}
	return 1900 + twoDigit
}

// CalendarDate returns the UTC midnight for year/month/day and false when the
// triple is not a real Gregorian date. time.Date normalises overflow
// (Feb 30 becomes Mar 2), so the result is compared back against the input.
func CalendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// AgeAt returns the number of completed years between dob and now.
// A date of birth after now yields 0.
func AgeAt(dob, now time.Time) int {
	if now.Before(dob) {
		return 0
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
