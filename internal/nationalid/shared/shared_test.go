package shared

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullYear(t *testing.T) {
	assert.Equal(t, 2030, FullYear(30, 30))
	assert.Equal(t, 1931, FullYear(31, 30))
	assert.Equal(t, 2026, FullYear(26, 26))
	assert.Equal(t, 1927, FullYear(27, 26))
	assert.Equal(t, 2000, FullYear(0, 26))
	assert.Equal(t, 1999, FullYear(99, 30))
}

func TestCalendarDate(t *testing.T) {
	tests := []struct {
		name         string
		y, m, d      int
		wantOK       bool
		expectedDate time.Time
	}{
		{"ordinary date", 2005, 7, 11, true, time.Date(2005, 7, 11, 0, 0, 0, 0, time.UTC)},
		{"leap day", 2000, 2, 29, true, time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"leap day in a century non-leap year", 1900, 2, 29, false, time.Time{}},
		{"february 30", 2005, 2, 30, false, time.Time{}},
		{"april 31", 1994, 4, 31, false, time.Time{}},
		{"month zero", 1994, 0, 1, false, time.Time{}},
		{"month 13", 1994, 13, 1, false, time.Time{}},
		{"day zero", 1994, 1, 0, false, time.Time{}},
		{"day 32", 1994, 1, 32, false, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CalendarDate(tt.y, tt.m, tt.d)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.expectedDate, got)
		})
	}
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(2005, time.July, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 17, AgeAt(dob, time.Date(2023, time.July, 10, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, AgeAt(dob, time.Date(2023, time.July, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, AgeAt(dob, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, AgeAt(dob, time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"SZ", FormatEswatini},
		{"sz", FormatEswatini},
		{" eswatini ", FormatEswatini},
		{"ZA", FormatSouthAfrica},
		{"South_Africa", FormatSouthAfrica},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("NA")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatError(t *testing.T) {
	t.Run("unwraps to the kind sentinel", func(t *testing.T) {
		err := NewFormatError(KindInvalidDate, "date_of_birth", "2005-02-30 is not a calendar date")
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.NotErrorIs(t, err, ErrBadLength)
		assert.Contains(t, err.Error(), "date_of_birth")
		assert.Contains(t, err.Error(), string(KindInvalidDate))
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("decode: %w", NewFormatError(KindBadLength, "pin", "too short"))
		assert.Equal(t, KindBadLength, KindOf(err))
	})

	t.Run("non-format errors have no kind", func(t *testing.T) {
		assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
		assert.Equal(t, ErrorKind(""), KindOf(nil))
	})
}

func TestGender(t *testing.T) {
	assert.True(t, GenderFemale.IsKnown())
	assert.True(t, GenderMale.IsKnown())
	assert.False(t, GenderUnknown.IsKnown())
	assert.False(t, Gender("").IsKnown())
}
