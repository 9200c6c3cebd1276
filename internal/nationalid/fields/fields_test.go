package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Run("splits at fixed offsets", func(t *testing.T) {
		r := Extract("9402285008081")
		assert.Equal(t, Record{Year2: 94, Month: 2, Day: 28, SexCode: 5008, Trailing: 81}, r)
	})

	t.Run("keeps leading zeros out of the values", func(t *testing.T) {
		r := Extract("0001282100635")
		assert.Equal(t, 0, r.Year2)
		assert.Equal(t, 1, r.Month)
		assert.Equal(t, 28, r.Day)
		assert.Equal(t, 2100, r.SexCode)
		assert.Equal(t, 635, r.Trailing)
	})

	t.Run("is total over calendar-invalid input", func(t *testing.T) {
		r := Extract("9999999999999")
		assert.Equal(t, Record{Year2: 99, Month: 99, Day: 99, SexCode: 9999, Trailing: 999}, r)

		r = Extract("0000000000000")
		assert.Equal(t, Record{}, r)
	})

	t.Run("does not set the full year", func(t *testing.T) {
		assert.Zero(t, Extract("0507112100245").FullYear)
	})
}

func TestIsDigits(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", true},
		{"0507112100245", true},
		{"0507AB100245", false},
		{" 123", false},
		{"12-3", false},
		{"+123", false},
		{"１２３", false}, // full-width digits
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDigits(tt.in), "%q", tt.in)
	}
}
