package nationalid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natid/internal/nationalid/eswatini"
	"natid/internal/nationalid/shared"
	"natid/internal/nationalid/southafrica"
	dErrors "natid/pkg/domain-errors"
)

func TestParseDispatchesByFormat(t *testing.T) {
	t.Run("eswatini", func(t *testing.T) {
		id, err := Parse(shared.FormatEswatini, "0507112100245")
		require.NoError(t, err)
		pin, ok := id.(eswatini.PIN)
		require.True(t, ok)
		assert.Equal(t, 245, pin.SerialNumber())
	})

	t.Run("south africa", func(t *testing.T) {
		id, err := Parse(shared.FormatSouthAfrica, "9402285008081")
		require.NoError(t, err)
		za, ok := id.(southafrica.ID)
		require.True(t, ok)
		assert.Equal(t, shared.FullCitizen, za.CitizenshipStatus())
	})

	t.Run("failures keep their kind and return a nil identity", func(t *testing.T) {
		id, err := Parse(shared.FormatSouthAfrica, "9402285008080")
		assert.Nil(t, id)
		assert.Equal(t, shared.KindChecksumMismatch, shared.KindOf(err))
	})

	t.Run("unknown format is a bad request", func(t *testing.T) {
		_, err := Parse(shared.Format("NA"), "9402285008081")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		assert.ErrorIs(t, err, shared.ErrUnknownFormat)
	})
}

func TestWithEswatiniChecksum(t *testing.T) {
	_, err := Parse(shared.FormatEswatini, "0507112100245", WithEswatiniChecksum(true))
	assert.ErrorIs(t, err, shared.ErrChecksumMismatch)

	_, err = Parse(shared.FormatEswatini, "0507112100245", WithEswatiniChecksum(false))
	assert.NoError(t, err)
}

func TestTryParse(t *testing.T) {
	id, ok := TryParse(shared.FormatEswatini, "0507AB100245")
	assert.False(t, ok)
	assert.Nil(t, id)

	id, ok = TryParse(shared.FormatSouthAfrica, "9402285008081")
	assert.True(t, ok)
	assert.Equal(t, shared.GenderMale, id.Gender())
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []shared.Format{shared.FormatEswatini, shared.FormatSouthAfrica}, Formats())
}
