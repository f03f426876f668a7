package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:00")
	require.NoError(t, err)
	assert.Equal(t, "14:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("2pm")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	shifted, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), shifted)

	// Переход через полночь обрезается до 23:59
	late := TimeString("23:30")
	capped, err := late.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), capped)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("14:00"))
	assert.True(t, TimeString("14:00").IsAfter("09:00"))
	assert.False(t, TimeString("14:00").IsBefore("14:00"))
}
