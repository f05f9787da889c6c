package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Nowhere/Invalid").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
	assert.False(t, IsValid(""))
}

func TestClock_ParseDateAndDateOnly(t *testing.T) {
	c := NewClock(DefaultTimezone)

	d, err := c.ParseDate("2030-03-05")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, DefaultTimezone, d.Location().String())

	// 01:00 UTC on the 6th is still the 5th in São Paulo.
	utc := time.Date(2030, 3, 6, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, d, c.DateOnly(utc))

	_, err = c.ParseDate("05/03/2030")
	assert.Error(t, err)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2030, 3, 5, 10, 0, 0, 0, time.UTC)
	c := FixedClock(at)

	assert.True(t, c.Now().Equal(at))
	assert.Equal(t, time.UTC, c.Location())
}
