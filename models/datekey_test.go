package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyRoundTrip(t *testing.T) {
	k, err := ParseDateKey("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, DateKey{Year: 2025, Month: time.June, Day: 2}, k)
	assert.Equal(t, "2025-06-02", k.String())

	_, err = ParseDateKey("2025-6-2")
	assert.Error(t, err)
}

func TestDateKeyAddDaysCrossesMonths(t *testing.T) {
	k := DateKey{Year: 2025, Month: time.June, Day: 29}
	assert.Equal(t, "2025-07-01", k.AddDays(2).String())
	assert.True(t, k.Before(k.AddDays(1)))
	assert.False(t, k.AddDays(1).Before(k))
}

func TestNewDateKeyIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, NewDateKey(late), DateKey{Year: 2025, Month: time.June, Day: 2})
}
