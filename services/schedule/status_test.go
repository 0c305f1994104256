package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/models"
)

// 2025-06-02 is a Monday.
func monday(hh, mm int) time.Time {
	return time.Date(2025, 6, 2, hh, mm, 0, 0, time.UTC)
}

func tuesday(hh, mm int) time.Time {
	return time.Date(2025, 6, 3, hh, mm, 0, 0, time.UTC)
}

func openingNineToFive() []models.BusinessHoursRule {
	return []models.BusinessHoursRule{
		{ID: "open-1", StartTime: "09:00", EndTime: "17:00"},
	}
}

func TestResolveStatus_DefaultOpenWithoutOpeningRules(t *testing.T) {
	status := ResolveStatus(monday(3, 0), nil, nil, nil)
	assert.True(t, status.Open)
	assert.Nil(t, status.Rule)
}

func TestResolveStatus_OpeningRuleWindow(t *testing.T) {
	opening := openingNineToFive()

	assert.False(t, ResolveStatus(monday(8, 45), opening, nil, nil).Open)
	assert.True(t, ResolveStatus(monday(9, 0), opening, nil, nil).Open)
	assert.True(t, ResolveStatus(monday(16, 45), opening, nil, nil).Open)
	// End boundary is exclusive.
	assert.False(t, ResolveStatus(monday(17, 0), opening, nil, nil).Open)
}

func TestResolveStatus_ClosingOverridesOpening(t *testing.T) {
	opening := openingNineToFive()
	closing := []models.BusinessHoursRule{
		{ID: "close-1", Name: "Lunch", StartTime: "13:00", EndTime: "14:00", Days: []models.Weekday{models.Monday}},
	}

	status := ResolveStatus(monday(13, 30), opening, closing, nil)
	require.False(t, status.Open)
	require.NotNil(t, status.Rule)
	assert.Equal(t, "Lunch", status.Rule.Name)

	// Tuesday does not match the closing rule's day set.
	assert.True(t, ResolveStatus(tuesday(13, 30), opening, closing, nil).Open)
}

func TestResolveStatus_EmptyDaysMatchesEveryWeekday(t *testing.T) {
	closing := []models.BusinessHoursRule{
		{ID: "close-1", Name: "Break", StartTime: "12:00", EndTime: "12:30"},
	}
	for i := 0; i < 7; i++ {
		at := monday(12, 15).AddDate(0, 0, i)
		status := ResolveStatus(at, nil, closing, nil)
		require.False(t, status.Open, "weekday %s", at.Weekday())
		require.NotNil(t, status.Rule)
		assert.Equal(t, "Break", status.Rule.Name)
	}
}

func TestResolveStatus_HolidayDayOffWinsOverEverything(t *testing.T) {
	opening := openingNineToFive()
	holidays := func(k models.DateKey) *models.Holiday {
		if k == models.NewDateKey(monday(0, 0)) {
			return &models.Holiday{Date: k, Name: "Whit Monday", IsDayOff: true}
		}
		return nil
	}

	status := ResolveStatus(monday(10, 0), opening, nil, holidays)
	require.False(t, status.Open)
	require.NotNil(t, status.Rule)
	assert.Equal(t, "Whit Monday", status.Rule.Name)

	// A holiday without the day-off flag changes nothing.
	namedOnly := func(k models.DateKey) *models.Holiday {
		return &models.Holiday{Date: k, Name: "Open House"}
	}
	assert.True(t, ResolveStatus(monday(10, 0), opening, nil, namedOnly).Open)
}

func TestResolveStatus_DateRangeBounds(t *testing.T) {
	from := monday(0, 0)
	to := monday(23, 59).AddDate(0, 0, 2)
	closing := []models.BusinessHoursRule{
		{ID: "close-1", Name: "Vacation", StartTime: "00:00", EndTime: "23:59", DateRange: models.DateRange{From: &from, To: &to}},
	}

	assert.False(t, ResolveStatus(monday(10, 0), nil, closing, nil).Open)
	// Outside the date range the rule no longer applies.
	assert.True(t, ResolveStatus(monday(10, 0).AddDate(0, 0, 7), nil, closing, nil).Open)
}

func TestResolveStatus_FirstMatchingClosingRuleWins(t *testing.T) {
	closing := []models.BusinessHoursRule{
		{ID: "close-1", Name: "First", StartTime: "10:00", EndTime: "12:00"},
		{ID: "close-2", Name: "Second", StartTime: "11:00", EndTime: "13:00"},
	}
	status := ResolveStatus(monday(11, 30), nil, closing, nil)
	require.False(t, status.Open)
	assert.Equal(t, "First", status.Rule.Name)
}

func TestParseClock(t *testing.T) {
	mins, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, mins)

	for _, bad := range []string{"9:30", "09:60", "24:00", "0930", "ab:cd", ""} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}

	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:00", FormatClock(0))
}
