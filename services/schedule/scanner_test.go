package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/models"
)

func TestAvailableSlots_FullDurationMustFitOpeningHours(t *testing.T) {
	day := models.DateKey{Year: 2025, Month: time.June, Day: 2}
	now := monday(7, 0)

	slots := AvailableSlots(day, 1, 60, nil, "", openingNineToFive(), nil, nil, now)
	daySlots := slots[day]
	require.NotEmpty(t, daySlots)

	assert.Contains(t, daySlots, "09:00")
	assert.Contains(t, daySlots, "16:00")
	// Would end 17:30, outside hours.
	assert.NotContains(t, daySlots, "16:30")
	assert.NotContains(t, daySlots, "08:45")
	// Last full hour ending exactly at close is fine.
	assert.Equal(t, "16:00", daySlots[len(daySlots)-1])
}

func TestAvailableSlots_SkipsPastDaysAndPastCandidates(t *testing.T) {
	now := monday(10, 5)
	yesterday := models.DateKey{Year: 2025, Month: time.June, Day: 1}

	slots := AvailableSlots(yesterday, 2, 30, nil, "", openingNineToFive(), nil, nil, now)

	_, ok := slots[yesterday]
	assert.False(t, ok, "days before today must be skipped entirely")

	today := yesterday.AddDays(1)
	daySlots := slots[today]
	require.NotEmpty(t, daySlots)
	// 10:00 is not after now; first bookable grid point is 10:15.
	assert.Equal(t, "10:15", daySlots[0])
}

func TestAvailableSlots_RejectsCollisions(t *testing.T) {
	day := models.DateKey{Year: 2025, Month: time.June, Day: 2}
	now := monday(7, 0)

	appointments := []models.Appointment{
		{ID: "a1", CalendarID: "main", Start: monday(10, 0), End: monday(11, 0), Status: models.StatusConfirmed},
		{ID: "a2", CalendarID: "main", Start: monday(14, 0), End: monday(15, 0), Status: models.StatusCancelled},
	}

	slots := AvailableSlots(day, 1, 30, appointments, "", openingNineToFive(), nil, nil, now)
	daySlots := slots[day]

	// 09:45 would run into the 10:00 appointment.
	assert.NotContains(t, daySlots, "09:45")
	assert.NotContains(t, daySlots, "10:00")
	assert.NotContains(t, daySlots, "10:30")
	assert.Contains(t, daySlots, "09:30")
	assert.Contains(t, daySlots, "11:00")
	// Cancelled appointments do not block.
	assert.Contains(t, daySlots, "14:00")
}

func TestAvailableSlots_ExcludesEditedAppointment(t *testing.T) {
	day := models.DateKey{Year: 2025, Month: time.June, Day: 2}
	now := monday(7, 0)

	appointments := []models.Appointment{
		{ID: "editing", CalendarID: "main", Start: monday(10, 0), End: monday(11, 0), Status: models.StatusScheduled},
	}

	slots := AvailableSlots(day, 1, 30, appointments, "editing", openingNineToFive(), nil, nil, now)
	assert.Contains(t, slots[day], "10:00")
}

func TestAvailableSlots_HolidayClosesWholeDay(t *testing.T) {
	day := models.DateKey{Year: 2025, Month: time.June, Day: 2}
	now := monday(7, 0)
	holidays := func(k models.DateKey) *models.Holiday {
		if k == day {
			return &models.Holiday{Date: k, Name: "Whit Monday", IsDayOff: true}
		}
		return nil
	}

	slots := AvailableSlots(day, 2, 30, nil, "", openingNineToFive(), nil, holidays, now)
	assert.Empty(t, slots[day])
	assert.NotEmpty(t, slots[day.AddDays(1)])
}

func TestAvailableSlots_SpanMustClearClosingRules(t *testing.T) {
	day := models.DateKey{Year: 2025, Month: time.June, Day: 2}
	now := monday(7, 0)
	closing := []models.BusinessHoursRule{
		{ID: "lunch", Name: "Lunch", StartTime: "13:00", EndTime: "14:00"},
	}

	slots := AvailableSlots(day, 1, 60, nil, "", openingNineToFive(), closing, nil, now)
	daySlots := slots[day]

	// Any start whose hour-long span touches the lunch break is rejected.
	for _, s := range []string{"12:15", "12:30", "12:45", "13:00", "13:30"} {
		assert.NotContains(t, daySlots, s)
	}
	assert.Contains(t, daySlots, "12:00")
	assert.Contains(t, daySlots, "14:00")
}

func TestAvailableSlots_ChronologicalOrderAndNonNegativeDuration(t *testing.T) {
	day := models.DateKey{Year: 2025, Month: time.June, Day: 2}
	now := monday(7, 0)

	slots := AvailableSlots(day, 1, 15, nil, "", openingNineToFive(), nil, nil, now)
	daySlots := slots[day]
	for i := 1; i < len(daySlots); i++ {
		prev, err := ParseClock(daySlots[i-1])
		require.NoError(t, err)
		cur, err := ParseClock(daySlots[i])
		require.NoError(t, err)
		assert.Less(t, prev, cur)
	}

	assert.Empty(t, AvailableSlots(day, 1, 0, nil, "", nil, nil, nil, now))
}
