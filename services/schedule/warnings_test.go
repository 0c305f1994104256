package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/models"
)

func TestEvaluateWarnings_ClosedStartBlocksSave(t *testing.T) {
	report := EvaluateWarnings(monday(8, 0), monday(9, 0), "main", nil, "", openingNineToFive(), nil, nil)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "closed at the selected start time")
	assert.True(t, report.BlocksSave)
}

func TestEvaluateWarnings_ClosedStartCarriesRuleName(t *testing.T) {
	closing := []models.BusinessHoursRule{
		{ID: "lunch", Name: "Lunch", StartTime: "13:00", EndTime: "14:00"},
	}
	report := EvaluateWarnings(monday(13, 15), monday(14, 15), "main", nil, "", openingNineToFive(), closing, nil)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "Lunch")
	assert.True(t, report.BlocksSave)
}

func TestEvaluateWarnings_EndOutsideHoursIsAdvisory(t *testing.T) {
	report := EvaluateWarnings(monday(16, 30), monday(17, 30), "main", nil, "", openingNineToFive(), nil, nil)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "ends outside business hours")
	assert.False(t, report.BlocksSave)
}

func TestEvaluateWarnings_EndExactlyAtCloseIsFine(t *testing.T) {
	// Last occupied minute is 16:59, still inside the half-open window.
	report := EvaluateWarnings(monday(16, 0), monday(17, 0), "main", nil, "", openingNineToFive(), nil, nil)
	assert.Empty(t, report.Warnings)
	assert.False(t, report.BlocksSave)
}

func TestEvaluateWarnings_NoEndWarningWhenStartAlreadyClosed(t *testing.T) {
	// Start at 08:00 and end at 17:30: both outside hours, but only the
	// closed-start warning is emitted.
	report := EvaluateWarnings(monday(8, 0), monday(17, 30), "main", nil, "", openingNineToFive(), nil, nil)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "closed at the selected start time")
}

func TestEvaluateWarnings_CollisionIsAdvisory(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a1", CalendarID: "main", Start: monday(10, 0), End: monday(11, 0), Status: models.StatusConfirmed},
	}
	report := EvaluateWarnings(monday(10, 30), monday(11, 30), "main", appointments, "", openingNineToFive(), nil, nil)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "overlaps another appointment")
	assert.False(t, report.BlocksSave)
}

func TestEvaluateWarnings_CollisionIgnoresOtherCalendarsAndExcluded(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "other-cal", CalendarID: "second", Start: monday(10, 0), End: monday(11, 0), Status: models.StatusConfirmed},
		{ID: "editing", CalendarID: "main", Start: monday(10, 0), End: monday(11, 0), Status: models.StatusConfirmed},
		{ID: "cancelled", CalendarID: "main", Start: monday(10, 0), End: monday(11, 0), Status: models.StatusCancelled},
	}
	report := EvaluateWarnings(monday(10, 0), monday(11, 0), "main", appointments, "editing", openingNineToFive(), nil, nil)
	assert.Empty(t, report.Warnings)
}

func TestEvaluateWarnings_ClosedStartAndCollisionBothReported(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a1", CalendarID: "main", Start: monday(8, 0), End: monday(9, 0), Status: models.StatusConfirmed},
	}
	report := EvaluateWarnings(monday(8, 0), monday(9, 0), "main", appointments, "", openingNineToFive(), nil, nil)

	require.Len(t, report.Warnings, 2)
	assert.True(t, report.BlocksSave)
}
