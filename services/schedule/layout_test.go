package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/models"
)

func appt(id string, start, end time.Time) models.Appointment {
	return models.Appointment{ID: id, CalendarID: "main", Start: start, End: end, Status: models.StatusScheduled}
}

func TestLayoutDay_TwoOverlappingSplitTheLane(t *testing.T) {
	appointments := []models.Appointment{
		appt("a", monday(9, 0), monday(9, 30)),
		appt("b", monday(9, 15), monday(9, 45)),
	}

	layouts := LayoutDay(appointments, 0, 15, 48)
	require.Len(t, layouts, 2)

	byID := map[string]models.AppointmentLayout{}
	for _, l := range layouts {
		byID[l.Appointment.ID] = l
	}

	assert.InDelta(t, 50.0, byID["a"].Width, 0.001)
	assert.InDelta(t, 50.0, byID["b"].Width, 0.001)
	assert.InDelta(t, 0.0, byID["a"].Left, 0.001)
	assert.InDelta(t, 50.0, byID["b"].Left, 0.001)
}

func TestLayoutDay_NonOverlappingShareAColumn(t *testing.T) {
	appointments := []models.Appointment{
		appt("a", monday(9, 0), monday(9, 30)),
		appt("b", monday(9, 30), monday(10, 0)),
	}

	layouts := LayoutDay(appointments, 0, 15, 48)
	require.Len(t, layouts, 2)
	for _, l := range layouts {
		assert.InDelta(t, 100.0, l.Width, 0.001)
		assert.InDelta(t, 0.0, l.Left, 0.001)
	}
}

func TestLayoutDay_SameColumnNeverOverlaps(t *testing.T) {
	appointments := []models.Appointment{
		appt("a", monday(9, 0), monday(10, 0)),
		appt("b", monday(9, 15), monday(9, 45)),
		appt("c", monday(9, 30), monday(10, 30)),
		appt("d", monday(10, 0), monday(11, 0)),
		appt("e", monday(10, 15), monday(10, 45)),
	}

	layouts := LayoutDay(appointments, 0, 15, 48)
	require.Len(t, layouts, 5)

	// Two appointments sharing a lane (same Left and Width) must never
	// overlap in time.
	for i := 0; i < len(layouts); i++ {
		for j := i + 1; j < len(layouts); j++ {
			a, b := layouts[i], layouts[j]
			if a.Left == b.Left && a.Width == b.Width {
				assert.False(t, overlapsOpen(a.Appointment, b.Appointment),
					"%s and %s share a column but overlap", a.Appointment.ID, b.Appointment.ID)
			}
		}
	}
}

func TestLayoutDay_ColumnCountIsMinimal(t *testing.T) {
	// Three appointments, at most two simultaneous: two columns suffice.
	appointments := []models.Appointment{
		appt("a", monday(9, 0), monday(10, 0)),
		appt("b", monday(9, 30), monday(10, 30)),
		appt("c", monday(10, 0), monday(11, 0)),
	}

	layouts := LayoutDay(appointments, 0, 15, 48)
	require.Len(t, layouts, 3)
	for _, l := range layouts {
		assert.InDelta(t, 50.0, l.Width, 0.001, "two columns expected, so width 50%%")
	}

	byID := map[string]models.AppointmentLayout{}
	for _, l := range layouts {
		byID[l.Appointment.ID] = l
	}
	// "c" starts when "a" ends, so it reuses the first column.
	assert.InDelta(t, byID["a"].Left, byID["c"].Left, 0.001)
}

func TestLayoutDay_VerticalGeometry(t *testing.T) {
	appointments := []models.Appointment{
		appt("a", monday(9, 0), monday(10, 0)),
	}

	// Day view starts at 08:00, 15-minute slots of 48px.
	layouts := LayoutDay(appointments, 8*60, 15, 48)
	require.Len(t, layouts, 1)
	assert.InDelta(t, float64(60)/15*48, layouts[0].Top, 0.001)    // one hour below the anchor
	assert.InDelta(t, float64(60)/15*48, layouts[0].Height, 0.001) // an hour tall
}

func TestLayoutDay_StartBeforeWindowIsOmitted(t *testing.T) {
	appointments := []models.Appointment{
		appt("early", monday(7, 0), monday(9, 0)),
		appt("visible", monday(9, 0), monday(10, 0)),
	}

	layouts := LayoutDay(appointments, 8*60, 15, 48)
	require.Len(t, layouts, 1)
	assert.Equal(t, "visible", layouts[0].Appointment.ID)
}

func TestLayoutDay_MinimumHeightIsOneSlot(t *testing.T) {
	appointments := []models.Appointment{
		appt("tiny", monday(9, 0), monday(9, 5)),
	}

	layouts := LayoutDay(appointments, 0, 15, 48)
	require.Len(t, layouts, 1)
	assert.InDelta(t, 48.0, layouts[0].Height, 0.001)
}

func TestLayoutDay_CancelledAreExcluded(t *testing.T) {
	cancelled := appt("gone", monday(9, 0), monday(10, 0))
	cancelled.Status = models.StatusCancelled
	appointments := []models.Appointment{
		cancelled,
		appt("kept", monday(9, 15), monday(9, 45)),
	}

	layouts := LayoutDay(appointments, 0, 15, 48)
	require.Len(t, layouts, 1)
	assert.Equal(t, "kept", layouts[0].Appointment.ID)
	assert.InDelta(t, 100.0, layouts[0].Width, 0.001)
}

func TestOverlapsOpen_TouchingEndpointsDoNotOverlap(t *testing.T) {
	a := appt("a", monday(9, 0), monday(9, 30))
	b := appt("b", monday(9, 30), monday(10, 0))
	assert.False(t, overlapsOpen(a, b))
	assert.False(t, overlapsOpen(b, a))

	c := appt("c", monday(9, 29), monday(10, 0))
	assert.True(t, overlapsOpen(a, c))
}
