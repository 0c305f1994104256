package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glowdesk/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.AppointmentStatus
		want     bool
	}{
		{models.StatusPending, models.StatusScheduled, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusScheduled, models.StatusConfirmed, true},
		{models.StatusScheduled, models.StatusNoShow, true},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusScheduled, false},
		{models.StatusPendingCancellation, models.StatusCancelled, true},
		{models.StatusPendingCancellation, models.StatusScheduled, true},
		// Terminal states stay terminal.
		{models.StatusCancelled, models.StatusScheduled, false},
		{models.StatusCompleted, models.StatusScheduled, false},
		{models.StatusNoShow, models.StatusScheduled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
