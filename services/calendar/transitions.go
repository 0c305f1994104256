// File: services/calendar/transitions.go
package calendar

import "glowdesk/models"

// allowedTransitions encodes the appointment lifecycle. Cancelled,
// no-show and completed are terminal; nothing is ever hard-deleted.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending: {
		models.StatusScheduled,
		models.StatusCancelled,
	},
	models.StatusScheduled: {
		models.StatusConfirmed,
		models.StatusPendingCancellation,
		models.StatusCancelled,
		models.StatusNoShow,
		models.StatusCompleted,
	},
	models.StatusConfirmed: {
		models.StatusPendingCancellation,
		models.StatusCancelled,
		models.StatusNoShow,
		models.StatusCompleted,
	},
	models.StatusPendingCancellation: {
		models.StatusCancelled,
		models.StatusScheduled,
	},
}

// CanTransition reports whether the lifecycle permits from -> to.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
