package models

import "time"

// DefaultCalendarID is the salon's single booking calendar. Multi-chair
// salons can add more calendars; everything keys off CalendarID.
const DefaultCalendarID = "main"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled           AppointmentStatus = "scheduled"
	StatusConfirmed           AppointmentStatus = "confirmed"
	StatusPending             AppointmentStatus = "pending"
	StatusPendingCancellation AppointmentStatus = "pending_cancellation"
	StatusCancelled           AppointmentStatus = "cancelled"
	StatusNoShow              AppointmentStatus = "no-show"
	StatusCompleted           AppointmentStatus = "completed"
)

// IsValidStatus reports whether s is a known appointment status.
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusPending,
		StatusPendingCancellation, StatusCancelled, StatusNoShow, StatusCompleted:
		return true
	}
	return false
}

// Appointment is a booked time range on a calendar. Appointments are
// never hard-deleted; cancellation is a status transition. Cancelled
// appointments do not participate in collision checks.
type Appointment struct {
	ID         string            `bson:"id" json:"id"`
	CalendarID string            `bson:"calendarId" json:"calendarId"`
	ClientID   string            `bson:"clientId,omitempty" json:"clientId,omitempty"`
	Start      time.Time         `bson:"start" json:"start"`
	End        time.Time         `bson:"end" json:"end"`
	Status     AppointmentStatus `bson:"status" json:"status"`
	ServiceIDs []string          `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	Note       string            `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// Active reports whether the appointment still blocks its time range.
func (a Appointment) Active() bool {
	return a.Status != StatusCancelled
}

// DurationMinutes returns the booked length in whole minutes.
func (a Appointment) DurationMinutes() int {
	return int(a.End.Sub(a.Start) / time.Minute)
}

// Overlaps reports whether the half-open ranges [a.Start, a.End) and
// [start, end) intersect.
func (a Appointment) Overlaps(start, end time.Time) bool {
	return start.Before(a.End) && end.After(a.Start)
}
