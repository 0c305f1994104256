// File: services/calendar/interface.go
package calendar

import (
	"context"
	"time"

	"glowdesk/models"
	"glowdesk/services/schedule"
)

// DayViewConfig is the admin calendar's rendering window.
type DayViewConfig struct {
	DayStartOffsetMinutes int
	SlotHeightPx          float64
}

// AppointmentInput is an admin-created or admin-edited appointment.
type AppointmentInput struct {
	CalendarID string    `json:"calendarId"`
	ClientID   string    `json:"clientId"`
	ServiceIDs []string  `json:"serviceIds"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Note       string    `json:"note"`
}

// CalendarService is the admin side of the calendar: day layout,
// warning checks, appointment edits and lifecycle transitions.
type CalendarService interface {
	DayView(ctx context.Context, date models.DateKey, calendarID string, view DayViewConfig) ([]models.AppointmentLayout, error)
	RangeAppointments(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	Check(ctx context.Context, start, end time.Time, calendarID, excludeID string) (schedule.WarningReport, error)
	Create(ctx context.Context, input AppointmentInput) (*models.Appointment, schedule.WarningReport, error)
	Move(ctx context.Context, id string, start, end time.Time) (*models.Appointment, schedule.WarningReport, error)
	Transition(ctx context.Context, id string, to models.AppointmentStatus) (*models.Appointment, error)
	SlotsForRange(ctx context.Context, from models.DateKey, days, durationMinutes int, excludeID string) (map[string][]string, error)
}
