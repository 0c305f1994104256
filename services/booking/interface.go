// File: services/booking/interface.go
package booking

import (
	"context"

	"glowdesk/models"
)

// BookingSessionService drives the client-facing booking flow: a redis
// draft created on service selection, weekly availability scans against
// it, and confirmation into a pending appointment.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, serviceIDs []string) (*models.BookingSession, error)
	WeekSlots(ctx context.Context, sessionID string, weekIndex int) (*models.BookingSession, error)
	Confirm(ctx context.Context, input models.BookingConfirmInput) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error
}
