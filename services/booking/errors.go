// File: services/booking/errors.go
package booking

import "errors"

var (
	// ErrSessionNotFound means the booking draft expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrNoServices means the draft selects no bookable services.
	ErrNoServices = errors.New("no bookable services selected")
	// ErrSlotTaken means another appointment claimed the span first.
	ErrSlotTaken = errors.New("the selected time is no longer available")
	// ErrClosed means the requested start falls in a closed period.
	ErrClosed = errors.New("the salon is closed at the selected time")
)
