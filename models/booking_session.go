package models

// BookingSession is a client's in-progress booking draft, cached in
// redis between service selection and confirmation.
type BookingSession struct {
	SessionID       string              `json:"sessionId"`
	ServiceIDs      []string            `json:"serviceIds"`
	DurationMinutes int                 `json:"durationMinutes"`
	CalendarID      string              `json:"calendarId"`
	Availability    map[string][]string `json:"availability,omitempty"`
}

// BookingConfirmInput is the payload to turn a session into an appointment.
type BookingConfirmInput struct {
	SessionID string `json:"sessionId" binding:"required"`
	Date      string `json:"date" binding:"required"`      // "2006-01-02"
	StartTime string `json:"startTime" binding:"required"` // "HH:MM"
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Note      string `json:"note,omitempty"`
}
