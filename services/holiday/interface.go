// File: services/holiday/interface.go
package holiday

import (
	"context"

	"glowdesk/models"
	"glowdesk/services/schedule"
)

// HolidayService owns the holiday calendar: admin CRUD plus the lookup
// snapshots the schedule core consumes.
type HolidayService interface {
	ListYear(ctx context.Context, year int) ([]models.Holiday, error)
	Upsert(ctx context.Context, holiday models.Holiday) error
	Delete(ctx context.Context, date models.DateKey) error
	// LookupRange returns a pure lookup covering [from, from+days).
	LookupRange(ctx context.Context, from models.DateKey, days int) (schedule.HolidayLookup, error)
	// RefreshYear rebuilds the cached memo for a year.
	RefreshYear(ctx context.Context, year int) error
}
