// File: database/repository/holiday/interface.go
package holidayRepo

import (
	"context"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type HolidayRepository interface {
	ListYear(ctx context.Context, year int) ([]models.Holiday, error)
	Upsert(ctx context.Context, holiday models.Holiday) error
	Delete(ctx context.Context, date models.DateKey) error
}

type mongoHolidayRepo struct {
	coll *mongo.Collection
}

// NewMongoHolidayRepo constructs a new MongoDB HolidayRepository.
func NewMongoHolidayRepo() HolidayRepository {
	return &mongoHolidayRepo{
		coll: database.DB().Collection("holidays"),
	}
}
