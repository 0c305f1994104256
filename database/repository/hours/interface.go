// File: database/repository/hours/interface.go
package hoursRepo

import (
	"context"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// HoursRepository stores the single business-hours settings document.
type HoursRepository interface {
	Get(ctx context.Context) (*models.HoursSettings, error)
	ReplaceOpening(ctx context.Context, rules []models.BusinessHoursRule) (*models.HoursSettings, error)
	ReplaceClosing(ctx context.Context, rules []models.BusinessHoursRule) (*models.HoursSettings, error)
}

type mongoHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoHoursRepo constructs a new MongoDB HoursRepository.
func NewMongoHoursRepo() HoursRepository {
	return &mongoHoursRepo{
		coll: database.DB().Collection("settings"),
	}
}
