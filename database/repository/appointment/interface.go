// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"glowdesk/database"
	"glowdesk/models"
	"glowdesk/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateTimes(ctx context.Context, id string, start, end time.Time) error
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	Update(ctx context.Context, appt *models.Appointment) error
	GetByCalendarAndRange(ctx context.Context, calendarID string, from, to time.Time) ([]models.Appointment, error)
	GetByRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	MarkPastAs(ctx context.Context, before time.Time, fromStatuses []models.AppointmentStatus, to models.AppointmentStatus) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to ensure appointment indexes", zap.Error(err))
	}
	return repo
}
