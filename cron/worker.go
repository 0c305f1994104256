package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"glowdesk/config"
	appointmentRepo "glowdesk/database/repository/appointment"
	"glowdesk/models"
	"glowdesk/services/holiday"
	"glowdesk/utils"
)

const sweepTimeout = 2 * time.Minute

// StartWorker schedules the background jobs and returns the running
// scheduler so the caller can stop it on shutdown. Both jobs are
// idempotent; a missed run is caught up by the next one.
func StartWorker(apptRepo appointmentRepo.AppointmentRepository, holidaySvc holiday.HolidayService) *cron.Cron {
	logger := utils.GetLogger()
	c := cron.New(cron.WithLocation(config.Location()))

	// Nightly status sweep just after midnight.
	c.AddFunc("15 0 * * *", func() {
		sweepPastAppointments(apptRepo, logger)
	})

	// Hourly refresh of the holiday memo for the current year.
	c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		year := time.Now().In(config.Location()).Year()
		if err := holidaySvc.RefreshYear(ctx, year); err != nil {
			logger.Error("Holiday memo refresh failed", zap.Int("year", year), zap.Error(err))
		}
	})

	c.Start()
	logger.Info("Background worker started")
	return c
}

// sweepPastAppointments finalizes appointments whose end time has
// passed: fulfilled bookings become completed, unconfirmed ones no-show.
func sweepPastAppointments(apptRepo appointmentRepo.AppointmentRepository, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	now := time.Now().In(config.Location())

	completed, err := apptRepo.MarkPastAs(ctx, now,
		[]models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed},
		models.StatusCompleted)
	if err != nil {
		logger.Error("Sweep to completed failed", zap.Error(err))
	}

	noShow, err := apptRepo.MarkPastAs(ctx, now,
		[]models.AppointmentStatus{models.StatusPending},
		models.StatusNoShow)
	if err != nil {
		logger.Error("Sweep to no-show failed", zap.Error(err))
	}

	logger.Info("Nightly appointment sweep done",
		zap.Int64("completed", completed),
		zap.Int64("noShow", noShow))
}
