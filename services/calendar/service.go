// File: services/calendar/service.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"glowdesk/config"
	appointmentRepo "glowdesk/database/repository/appointment"
	hoursRepo "glowdesk/database/repository/hours"
	serviceRepo "glowdesk/database/repository/service"
	"glowdesk/models"
	"glowdesk/services/holiday"
	"glowdesk/services/schedule"
	"glowdesk/utils"
)

// DefaultSlotHeightPx matches the admin day view's 15-minute row height.
const DefaultSlotHeightPx = 48

// DefaultCalendarService is the production admin calendar.
type DefaultCalendarService struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	HoursRepo       hoursRepo.HoursRepository
	ServiceRepo     serviceRepo.ServiceRepository
	HolidaySvc      holiday.HolidayService

	Now func() time.Time
}

func (s *DefaultCalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().In(config.Location())
}

// DayView returns the day's appointments with render geometry.
func (s *DefaultCalendarService) DayView(ctx context.Context, date models.DateKey, calendarID string, view DayViewConfig) ([]models.AppointmentLayout, error) {
	if view.SlotHeightPx <= 0 {
		view.SlotHeightPx = DefaultSlotHeightPx
	}

	loc := s.now().Location()
	from := date.Time(loc)
	to := date.AddDays(1).Time(loc)
	appointments, err := s.AppointmentRepo.GetByCalendarAndRange(ctx, calendarID, from, to)
	if err != nil {
		return nil, err
	}

	layouts := schedule.LayoutDay(appointments, view.DayStartOffsetMinutes, schedule.SlotIntervalMinutes, view.SlotHeightPx)
	return layouts, nil
}

// RangeAppointments lists appointments intersecting [from, to) across
// all calendars, for list views and exports.
func (s *DefaultCalendarService) RangeAppointments(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return s.AppointmentRepo.GetByRange(ctx, from, to)
}

// Check evaluates warnings for a candidate span without persisting anything.
func (s *DefaultCalendarService) Check(ctx context.Context, start, end time.Time, calendarID, excludeID string) (schedule.WarningReport, error) {
	settings, err := s.HoursRepo.Get(ctx)
	if err != nil {
		return schedule.WarningReport{}, fmt.Errorf("failed to load business hours: %w", err)
	}
	lookup, err := s.HolidaySvc.LookupRange(ctx, models.NewDateKey(start), 1)
	if err != nil {
		return schedule.WarningReport{}, err
	}
	appointments, err := s.AppointmentRepo.GetByCalendarAndRange(ctx, calendarID, start, end)
	if err != nil {
		return schedule.WarningReport{}, err
	}

	return schedule.EvaluateWarnings(start, end, calendarID, appointments, excludeID, settings.Opening, settings.Closing, lookup), nil
}

// Create saves an admin appointment unless the start is in a closed
// period. Advisory warnings come back alongside the saved appointment.
func (s *DefaultCalendarService) Create(ctx context.Context, input AppointmentInput) (*models.Appointment, schedule.WarningReport, error) {
	if input.CalendarID == "" {
		input.CalendarID = models.DefaultCalendarID
	}

	end := input.End
	if end.IsZero() {
		if len(input.ServiceIDs) == 0 {
			return nil, schedule.WarningReport{}, fmt.Errorf("appointment needs an end time or services")
		}
		services, err := s.ServiceRepo.GetByIDs(ctx, input.ServiceIDs)
		if err != nil {
			return nil, schedule.WarningReport{}, err
		}
		end = input.Start.Add(time.Duration(models.TotalBlockingMinutes(services)) * time.Minute)
	}
	if !input.Start.Before(end) {
		return nil, schedule.WarningReport{}, fmt.Errorf("appointment start must precede end")
	}

	report, err := s.Check(ctx, input.Start, end, input.CalendarID, "")
	if err != nil {
		return nil, schedule.WarningReport{}, err
	}
	if report.BlocksSave {
		return nil, report, nil
	}

	appt := &models.Appointment{
		CalendarID: input.CalendarID,
		ClientID:   input.ClientID,
		Start:      input.Start,
		End:        end,
		Status:     models.StatusScheduled,
		ServiceIDs: input.ServiceIDs,
		Note:       input.Note,
	}
	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		return nil, report, err
	}

	utils.GetLogger().Info("appointment created",
		zap.String("appointmentID", appt.ID),
		zap.Time("start", appt.Start))
	return appt, report, nil
}

// Move reschedules an appointment, excluding itself from the collision
// check. A closed start blocks the move; other warnings are advisory.
func (s *DefaultCalendarService) Move(ctx context.Context, id string, start, end time.Time) (*models.Appointment, schedule.WarningReport, error) {
	appt, err := s.AppointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, schedule.WarningReport{}, err
	}
	if !start.Before(end) {
		return nil, schedule.WarningReport{}, fmt.Errorf("appointment start must precede end")
	}

	report, err := s.Check(ctx, start, end, appt.CalendarID, appt.ID)
	if err != nil {
		return nil, schedule.WarningReport{}, err
	}
	if report.BlocksSave {
		return appt, report, nil
	}

	if err := s.AppointmentRepo.UpdateTimes(ctx, id, start, end); err != nil {
		return nil, report, err
	}
	appt.Start, appt.End = start, end

	utils.GetLogger().Info("appointment moved",
		zap.String("appointmentID", id),
		zap.Time("start", start))
	return appt, report, nil
}

// Transition applies a lifecycle change after validating it.
func (s *DefaultCalendarService) Transition(ctx context.Context, id string, to models.AppointmentStatus) (*models.Appointment, error) {
	if !models.IsValidStatus(to) {
		return nil, fmt.Errorf("unknown appointment status %q", to)
	}
	appt, err := s.AppointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(appt.Status, to) {
		return nil, fmt.Errorf("cannot transition appointment from %s to %s", appt.Status, to)
	}
	if err := s.AppointmentRepo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	appt.Status = to
	return appt, nil
}

// SlotsForRange runs the availability scanner for the admin side, e.g.
// when rescheduling (excludeID skips the appointment being moved).
func (s *DefaultCalendarService) SlotsForRange(ctx context.Context, from models.DateKey, days, durationMinutes int, excludeID string) (map[string][]string, error) {
	settings, err := s.HoursRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load business hours: %w", err)
	}
	lookup, err := s.HolidaySvc.LookupRange(ctx, from, days)
	if err != nil {
		return nil, err
	}

	now := s.now()
	loc := now.Location()
	appointments, err := s.AppointmentRepo.GetByCalendarAndRange(ctx, models.DefaultCalendarID, from.Time(loc), from.AddDays(days).Time(loc))
	if err != nil {
		return nil, err
	}

	perDay := schedule.AvailableSlots(from, days, durationMinutes, appointments, excludeID, settings.Opening, settings.Closing, lookup, now)
	out := make(map[string][]string, len(perDay))
	for day, slots := range perDay {
		out[day.String()] = slots
	}
	return out, nil
}
