// File: services/booking/service.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"glowdesk/config"
	appointmentRepo "glowdesk/database/repository/appointment"
	clientRepo "glowdesk/database/repository/client"
	hoursRepo "glowdesk/database/repository/hours"
	serviceRepo "glowdesk/database/repository/service"
	"glowdesk/models"
	"glowdesk/services/holiday"
	"glowdesk/services/schedule"
	"glowdesk/utils"
)

// weeksBookable caps how far ahead clients can scan for slots.
const weeksBookable = 8

// DefaultBookingSessionService is the production booking flow.
type DefaultBookingSessionService struct {
	ServiceRepo     serviceRepo.ServiceRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	ClientRepo      clientRepo.ClientRepository
	HoursRepo       hoursRepo.HoursRepository
	HolidaySvc      holiday.HolidayService
	Cache           *redis.Client

	// Now is injectable for tests; defaults to the configured timezone.
	Now func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().In(config.Location())
}

func sessionKey(id string) string {
	return utils.SessionCachePrefix + id
}

// InitiateSession resolves the selected services into a blocking duration
// and caches the draft.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, serviceIDs []string) (*models.BookingSession, error) {
	if len(serviceIDs) == 0 {
		return nil, ErrNoServices
	}

	services, err := s.ServiceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve selected services: %w", err)
	}
	for _, svc := range services {
		if !svc.Active {
			return nil, fmt.Errorf("%w: %s is not bookable", ErrNoServices, svc.Name)
		}
	}

	duration := models.TotalBlockingMinutes(services)
	if duration <= 0 {
		return nil, ErrNoServices
	}

	session := &models.BookingSession{
		SessionID:       uuid.New().String(),
		ServiceIDs:      serviceIDs,
		DurationMinutes: duration,
		CalendarID:      models.DefaultCalendarID,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	raw, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// WeekSlots refreshes the session with the requested week's bookable
// start times and re-caches it.
func (s *DefaultBookingSessionService) WeekSlots(ctx context.Context, sessionID string, weekIndex int) (*models.BookingSession, error) {
	if weekIndex < 0 || weekIndex >= weeksBookable {
		return nil, fmt.Errorf("week index %d out of range", weekIndex)
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	weekStart := models.NewDateKey(now).AddDays(weekIndex * 7)

	slots, err := s.scanWeek(ctx, session.CalendarID, weekStart, session.DurationMinutes, "", now)
	if err != nil {
		return nil, err
	}

	session.Availability = slots
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// scanWeek gathers rules, holidays and appointments and runs the pure scanner.
func (s *DefaultBookingSessionService) scanWeek(
	ctx context.Context,
	calendarID string,
	weekStart models.DateKey,
	durationMinutes int,
	excludeID string,
	now time.Time,
) (map[string][]string, error) {
	settings, err := s.HoursRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load business hours: %w", err)
	}

	lookup, err := s.HolidaySvc.LookupRange(ctx, weekStart, 7)
	if err != nil {
		return nil, err
	}

	loc := now.Location()
	rangeFrom := weekStart.Time(loc)
	rangeTo := weekStart.AddDays(7).Time(loc)
	appointments, err := s.AppointmentRepo.GetByCalendarAndRange(ctx, calendarID, rangeFrom, rangeTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	perDay := schedule.AvailableSlots(
		weekStart, 7, durationMinutes,
		appointments, excludeID,
		settings.Opening, settings.Closing, lookup,
		now,
	)

	out := make(map[string][]string, len(perDay))
	for day, slots := range perDay {
		out[day.String()] = slots
	}
	return out, nil
}

// Confirm turns a draft into a pending appointment. The span is
// re-verified at confirm time: availability shown earlier may be stale.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, input models.BookingConfirmInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	day, err := models.ParseDateKey(input.Date)
	if err != nil {
		return nil, err
	}
	startMin, err := schedule.ParseClock(input.StartTime)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := day.Time(now.Location()).Add(time.Duration(startMin) * time.Minute)
	end := start.Add(time.Duration(session.DurationMinutes) * time.Minute)
	if !start.After(now) {
		return nil, ErrSlotTaken
	}

	settings, err := s.HoursRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load business hours: %w", err)
	}
	lookup, err := s.HolidaySvc.LookupRange(ctx, day, 1)
	if err != nil {
		return nil, err
	}
	appointments, err := s.AppointmentRepo.GetByCalendarAndRange(ctx, session.CalendarID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	report := schedule.EvaluateWarnings(start, end, session.CalendarID, appointments, "", settings.Opening, settings.Closing, lookup)
	if report.BlocksSave {
		return nil, ErrClosed
	}
	for _, a := range appointments {
		if a.Active() && a.Overlaps(start, end) {
			return nil, ErrSlotTaken
		}
	}

	client, err := s.findOrCreateClient(ctx, input)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		CalendarID: session.CalendarID,
		ClientID:   client.ID,
		Start:      start,
		End:        end,
		Status:     models.StatusPending,
		ServiceIDs: session.ServiceIDs,
		Note:       input.Note,
	}
	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	if err := s.CancelSession(ctx, input.SessionID); err != nil {
		logger.Warn("failed to drop confirmed session", zap.String("sessionID", input.SessionID), zap.Error(err))
	}

	logger.Info("booking confirmed",
		zap.String("appointmentID", appt.ID),
		zap.String("clientID", client.ID),
		zap.Time("start", start))
	return appt, nil
}

// findOrCreateClient reuses the record matching the booking email, else
// creates a fresh client.
func (s *DefaultBookingSessionService) findOrCreateClient(ctx context.Context, input models.BookingConfirmInput) (*models.Client, error) {
	if input.Email != "" {
		existing, err := s.ClientRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, err
		}
	}

	client := &models.Client{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if err := s.ClientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// CancelSession drops the cached draft.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Cache.Del(ctx, sessionKey(sessionID)).Err()
}
