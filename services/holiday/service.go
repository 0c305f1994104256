// File: services/holiday/service.go
package holiday

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	holidayRepo "glowdesk/database/repository/holiday"
	"glowdesk/models"
	"glowdesk/services/schedule"
	"glowdesk/utils"
)

// DefaultHolidayService backs the holiday calendar with Mongo and memoizes
// whole years in redis, since the scanner asks for the same year hundreds
// of times per availability scan.
type DefaultHolidayService struct {
	Repo  holidayRepo.HolidayRepository
	Cache *redis.Client
}

func yearKey(year int) string {
	return fmt.Sprintf("%s%d", utils.HolidayCachePrefix, year)
}

// ListYear returns a year's holidays, serving from the redis memo when warm.
func (s *DefaultHolidayService) ListYear(ctx context.Context, year int) ([]models.Holiday, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, yearKey(year)).Result()
		if err == nil {
			var holidays []models.Holiday
			if err := json.Unmarshal([]byte(raw), &holidays); err == nil {
				return holidays, nil
			}
			logger.Warn("holiday memo corrupt, falling through to Mongo", zap.Int("year", year))
		}
	}

	holidays, err := s.Repo.ListYear(ctx, year)
	if err != nil {
		return nil, err
	}
	s.memoize(ctx, year, holidays)
	return holidays, nil
}

func (s *DefaultHolidayService) memoize(ctx context.Context, year int, holidays []models.Holiday) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(holidays)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, yearKey(year), data, utils.HolidayCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to memoize holidays", zap.Int("year", year), zap.Error(err))
	}
}

func (s *DefaultHolidayService) invalidate(ctx context.Context, year int) {
	if s.Cache != nil {
		s.Cache.Del(ctx, yearKey(year))
	}
}

// Upsert stores a holiday and drops the year memo.
func (s *DefaultHolidayService) Upsert(ctx context.Context, holiday models.Holiday) error {
	if err := s.Repo.Upsert(ctx, holiday); err != nil {
		return err
	}
	s.invalidate(ctx, holiday.Date.Year)
	return nil
}

// Delete removes a holiday and drops the year memo.
func (s *DefaultHolidayService) Delete(ctx context.Context, date models.DateKey) error {
	if err := s.Repo.Delete(ctx, date); err != nil {
		return err
	}
	s.invalidate(ctx, date.Year)
	return nil
}

// LookupRange builds an in-memory snapshot of every holiday the range can
// touch and returns a pure lookup over it. The snapshot keeps the core
// deterministic: no I/O happens inside the scan.
func (s *DefaultHolidayService) LookupRange(ctx context.Context, from models.DateKey, days int) (schedule.HolidayLookup, error) {
	byDate := make(map[models.DateKey]models.Holiday)

	lastYear := from.AddDays(days - 1).Year
	for year := from.Year; year <= lastYear; year++ {
		holidays, err := s.ListYear(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to load holidays for %d: %w", year, err)
		}
		for _, h := range holidays {
			byDate[h.Date] = h
		}
	}

	return func(k models.DateKey) *models.Holiday {
		if h, ok := byDate[k]; ok {
			return &h
		}
		return nil
	}, nil
}

// RefreshYear re-reads a year from Mongo into the memo.
func (s *DefaultHolidayService) RefreshYear(ctx context.Context, year int) error {
	holidays, err := s.Repo.ListYear(ctx, year)
	if err != nil {
		return err
	}
	s.memoize(ctx, year, holidays)
	return nil
}
