package schedule

import (
	"time"

	"glowdesk/models"
)

// AvailableSlots enumerates bookable "HH:MM" start times per day.
//
// Candidates are generated on the 15-minute grid over the whole day.
// A candidate survives only when every 15-minute checkpoint across the
// full service duration resolves to open and the occupied span does not
// overlap any active appointment (excludeID is skipped, for reschedules).
// Days before today are skipped entirely, and on the current day any
// candidate at or before now is discarded.
func AvailableSlots(
	from models.DateKey,
	days int,
	durationMinutes int,
	appointments []models.Appointment,
	excludeID string,
	opening, closing []models.BusinessHoursRule,
	holidays HolidayLookup,
	now time.Time,
) map[models.DateKey][]string {
	result := make(map[models.DateKey][]string, days)
	if durationMinutes <= 0 {
		return result
	}

	loc := now.Location()
	today := models.NewDateKey(now)

	for i := 0; i < days; i++ {
		day := from.AddDays(i)
		if day.Before(today) {
			continue
		}

		dayStart := day.Time(loc)
		var slots []string

		for startMin := 0; startMin < MinutesPerDay; startMin += SlotIntervalMinutes {
			candidate := dayStart.Add(time.Duration(startMin) * time.Minute)
			if !candidate.After(now) {
				continue
			}
			candidateEnd := candidate.Add(time.Duration(durationMinutes) * time.Minute)

			if !spanOpen(candidate, candidateEnd, opening, closing, holidays) {
				continue
			}
			if overlapsExisting(candidate, candidateEnd, appointments, excludeID) {
				continue
			}
			slots = append(slots, FormatClock(startMin))
		}
		result[day] = slots
	}
	return result
}

// spanOpen checks every 15-minute checkpoint in [start, end).
func spanOpen(start, end time.Time, opening, closing []models.BusinessHoursRule, holidays HolidayLookup) bool {
	for t := start; t.Before(end); t = t.Add(SlotIntervalMinutes * time.Minute) {
		if !ResolveStatus(t, opening, closing, holidays).Open {
			return false
		}
	}
	return true
}

func overlapsExisting(start, end time.Time, appointments []models.Appointment, excludeID string) bool {
	for _, a := range appointments {
		if !a.Active() || (excludeID != "" && a.ID == excludeID) {
			continue
		}
		if a.Overlaps(start, end) {
			return true
		}
	}
	return false
}
