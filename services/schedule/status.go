package schedule

import (
	"time"

	"glowdesk/models"
)

// HolidayLookup returns the holiday for a date, or nil when there is none.
type HolidayLookup func(models.DateKey) *models.Holiday

// SlotStatus is the result of a single open/closed query. Rule is the
// rule that decided the status, when one did: the matching closing rule,
// the matching opening rule, or a synthetic rule named after a full-day
// holiday.
type SlotStatus struct {
	Open bool
	Rule *models.BusinessHoursRule
}

// ResolveStatus decides whether the salon is open at the given instant.
//
// Precedence, highest first: a full-day holiday closes the day outright;
// closing rules (first match in list order) close their window; opening
// rules (first match) open theirs. With no opening rules at all the
// default is open; with opening rules and no match, closed. All rule
// windows are half-open [startTime, endTime).
func ResolveStatus(t time.Time, opening, closing []models.BusinessHoursRule, holidays HolidayLookup) SlotStatus {
	if holidays != nil {
		if h := holidays(models.NewDateKey(t)); h != nil && h.IsDayOff {
			return SlotStatus{Open: false, Rule: &models.BusinessHoursRule{Name: h.Name}}
		}
	}

	minute := t.Hour()*60 + t.Minute()

	for i := range closing {
		if ruleCovers(closing[i], t, minute) {
			return SlotStatus{Open: false, Rule: &closing[i]}
		}
	}

	if len(opening) == 0 {
		return SlotStatus{Open: true}
	}
	for i := range opening {
		if ruleCovers(opening[i], t, minute) {
			return SlotStatus{Open: true, Rule: &opening[i]}
		}
	}
	return SlotStatus{Open: false}
}

func ruleCovers(r models.BusinessHoursRule, t time.Time, minute int) bool {
	if !r.AppliesOn(t) {
		return false
	}
	start, end, ok := ruleWindow(r)
	if !ok {
		return false
	}
	return minute >= start && minute < end
}
