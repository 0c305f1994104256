package schedule

import (
	"fmt"

	"glowdesk/models"
)

const (
	// SlotIntervalMinutes is the scanning and layout granularity.
	SlotIntervalMinutes = 15
	// MinutesPerDay covers the full 00:00-24:00 grid.
	MinutesPerDay = 24 * 60
)

// ParseClock converts a strict "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hh*60 + mm, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ruleWindow parses a rule's time bounds. Rules with malformed times are
// skipped by the resolver; persisted rules are validated on save.
func ruleWindow(r models.BusinessHoursRule) (start, end int, ok bool) {
	start, err := ParseClock(r.StartTime)
	if err != nil {
		return 0, 0, false
	}
	end, err = ParseClock(r.EndTime)
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}
