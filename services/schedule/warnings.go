package schedule

import (
	"fmt"
	"time"

	"glowdesk/models"
)

// WarningReport lists human-facing warnings for a candidate time range.
// Only a closed-at-start warning blocks saving; collisions and
// end-outside-hours warnings are advisory.
type WarningReport struct {
	Warnings   []string `json:"warnings"`
	BlocksSave bool     `json:"blocksSave"`
}

// EvaluateWarnings checks a candidate or edited appointment against the
// business-hours rules and the calendar's other appointments. Each check
// is independent; the end-of-range check is skipped only when the start
// was already reported closed.
func EvaluateWarnings(
	start, end time.Time,
	calendarID string,
	appointments []models.Appointment,
	excludeID string,
	opening, closing []models.BusinessHoursRule,
	holidays HolidayLookup,
) WarningReport {
	var report WarningReport

	startStatus := ResolveStatus(start, opening, closing, holidays)
	if !startStatus.Open {
		msg := "The calendar is closed at the selected start time."
		if startStatus.Rule != nil && startStatus.Rule.Name != "" {
			msg = fmt.Sprintf("The calendar is closed at the selected start time (%s).", startStatus.Rule.Name)
		}
		report.Warnings = append(report.Warnings, msg)
		report.BlocksSave = true
	} else {
		// Last occupied minute: one minute before the exclusive end.
		endStatus := ResolveStatus(end.Add(-time.Minute), opening, closing, holidays)
		if !endStatus.Open {
			report.Warnings = append(report.Warnings, "The appointment ends outside business hours.")
		}
	}

	for _, a := range appointments {
		if a.CalendarID != calendarID || !a.Active() {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if a.Overlaps(start, end) {
			report.Warnings = append(report.Warnings, "The selected time overlaps another appointment on this calendar.")
			break
		}
	}
	return report
}
