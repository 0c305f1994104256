package models

import "time"

// Weekday is a lowercase weekday name used in business-hours rules.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

var weekdayNames = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// WeekdayOf maps a time.Weekday to its rule name.
func WeekdayOf(d time.Weekday) Weekday {
	return weekdayNames[d]
}

// IsValidWeekday reports whether s is one of the seven weekday names.
func IsValidWeekday(s Weekday) bool {
	for _, name := range weekdayNames {
		if name == s {
			return true
		}
	}
	return false
}

// DateRange bounds a rule to a span of instants. A nil bound is open-ended.
type DateRange struct {
	From *time.Time `bson:"from,omitempty" json:"from,omitempty"`
	To   *time.Time `bson:"to,omitempty" json:"to,omitempty"`
}

// Contains reports whether t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// BusinessHoursRule describes a recurring or dated interval during which
// the salon is open (opening rule) or explicitly closed (closing rule).
// An empty Days set matches every weekday. The time window is half-open:
// a slot exactly at EndTime is not covered.
type BusinessHoursRule struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	StartTime string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Days      []Weekday `bson:"days,omitempty" json:"days"`
	DateRange DateRange `bson:"dateRange,omitempty" json:"dateRange"`
}

// AppliesOn reports whether the rule's day and date constraints match the
// given instant. The time-of-day window is checked separately.
func (r BusinessHoursRule) AppliesOn(t time.Time) bool {
	if len(r.Days) > 0 {
		day := WeekdayOf(t.Weekday())
		found := false
		for _, d := range r.Days {
			if d == day {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return r.DateRange.Contains(t)
}

// HoursSettings is the single settings document holding both rule lists.
// Closing rules take precedence over opening rules at every instant; an
// empty opening list means the salon is open by default.
type HoursSettings struct {
	ID      string              `bson:"id" json:"id"`
	Opening []BusinessHoursRule `bson:"opening" json:"opening"`
	Closing []BusinessHoursRule `bson:"closing" json:"closing"`
}
