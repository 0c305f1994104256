package models

import (
	"fmt"
	"time"
)

// DateKey identifies a calendar day without any time-of-day or timezone
// component. It replaces raw "yyyy-MM-dd" string keying so day lookups
// cannot drift with locale or DST.
type DateKey struct {
	Year  int        `bson:"year" json:"year"`
	Month time.Month `bson:"month" json:"month"`
	Day   int        `bson:"day" json:"day"`
}

// NewDateKey builds a DateKey from the date portion of t.
func NewDateKey(t time.Time) DateKey {
	return DateKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDateKey parses a "2006-01-02" formatted date string.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateKey{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDateKey(t), nil
}

// String renders the key as "2006-01-02".
func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month, k.Day)
}

// Time returns midnight of the day in the given location.
func (k DateKey) Time(loc *time.Location) time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the key of the day n days after k.
func (k DateKey) AddDays(n int) DateKey {
	return NewDateKey(k.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports whether k is an earlier day than other.
func (k DateKey) Before(other DateKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}
