package models

// Holiday marks a calendar date with a display name. When IsDayOff is
// set the whole day is treated as closed, overriding every opening and
// closing rule.
type Holiday struct {
	Date     DateKey `bson:"date" json:"date"`
	Name     string  `bson:"name" json:"name"`
	IsDayOff bool    `bson:"isDayOff" json:"isDayOff"`
}
