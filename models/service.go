package models

// Service is a bookable salon treatment. BreakTimeMinutes is cleanup
// time appended after the service; it blocks the calendar like the
// service itself.
type Service struct {
	ID               string  `bson:"id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	Description      string  `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes  int     `bson:"durationMinutes" json:"durationMinutes"`
	BreakTimeMinutes int     `bson:"breakTimeMinutes,omitempty" json:"breakTimeMinutes,omitempty"`
	Price            float64 `bson:"price,omitempty" json:"price,omitempty"`
	Active           bool    `bson:"active" json:"active"`
}

// BlockingMinutes is the total calendar time the service occupies.
func (s Service) BlockingMinutes() int {
	return s.DurationMinutes + s.BreakTimeMinutes
}

// TotalBlockingMinutes sums the blocking time of a multi-service booking.
func TotalBlockingMinutes(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.BlockingMinutes()
	}
	return total
}
