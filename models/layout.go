package models

// AppointmentLayout annotates an appointment with render geometry for
// the day view. Top and Height are pixels; Width and Left are percent
// of the day column, so side-by-side appointments share the lane evenly.
type AppointmentLayout struct {
	Appointment Appointment `json:"appointment"`
	Top         float64     `json:"top"`
	Height      float64     `json:"height"`
	Width       float64     `json:"width"`
	Left        float64     `json:"left"`
}
