// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public booking endpoints
	InitiateSession gin.HandlerFunc
	GetWeekSlots    gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	ListServices    gin.HandlerFunc

	// Admin auth
	AdminLogin  gin.HandlerFunc
	AdminLogout gin.HandlerFunc

	// Calendar endpoints
	DayView           gin.HandlerFunc
	ListRange         gin.HandlerFunc
	CheckAppointment  gin.HandlerFunc
	CreateAppointment gin.HandlerFunc
	MoveAppointment   gin.HandlerFunc
	TransitionStatus  gin.HandlerFunc
	AdminSlots        gin.HandlerFunc

	// Business-hours endpoints
	GetHours       gin.HandlerFunc
	ReplaceOpening gin.HandlerFunc
	ReplaceClosing gin.HandlerFunc

	// Holiday endpoints
	ListHolidays  gin.HandlerFunc
	UpsertHoliday gin.HandlerFunc
	DeleteHoliday gin.HandlerFunc

	// Client endpoints
	ListClients   gin.HandlerFunc
	GetClient     gin.HandlerFunc
	ClientHistory gin.HandlerFunc
	CreateClient  gin.HandlerFunc
	UpdateClient  gin.HandlerFunc
	DeleteClient  gin.HandlerFunc

	// Service catalogue endpoints (admin)
	ListAllServices gin.HandlerFunc
	CreateService   gin.HandlerFunc
	UpdateService   gin.HandlerFunc
	DeleteService   gin.HandlerFunc
}
