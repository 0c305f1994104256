package routes

import (
	"glowdesk/handlers"
	"glowdesk/middleware"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the public endpoints for the online booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID/slots", hb.GetWeekSlots)
		bookingGroup.POST("/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterPublicCatalogRoutes exposes the bookable service catalogue.
func RegisterPublicCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.ListServices)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "glowdesk up"})
	})
}

// RegisterAdminRoutes sets up the back-office endpoints. Everything but
// login requires a valid admin JWT.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLogin)

		// Protected routes (Require Authentication)
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.POST("/logout", hb.AdminLogout)

		// Appointments and calendar
		adminGroup.GET("/calendar/day", hb.DayView)
		adminGroup.GET("/appointments", hb.ListRange)
		adminGroup.GET("/slots", hb.AdminSlots)
		adminGroup.POST("/appointments", hb.CreateAppointment)
		adminGroup.POST("/appointments/check", hb.CheckAppointment)
		adminGroup.PUT("/appointments/:id/move", hb.MoveAppointment)
		adminGroup.PUT("/appointments/:id/status", hb.TransitionStatus)

		// Business hours
		adminGroup.GET("/hours", hb.GetHours)
		adminGroup.PUT("/hours/opening", hb.ReplaceOpening)
		adminGroup.PUT("/hours/closing", hb.ReplaceClosing)

		// Holidays
		adminGroup.GET("/holidays/:year", hb.ListHolidays)
		adminGroup.PUT("/holidays", hb.UpsertHoliday)
		adminGroup.DELETE("/holidays/:date", hb.DeleteHoliday)

		// Clients
		adminGroup.GET("/clients", hb.ListClients)
		adminGroup.GET("/clients/:id", hb.GetClient)
		adminGroup.GET("/clients/:id/history", hb.ClientHistory)
		adminGroup.POST("/clients", hb.CreateClient)
		adminGroup.PUT("/clients/:id", hb.UpdateClient)
		adminGroup.DELETE("/clients/:id", hb.DeleteClient)

		// Service catalogue
		adminGroup.GET("/services", hb.ListAllServices)
		adminGroup.POST("/services", hb.CreateService)
		adminGroup.PUT("/services/:id", hb.UpdateService)
		adminGroup.DELETE("/services/:id", hb.DeleteService)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPublicCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
