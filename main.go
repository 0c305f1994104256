// File: glowdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowdesk/config"
	"glowdesk/cron"
	"glowdesk/database"
	appointmentRepo "glowdesk/database/repository/appointment"
	clientRepo "glowdesk/database/repository/client"
	holidayRepo "glowdesk/database/repository/holiday"
	hoursRepo "glowdesk/database/repository/hours"
	serviceRepo "glowdesk/database/repository/service"
	"glowdesk/handlers"
	"glowdesk/routes"
	"glowdesk/services/booking"
	"glowdesk/services/calendar"
	"glowdesk/services/holiday"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()
	cliRepo := clientRepo.NewMongoClientRepo()
	hrsRepo := hoursRepo.NewMongoHoursRepo()
	holRepo := holidayRepo.NewMongoHolidayRepo()

	// services.
	holidayService := &holiday.DefaultHolidayService{
		Repo:  holRepo,
		Cache: utils.GetCacheClient(),
	}

	bookingService := &booking.DefaultBookingSessionService{
		ServiceRepo:     svcRepo,
		AppointmentRepo: apptRepo,
		ClientRepo:      cliRepo,
		HoursRepo:       hrsRepo,
		HolidaySvc:      holidayService,
		Cache:           utils.GetCacheClient(),
	}

	calendarService := &calendar.DefaultCalendarService{
		AppointmentRepo: apptRepo,
		HoursRepo:       hrsRepo,
		ServiceRepo:     svcRepo,
		HolidaySvc:      holidayService,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	calendarHandler := handlers.NewCalendarHandler(calendarService, logger)
	hoursHandler := handlers.NewHoursHandler(hrsRepo)
	holidayHandler := handlers.NewHolidayHandler(holidayService)
	clientHandler := handlers.NewClientHandler(cliRepo, apptRepo)
	serviceHandler := handlers.NewServiceHandler(svcRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public booking endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		GetWeekSlots:    bookingHandler.GetWeekSlots,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelSession:   bookingHandler.CancelSession,
		ListServices:    serviceHandler.ListPublic,

		// Admin auth.
		AdminLogin:  handlers.AdminLoginHandler,
		AdminLogout: handlers.AdminLogoutHandler,

		// Calendar endpoints.
		DayView:           calendarHandler.DayView,
		ListRange:         calendarHandler.ListRange,
		CheckAppointment:  calendarHandler.Check,
		CreateAppointment: calendarHandler.CreateAppointment,
		MoveAppointment:   calendarHandler.MoveAppointment,
		TransitionStatus:  calendarHandler.TransitionStatus,
		AdminSlots:        calendarHandler.AdminSlots,

		// Business-hours endpoints.
		GetHours:       hoursHandler.GetSettings,
		ReplaceOpening: hoursHandler.ReplaceOpening,
		ReplaceClosing: hoursHandler.ReplaceClosing,

		// Holiday endpoints.
		ListHolidays:  holidayHandler.ListYear,
		UpsertHoliday: holidayHandler.Upsert,
		DeleteHoliday: holidayHandler.Delete,

		// Client endpoints.
		ListClients:   clientHandler.List,
		GetClient:     clientHandler.Get,
		ClientHistory: clientHandler.History,
		CreateClient:  clientHandler.Create,
		UpdateClient:  clientHandler.Update,
		DeleteClient:  clientHandler.Delete,

		// Service catalogue endpoints.
		ListAllServices: serviceHandler.ListAll,
		CreateService:   serviceHandler.Create,
		UpdateService:   serviceHandler.Update,
		DeleteService:   serviceHandler.Delete,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background jobs (status sweep, holiday memo refresh).
	worker := cron.StartWorker(apptRepo, holidayService)
	defer worker.Stop()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
