// File: handlers/calendar.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowdesk/models"
	"glowdesk/services/calendar"
	"glowdesk/utils"
)

// CalendarHandler exposes the admin calendar: day layout, warning checks,
// appointment edits and lifecycle transitions.
type CalendarHandler struct {
	Svc    calendar.CalendarService
	Logger *zap.Logger
}

// NewCalendarHandler constructs a CalendarHandler.
func NewCalendarHandler(svc calendar.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Svc: svc, Logger: logger}
}

// DayView returns render geometry for one day of the admin calendar.
func (h *CalendarHandler) DayView(c *gin.Context) {
	date, err := models.ParseDateKey(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
		return
	}
	calendarID := c.DefaultQuery("calendarId", models.DefaultCalendarID)

	view := calendar.DayViewConfig{}
	if v := c.Query("dayStartOffset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dayStartOffset"})
			return
		}
		view.DayStartOffsetMinutes = offset
	}
	if v := c.Query("slotHeight"); v != "" {
		height, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slotHeight"})
			return
		}
		view.SlotHeightPx = height
	}

	layouts, err := h.Svc.DayView(c.Request.Context(), date, calendarID, view)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute day view", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date.String(), "appointments": layouts})
}

// ListRange lists appointments intersecting a time range.
func (h *CalendarHandler) ListRange(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from", "details": err.Error()})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to", "details": err.Error()})
		return
	}

	appointments, err := h.Svc.RangeAppointments(c.Request.Context(), from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

type checkInput struct {
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	CalendarID string    `json:"calendarId"`
	ExcludeID  string    `json:"excludeId"`
}

// Check returns warnings for a candidate time range without saving.
func (h *CalendarHandler) Check(c *gin.Context) {
	var input checkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.CalendarID == "" {
		input.CalendarID = models.DefaultCalendarID
	}

	report, err := h.Svc.Check(c.Request.Context(), input.Start, input.End, input.CalendarID, input.ExcludeID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to evaluate warnings", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateAppointment saves an admin appointment; a closed start rejects it.
func (h *CalendarHandler) CreateAppointment(c *gin.Context) {
	var input calendar.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, report, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", err.Error())
		return
	}
	if report.BlocksSave {
		c.JSON(http.StatusConflict, gin.H{"warnings": report.Warnings, "blocksSave": true})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt, "warnings": report.Warnings})
}

type moveInput struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

// MoveAppointment reschedules an existing appointment.
func (h *CalendarHandler) MoveAppointment(c *gin.Context) {
	id := c.Param("id")
	var input moveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, report, err := h.Svc.Move(c.Request.Context(), id, input.Start, input.End)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to move appointment", err.Error())
		return
	}
	if report.BlocksSave {
		c.JSON(http.StatusConflict, gin.H{"warnings": report.Warnings, "blocksSave": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt, "warnings": report.Warnings})
}

// TransitionStatus applies a lifecycle change to an appointment.
func (h *CalendarHandler) TransitionStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.Transition(c.Request.Context(), id, input.Status)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AdminSlots runs the availability scanner for the admin side, optionally
// excluding the appointment being rescheduled.
func (h *CalendarHandler) AdminSlots(c *gin.Context) {
	from, err := models.ParseDateKey(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date", "details": err.Error()})
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 31 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration"})
		return
	}

	slots, err := h.Svc.SlotsForRange(c.Request.Context(), from, days, duration, c.Query("excludeId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": slots})
}
