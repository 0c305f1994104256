// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowdesk/models"
	"glowdesk/services/booking"
	"glowdesk/utils"
)

// BookingHandler exposes the client-facing booking flow.
type BookingHandler struct {
	Svc    booking.BookingSessionService
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// InitiateSession creates a booking draft from the selected services.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		ServiceIDs []string `json:"serviceIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.InitiateSession(c.Request.Context(), input.ServiceIDs)
	if err != nil {
		if errors.Is(err, booking.ErrNoServices) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetWeekSlots returns the bookable start times for one week of the draft.
func (h *BookingHandler) GetWeekSlots(c *gin.Context) {
	sessionID := c.Param("sessionID")
	week, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week index"})
		return
	}

	session, err := h.Svc.WeekSlots(c.Request.Context(), sessionID, week)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId":    session.SessionID,
		"availability": session.Availability,
	})
}

// ConfirmBooking turns the draft into a pending appointment.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input models.BookingConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.Confirm(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrSlotTaken), errors.Is(err, booking.ErrClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelSession drops a booking draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.CancelSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
