// File: handlers/holiday.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glowdesk/models"
	"glowdesk/services/holiday"
	"glowdesk/utils"
)

// HolidayHandler manages the holiday calendar.
type HolidayHandler struct {
	Svc holiday.HolidayService
}

// NewHolidayHandler constructs a HolidayHandler.
func NewHolidayHandler(svc holiday.HolidayService) *HolidayHandler {
	return &HolidayHandler{Svc: svc}
}

// ListYear returns a year's holidays.
func (h *HolidayHandler) ListYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	holidays, err := h.Svc.ListYear(c.Request.Context(), year)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list holidays", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "holidays": holidays})
}

// Upsert stores or replaces a holiday.
func (h *HolidayHandler) Upsert(c *gin.Context) {
	var input struct {
		Date     string `json:"date" binding:"required"`
		Name     string `json:"name" binding:"required"`
		IsDayOff bool   `json:"isDayOff"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := models.ParseDateKey(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
		return
	}

	h2 := models.Holiday{Date: date, Name: input.Name, IsDayOff: input.IsDayOff}
	if err := h.Svc.Upsert(c.Request.Context(), h2); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save holiday", err.Error())
		return
	}
	c.JSON(http.StatusOK, h2)
}

// Delete removes a holiday by date.
func (h *HolidayHandler) Delete(c *gin.Context) {
	date, err := models.ParseDateKey(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), date); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete holiday", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
