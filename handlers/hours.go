// File: handlers/hours.go
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	hoursRepo "glowdesk/database/repository/hours"
	"glowdesk/models"
	"glowdesk/services/schedule"
	"glowdesk/utils"
)

// HoursHandler manages the business-hours settings document.
type HoursHandler struct {
	Repo hoursRepo.HoursRepository
}

// NewHoursHandler constructs a HoursHandler.
func NewHoursHandler(repo hoursRepo.HoursRepository) *HoursHandler {
	return &HoursHandler{Repo: repo}
}

// GetSettings returns both rule lists.
func (h *HoursHandler) GetSettings(c *gin.Context) {
	settings, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load business hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// validateRules rejects malformed rules before they reach the store, so
// the schedule core never sees unparsable time windows.
func validateRules(rules []models.BusinessHoursRule) error {
	for i, r := range rules {
		start, err := schedule.ParseClock(r.StartTime)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		end, err := schedule.ParseClock(r.EndTime)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		if start >= end {
			return fmt.Errorf("rule %d: start %s must precede end %s", i, r.StartTime, r.EndTime)
		}
		for _, d := range r.Days {
			if !models.IsValidWeekday(d) {
				return fmt.Errorf("rule %d: unknown weekday %q", i, d)
			}
		}
		if r.DateRange.From != nil && r.DateRange.To != nil && r.DateRange.To.Before(*r.DateRange.From) {
			return fmt.Errorf("rule %d: date range ends before it starts", i)
		}
	}
	return nil
}

type rulesInput struct {
	Rules []models.BusinessHoursRule `json:"rules"`
}

// ReplaceOpening swaps the opening rule list.
func (h *HoursHandler) ReplaceOpening(c *gin.Context) {
	h.replace(c, h.Repo.ReplaceOpening)
}

// ReplaceClosing swaps the closing rule list.
func (h *HoursHandler) ReplaceClosing(c *gin.Context) {
	h.replace(c, h.Repo.ReplaceClosing)
}

func (h *HoursHandler) replace(c *gin.Context, save func(ctx context.Context, rules []models.BusinessHoursRule) (*models.HoursSettings, error)) {
	var input rulesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := validateRules(input.Rules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rules", "details": err.Error()})
		return
	}

	settings, err := save(c.Request.Context(), input.Rules)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save business hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}
