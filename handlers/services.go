// File: handlers/services.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	serviceRepo "glowdesk/database/repository/service"
	"glowdesk/models"
	"glowdesk/utils"
)

// ServiceHandler manages the salon's treatment catalogue.
type ServiceHandler struct {
	Repo serviceRepo.ServiceRepository
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(repo serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// ListPublic returns active services for the booking UI.
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	services, err := h.Repo.List(c.Request.Context(), true)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListAll returns every service, active or not, for the admin UI.
func (h *ServiceHandler) ListAll(c *gin.Context) {
	services, err := h.Repo.List(c.Request.Context(), false)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func validateService(svc models.Service) string {
	if svc.Name == "" {
		return "service name is required"
	}
	if svc.DurationMinutes <= 0 {
		return "service duration must be positive"
	}
	if svc.BreakTimeMinutes < 0 {
		return "break time cannot be negative"
	}
	return ""
}

// Create adds a service to the catalogue.
func (h *ServiceHandler) Create(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if msg := validateService(svc); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// Update replaces a service definition.
func (h *ServiceHandler) Update(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")
	if msg := validateService(svc); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.Repo.Update(c.Request.Context(), &svc); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Delete removes a service from the catalogue.
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
