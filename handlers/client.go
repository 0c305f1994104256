// File: handlers/client.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appointmentRepo "glowdesk/database/repository/appointment"
	clientRepo "glowdesk/database/repository/client"
	"glowdesk/models"
	"glowdesk/utils"
)

// ClientHandler manages salon customer records.
type ClientHandler struct {
	Repo            clientRepo.ClientRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

// NewClientHandler constructs a ClientHandler.
func NewClientHandler(repo clientRepo.ClientRepository, apptRepo appointmentRepo.AppointmentRepository) *ClientHandler {
	return &ClientHandler{Repo: repo, AppointmentRepo: apptRepo}
}

// List returns all clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// Get returns one client by id.
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load client", err.Error())
		return
	}
	c.JSON(http.StatusOK, client)
}

// History returns a client's appointments, newest first.
func (h *ClientHandler) History(c *gin.Context) {
	appointments, err := h.AppointmentRepo.GetByClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load client history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// Create adds a new client record.
func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if client.FirstName == "" || client.LastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first and last name are required"})
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &client); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create client", err.Error())
		return
	}
	c.JSON(http.StatusCreated, client)
}

// Update replaces a client's mutable fields.
func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	client.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), &client); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update client", err.Error())
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete removes a client record. Their appointments keep the client id
// for history but the record itself is gone.
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
