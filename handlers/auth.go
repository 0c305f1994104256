// File: handlers/auth.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"glowdesk/config"
	"glowdesk/utils"
)

// adminTokenTTL bounds how long a back-office session lives.
const adminTokenTTL = 12 * time.Hour

// AdminLoginHandler checks the configured admin credentials and issues a
// JWT. The token's hash is cached in the auth redis DB so revocation and
// validation never touch Mongo.
func AdminLoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	logger := utils.GetLogger()
	if input.Email != config.AppConfig.AdminEmail {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(input.Password)); err != nil {
		logger.Warn("admin login rejected", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken("admin", input.Email, adminTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(c.Request.Context(), cacheKey, "admin", adminTokenTTL).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cache session", err.Error())
		return
	}

	logger.Info("admin logged in", zap.String("email", input.Email))
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}

// AdminLogoutHandler revokes the presented token.
func AdminLogoutHandler(c *gin.Context) {
	token, ok := c.Get("adminToken")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	cacheKey := utils.AuthCachePrefix + utils.HashToken(token.(string))
	if err := utils.GetAuthCacheClient().Del(c.Request.Context(), cacheKey).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
