package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"glowdesk/utils"
)

// JWTAuthAdminMiddleware guards back-office endpoints. A request passes
// when its bearer token parses as a valid JWT and the token's hash is
// still present in the auth cache (logout removes it).
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		if _, err := utils.GetAuthCacheClient().Get(c.Request.Context(), cacheKey).Result(); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked or expired"})
			return
		}

		c.Set("adminToken", tokenString)
		c.Set("isAdmin", true)
		c.Next()
	}
}
