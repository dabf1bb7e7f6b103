package middleware

import (
	"crypto/subtle"
	"net/http"

	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

// StaffOnly guards privileged routes. Requests authenticate with either the
// configured admin API key in X-API-Key or staff basic credentials.
func StaffOnly(adminAPIKey string, staffService services.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-API-Key"); key != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(adminAPIKey)) == 1 {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if username, password, ok := c.Request.BasicAuth(); ok {
			if _, err := staffService.VerifyCredentials(username, password); err == nil {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}
