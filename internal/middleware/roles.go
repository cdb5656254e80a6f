package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentManagerOnly allows SUPER_ADMIN, EDITOR and REPORTER through.
// Must run after AuthMiddleware.
func ContentManagerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Identity(c).IsContentManager() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Content manager access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SuperAdminOnly gates approval actions and destructive admin endpoints.
func SuperAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Identity(c).IsSuperAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Super admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
