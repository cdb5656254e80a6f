package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
)

// MaintenanceMode blocks traffic while SiteSettings.MaintenanceMode is
// on. Must run after the optional auth middleware: super admins keep
// full access so they can turn it back off. The auth and settings routes
// are registered outside the guarded group.
func MaintenanceMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.SiteSettings
		if err := database.DB.Limit(1).Find(&settings).Error; err != nil || !settings.MaintenanceMode {
			c.Next()
			return
		}

		if Identity(c).IsSuperAdmin() {
			c.Next()
			return
		}

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Site is under maintenance. Please try again later.",
		})
		c.Abort()
	}
}
