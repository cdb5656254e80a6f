package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
)

const settingsCacheKey = "site:settings"

func loadSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := database.DB.Where(models.SiteSettings{ID: 1}).
		Attrs(models.SiteSettings{SiteName: "News Portal"}).
		FirstOrCreate(&settings).Error
	return &settings, err
}

// GetSiteSettings is public; the frontend reads branding and contact info
// from here on every load, so it is cached.
func GetSiteSettings(c *gin.Context) {
	var cached models.SiteSettings
	if err := database.CacheGet(settingsCacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{"settings": cached})
		return
	}

	settings, err := loadSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	database.CacheSet(settingsCacheKey, settings, 10*time.Minute)
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSiteSettings replaces the singleton settings row. Super admin
// only.
func UpdateSiteSettings(c *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	var input models.SiteSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = settings.ID
	if err := database.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	database.CacheInvalidate(settingsCacheKey)
	c.JSON(http.StatusOK, gin.H{"settings": input})
}
