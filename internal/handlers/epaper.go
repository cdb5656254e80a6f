package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
)

type EpaperInput struct {
	PublicationDate string `json:"publicationDate" binding:"required"` // YYYY-MM-DD
	Title           string `json:"title" binding:"required"`
	PDFPath         string `json:"pdfPath" binding:"required"`
}

func ListEpaperEditions(c *gin.Context) {
	limit, offset := pagination(c)

	var editions []models.EpaperEdition
	if err := database.DB.Order("publication_date DESC").
		Limit(limit).Offset(offset).Find(&editions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch e-paper editions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"editions": editions})
}

// GetEpaperEdition fetches the edition for a given date (YYYY-MM-DD), or
// the latest one when the date is "latest".
func GetEpaperEdition(c *gin.Context) {
	dateParam := c.Param("date")

	var edition models.EpaperEdition
	if dateParam == "latest" {
		if err := database.DB.Order("publication_date DESC").First(&edition).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No e-paper editions yet"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"edition": edition})
		return
	}

	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	if err := database.DB.Where("publication_date = ?", date).First(&edition).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No edition for this date"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"edition": edition})
}

func CreateEpaperEdition(c *gin.Context) {
	var input EpaperInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.PublicationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publication date, expected YYYY-MM-DD"})
		return
	}

	edition := models.EpaperEdition{
		PublicationDate: date,
		Title:           input.Title,
		PDFPath:         input.PDFPath,
	}
	if err := database.DB.Create(&edition).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An edition for this date already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create edition"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"edition": edition})
}

func DeleteEpaperEdition(c *gin.Context) {
	result := database.DB.Delete(&models.EpaperEdition{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete edition"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Edition deleted"})
}
