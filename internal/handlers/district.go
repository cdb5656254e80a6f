package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/workflow"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
)

type DistrictInput struct {
	NameEn    string `json:"nameEn" binding:"required"`
	NameHi    string `json:"nameHi"`
	NameGu    string `json:"nameGu"`
	SectionID string `json:"sectionId" binding:"required"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

func ListDistricts(c *gin.Context) {
	id := middleware.Identity(c)

	query := database.DB.Scopes(policy.DistrictVisible(id)).Order("sort_order ASC, name_en ASC")
	if sectionID := c.Query("section"); sectionID != "" {
		query = query.Where("section_id = ?", sectionID)
	}

	var districts []models.District
	if err := query.Find(&districts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch districts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"districts": districts})
}

func CreateDistrict(c *gin.Context) {
	var input DistrictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	district := models.District{
		NameEn:    input.NameEn,
		NameHi:    input.NameHi,
		NameGu:    input.NameGu,
		SectionID: input.SectionID,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if input.IsActive != nil {
		district.IsActive = *input.IsActive
	}

	base := workflow.SlugBase(input.NameEn, input.NameHi, input.NameGu)
	if err := workflow.CreateWithSlug(database.DB, &district, base, func(s string) { district.Slug = s }); err != nil {
		logger.Error().Err(err).Msg("Failed to create district")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create district"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"district": district})
}

func UpdateDistrict(c *gin.Context) {
	var district models.District
	if err := database.DB.First(&district, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch district"})
		return
	}

	var input DistrictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	district.NameEn = input.NameEn
	district.NameHi = input.NameHi
	district.NameGu = input.NameGu
	district.SectionID = input.SectionID
	district.SortOrder = input.SortOrder
	if input.IsActive != nil {
		district.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&district).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update district"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"district": district})
}

func DeleteDistrict(c *gin.Context) {
	result := database.DB.Delete(&models.District{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete district"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "District deleted"})
}
