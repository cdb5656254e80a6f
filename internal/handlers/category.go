package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/workflow"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
)

type CategoryInput struct {
	NameEn string `json:"nameEn" binding:"required"`
	NameHi string `json:"nameHi"`
	NameGu string `json:"nameGu"`
}

func ListCategories(c *gin.Context) {
	id := middleware.Identity(c)

	var categories []models.Category
	if err := database.DB.Scopes(policy.TaxonomyVisible(id)).
		Order("name_en ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetCategory(c *gin.Context) {
	id := middleware.Identity(c)

	var category models.Category
	if err := database.DB.Scopes(policy.TaxonomyVisible(id)).
		Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

func CreateCategory(c *gin.Context) {
	id := middleware.Identity(c)

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{NameEn: input.NameEn, NameHi: input.NameHi, NameGu: input.NameGu}
	workflow.ApplyCreate(&category.ReviewState, id, time.Now())

	base := workflow.SlugBase(input.NameEn, input.NameHi, input.NameGu)
	if err := workflow.CreateWithSlug(database.DB, &category, base, func(s string) { category.Slug = s }); err != nil {
		logger.Error().Err(err).Msg("Failed to create category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func UpdateCategory(c *gin.Context) {
	id := middleware.Identity(c)

	var category models.Category
	if err := database.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category.NameEn = input.NameEn
	category.NameHi = input.NameHi
	category.NameGu = input.NameGu
	workflow.ApplyUpdate(&category.ReviewState, id, time.Now())

	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

func DeleteCategory(c *gin.Context) {
	result := database.DB.Delete(&models.Category{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func ApproveCategory(c *gin.Context) { reviewCategory(c, false) }
func RejectCategory(c *gin.Context)  { reviewCategory(c, true) }

func reviewCategory(c *gin.Context, reject bool) {
	id := middleware.Identity(c)

	var category models.Category
	if err := database.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if reject {
		workflow.Reject(&category.ReviewState, id, time.Now())
	} else {
		workflow.Approve(&category.ReviewState, id, time.Now())
	}

	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}
