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

const sectionTreeCacheKey = "sections:tree"

type SectionInput struct {
	NameEn    string  `json:"nameEn" binding:"required"`
	NameHi    string  `json:"nameHi"`
	NameGu    string  `json:"nameGu"`
	ParentID  *string `json:"parentId"`
	SortOrder int     `json:"sortOrder"`
}

// ListSections returns top-level sections with their children. The public
// tree is cached; managers always read fresh so pending rows show up.
func ListSections(c *gin.Context) {
	id := middleware.Identity(c)

	if !id.IsContentManager() {
		var cached []models.Section
		if err := database.CacheGet(sectionTreeCacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, gin.H{"sections": cached})
			return
		}
	}

	var sections []models.Section
	query := database.DB.Scopes(policy.TaxonomyVisible(id)).
		Where("parent_id IS NULL").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(policy.TaxonomyVisible(id)).Order("sort_order ASC")
		}).
		Order("sort_order ASC")
	if err := query.Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sections"})
		return
	}

	if !id.IsContentManager() {
		database.CacheSet(sectionTreeCacheKey, sections, 5*time.Minute)
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GetSection fetches one section by slug. Non-visible rows answer 404 the
// same as missing ones.
func GetSection(c *gin.Context) {
	id := middleware.Identity(c)

	var section models.Section
	err := database.DB.Scopes(policy.TaxonomyVisible(id)).
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(policy.TaxonomyVisible(id)).Order("sort_order ASC")
		}).
		Where("slug = ?", c.Param("slug")).
		First(&section).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section})
}

func CreateSection(c *gin.Context) {
	id := middleware.Identity(c)

	var input SectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section := models.Section{
		NameEn:    input.NameEn,
		NameHi:    input.NameHi,
		NameGu:    input.NameGu,
		ParentID:  input.ParentID,
		SortOrder: input.SortOrder,
	}
	workflow.ApplyCreate(&section.ReviewState, id, time.Now())

	base := workflow.SlugBase(input.NameEn, input.NameHi, input.NameGu)
	if err := workflow.CreateWithSlug(database.DB, &section, base, func(s string) { section.Slug = s }); err != nil {
		logger.Error().Err(err).Msg("Failed to create section")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create section"})
		return
	}

	database.CacheInvalidate(sectionTreeCacheKey)
	c.JSON(http.StatusCreated, gin.H{"section": section})
}

func UpdateSection(c *gin.Context) {
	id := middleware.Identity(c)

	var section models.Section
	if err := database.DB.First(&section, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch section"})
		return
	}

	var input SectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section.NameEn = input.NameEn
	section.NameHi = input.NameHi
	section.NameGu = input.NameGu
	section.ParentID = input.ParentID
	section.SortOrder = input.SortOrder
	workflow.ApplyUpdate(&section.ReviewState, id, time.Now())

	if err := database.DB.Save(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section"})
		return
	}

	database.CacheInvalidate(sectionTreeCacheKey)
	c.JSON(http.StatusOK, gin.H{"section": section})
}

func DeleteSection(c *gin.Context) {
	result := database.DB.Delete(&models.Section{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	database.CacheInvalidate(sectionTreeCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted"})
}

// ApproveSection and RejectSection are super admin review actions.
func ApproveSection(c *gin.Context) {
	reviewSection(c, false)
}

func RejectSection(c *gin.Context) {
	reviewSection(c, true)
}

func reviewSection(c *gin.Context, reject bool) {
	id := middleware.Identity(c)

	var section models.Section
	if err := database.DB.First(&section, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	if reject {
		workflow.Reject(&section.ReviewState, id, time.Now())
	} else {
		workflow.Approve(&section.ReviewState, id, time.Now())
	}

	if err := database.DB.Save(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section"})
		return
	}

	database.CacheInvalidate(sectionTreeCacheKey)
	c.JSON(http.StatusOK, gin.H{"section": section})
}
