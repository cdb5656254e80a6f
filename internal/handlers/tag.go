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

type TagInput struct {
	Name string `json:"name" binding:"required"`
}

func ListTags(c *gin.Context) {
	id := middleware.Identity(c)

	var tags []models.Tag
	if err := database.DB.Scopes(policy.TagVisible(id)).
		Order("name ASC").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// TrendingTags ranks approved tags by published article volume over the
// last 7 days.
func TrendingTags(c *gin.Context) {
	since := time.Now().AddDate(0, 0, -7)

	var tags []models.Tag
	err := database.DB.
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Joins("JOIN news_articles ON news_articles.id = article_tags.news_article_id").
		Where("tags.is_approved = ?", true).
		Where("news_articles.status = ? AND news_articles.published_at >= ?", models.StatusPublished, since).
		Group("tags.id").
		Order("COUNT(news_articles.id) DESC").
		Limit(10).
		Find(&tags).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trending tags"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func CreateTag(c *gin.Context) {
	id := middleware.Identity(c)

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag := models.Tag{Name: input.Name}
	workflow.ApplyCreate(&tag.ReviewState, id, time.Now())

	base := workflow.SlugBase(input.Name)
	if err := workflow.CreateWithSlug(database.DB, &tag, base, func(s string) { tag.Slug = s }); err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A tag with this name already exists"})
			return
		}
		logger.Error().Err(err).Msg("Failed to create tag")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tag": tag})
}

func UpdateTag(c *gin.Context) {
	id := middleware.Identity(c)

	var tag models.Tag
	if err := database.DB.First(&tag, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tag"})
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag.Name = input.Name
	workflow.ApplyUpdate(&tag.ReviewState, id, time.Now())

	if err := database.DB.Save(&tag).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A tag with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

func DeleteTag(c *gin.Context) {
	result := database.DB.Delete(&models.Tag{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

func ApproveTag(c *gin.Context) { reviewTag(c, false) }
func RejectTag(c *gin.Context)  { reviewTag(c, true) }

func reviewTag(c *gin.Context, reject bool) {
	id := middleware.Identity(c)

	var tag models.Tag
	if err := database.DB.First(&tag, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	if reject {
		workflow.Reject(&tag.ReviewState, id, time.Now())
	} else {
		workflow.Approve(&tag.ReviewState, id, time.Now())
	}

	if err := database.DB.Save(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": tag})
}
