package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
)

type CommentInput struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parentId"`
}

// ListComments returns comments on an article. Hidden comments stay
// visible to their author and to managers.
func ListComments(c *gin.Context) {
	id := middleware.Identity(c)

	var article models.NewsArticle
	err := database.DB.Scopes(policy.ContentVisible(id)).
		Select("id").
		Where("slug = ?", c.Param("slug")).
		First(&article).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var comments []models.Comment
	err = database.DB.Scopes(policy.CommentsVisible(id)).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "username", "profile_image")
		}).
		Where("article_id = ?", article.ID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment posts a comment. Comments go live immediately and can be
// hidden by moderation afterwards.
func CreateComment(c *gin.Context) {
	id := middleware.Identity(c)

	var article models.NewsArticle
	err := database.DB.Scopes(policy.ContentVisible(id)).
		Select("id").
		Where("slug = ?", c.Param("slug")).
		First(&article).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := id.UserID
	comment := models.Comment{
		UserID:     &uid,
		ArticleID:  article.ID,
		ParentID:   input.ParentID,
		Content:    input.Content,
		IsApproved: true,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment removes a comment. Owners delete their own; managers
// delete anything.
func DeleteComment(c *gin.Context) {
	id := middleware.Identity(c)

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	owner := comment.UserID != nil && *comment.UserID == id.UserID
	if !owner && !id.IsContentManager() {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own comments"})
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

type ModerateCommentInput struct {
	IsApproved bool `json:"isApproved"`
}

// ModerateComment shows or hides a comment. Content managers only.
func ModerateComment(c *gin.Context) {
	var input ModerateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := database.DB.Model(&models.Comment{}).
		Where("id = ?", c.Param("id")).
		UpdateColumn("is_approved", input.IsApproved)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to moderate comment"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated"})
}
