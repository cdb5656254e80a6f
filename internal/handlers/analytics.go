package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
)

// ListArticleViews exposes the raw view log for one article, newest
// first. Content managers only.
func ListArticleViews(c *gin.Context) {
	limit, offset := pagination(c)

	var views []models.ArticleView
	err := database.DB.Where("article_id = ?", c.Param("id")).
		Order("viewed_at DESC").
		Limit(limit).Offset(offset).
		Find(&views).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch view log"})
		return
	}

	var total int64
	database.DB.Model(&models.ArticleView{}).Where("article_id = ?", c.Param("id")).Count(&total)
	c.JSON(http.StatusOK, gin.H{"views": views, "total": total})
}

// DashboardStats powers the admin landing page.
func DashboardStats(c *gin.Context) {
	var stats struct {
		TotalArticles     int64 `json:"totalArticles"`
		PublishedArticles int64 `json:"publishedArticles"`
		DraftArticles     int64 `json:"draftArticles"`
		TotalViews        int64 `json:"totalViews"`
		ViewsLast7Days    int64 `json:"viewsLast7Days"`
		TotalUsers        int64 `json:"totalUsers"`
		PendingSections   int64 `json:"pendingSections"`
		PendingCategories int64 `json:"pendingCategories"`
		PendingTags       int64 `json:"pendingTags"`
		UnreadMessages    int64 `json:"unreadMessages"`
	}

	db := database.DB
	db.Model(&models.NewsArticle{}).Count(&stats.TotalArticles)
	db.Model(&models.NewsArticle{}).Where("status = ?", models.StatusPublished).Count(&stats.PublishedArticles)
	db.Model(&models.NewsArticle{}).Where("status = ?", models.StatusDraft).Count(&stats.DraftArticles)
	db.Model(&models.ArticleView{}).Count(&stats.TotalViews)
	db.Model(&models.ArticleView{}).Where("viewed_at >= ?", time.Now().AddDate(0, 0, -7)).Count(&stats.ViewsLast7Days)
	db.Model(&models.User{}).Count(&stats.TotalUsers)
	db.Model(&models.Section{}).Where("is_approved = ? AND is_active = ?", false, true).Count(&stats.PendingSections)
	db.Model(&models.Category{}).Where("is_approved = ? AND is_active = ?", false, true).Count(&stats.PendingCategories)
	db.Model(&models.Tag{}).Where("is_approved = ? AND is_active = ?", false, true).Count(&stats.PendingTags)
	db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&stats.UnreadMessages)

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
