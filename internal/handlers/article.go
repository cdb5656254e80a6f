package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/services"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/workflow"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/utils"
)

func engagementSvc() *services.Engagement {
	return services.NewEngagement(database.DB)
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func articlePreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Section").
		Preload("Category").
		Preload("District").
		Preload("Tags").
		Preload("Author")
}

// ListArticles is the main feed endpoint. Public callers only see
// published rows; managers can additionally filter by status.
func ListArticles(c *gin.Context) {
	id := middleware.Identity(c)
	limit, offset := pagination(c)

	query := articlePreloads(database.DB.Scopes(policy.ContentVisible(id))).
		Order("published_at DESC, created_at DESC")

	if slug := c.Query("section"); slug != "" {
		query = query.Joins("JOIN sections ON sections.id = news_articles.section_id").
			Where("sections.slug = ?", slug)
	}
	if slug := c.Query("category"); slug != "" {
		query = query.Joins("JOIN categories ON categories.id = news_articles.category_id").
			Where("categories.slug = ?", slug)
	}
	if slug := c.Query("district"); slug != "" {
		query = query.Joins("JOIN districts ON districts.id = news_articles.district_id").
			Where("districts.slug = ?", slug)
	}
	if slug := c.Query("tag"); slug != "" {
		query = query.Joins("JOIN article_tags ON article_tags.news_article_id = news_articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.slug = ?", slug)
	}
	if lang := c.Query("language"); lang != "" {
		query = query.Where("primary_language = ?", lang)
	}
	if c.Query("breaking") == "true" {
		query = query.Where("is_breaking = ?", true)
	}
	if c.Query("top") == "true" {
		query = query.Where("is_top = ?", true)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}
	if status := c.Query("status"); status != "" && id.IsContentManager() {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		pattern := utils.SanitizeSearchQuery(search)
		query = query.Where(
			"title_en LIKE ? OR title_hi LIKE ? OR title_gu LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var articles []models.NewsArticle
	if err := query.Limit(limit).Offset(offset).Find(&articles).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to fetch articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "limit": limit, "offset": offset})
}

// GetArticle fetches one article by slug, media included. Non-published
// rows answer 404 to non-managers, same as missing slugs.
func GetArticle(c *gin.Context) {
	id := middleware.Identity(c)

	var article models.NewsArticle
	err := articlePreloads(database.DB.Scopes(policy.ContentVisible(id))).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("slug = ?", c.Param("slug")).
		First(&article).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

type ArticleInput struct {
	TitleEn string `json:"titleEn" binding:"required"`
	TitleHi string `json:"titleHi"`
	TitleGu string `json:"titleGu"`

	SummaryEn string `json:"summaryEn"`
	SummaryHi string `json:"summaryHi"`
	SummaryGu string `json:"summaryGu"`

	ContentEn string `json:"contentEn" binding:"required"`
	ContentHi string `json:"contentHi"`
	ContentGu string `json:"contentGu"`

	FeaturedImage string `json:"featuredImage"`

	SectionID  string   `json:"sectionId" binding:"required"`
	CategoryID *string  `json:"categoryId"`
	DistrictID *string  `json:"districtId"`
	TagIDs     []string `json:"tagIds"`

	Status          models.ContentStatus `json:"status"`
	ContentType     models.ContentType   `json:"contentType"`
	PrimaryLanguage models.Language      `json:"primaryLanguage"`

	IsBreaking bool `json:"isBreaking"`
	IsTop      bool `json:"isTop"`
	IsFeatured bool `json:"isFeatured"`

	PublishedAt *time.Time `json:"publishedAt"`
}

func loadTags(ids []string) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []*models.Tag
	err := database.DB.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func CreateArticle(c *gin.Context) {
	id := middleware.Identity(c)

	var input ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusDraft
	}

	publishedAt, err := workflow.Publish(models.StatusDraft, status, id, nil, input.PublishedAt, time.Now())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	tags, err := loadTags(input.TagIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tags"})
		return
	}

	authorID := id.UserID
	article := models.NewsArticle{
		TitleEn:         input.TitleEn,
		TitleHi:         input.TitleHi,
		TitleGu:         input.TitleGu,
		SummaryEn:       input.SummaryEn,
		SummaryHi:       input.SummaryHi,
		SummaryGu:       input.SummaryGu,
		ContentEn:       input.ContentEn,
		ContentHi:       input.ContentHi,
		ContentGu:       input.ContentGu,
		FeaturedImage:   input.FeaturedImage,
		SectionID:       input.SectionID,
		CategoryID:      input.CategoryID,
		DistrictID:      input.DistrictID,
		Tags:            tags,
		AuthorID:        &authorID,
		Status:          status,
		ContentType:     input.ContentType,
		PrimaryLanguage: input.PrimaryLanguage,
		IsBreaking:      input.IsBreaking,
		IsTop:           input.IsTop,
		IsFeatured:      input.IsFeatured,
		PublishedAt:     publishedAt,
	}
	if article.ContentType == "" {
		article.ContentType = models.ContentTypeArticle
	}
	if article.PrimaryLanguage == "" {
		article.PrimaryLanguage = models.LanguageGU
	}

	base := workflow.SlugBase(input.TitleEn, input.TitleHi, input.TitleGu)
	if err := workflow.CreateWithSlug(database.DB, &article, base, func(s string) { article.Slug = s }); err != nil {
		logger.Error().Err(err).Msg("Failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func UpdateArticle(c *gin.Context) {
	id := middleware.Identity(c)

	var article models.NewsArticle
	if err := database.DB.First(&article, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}

	if !id.CanModifyOwned(article.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own articles"})
		return
	}

	var input ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = article.Status
	}

	publishedAt, err := workflow.Publish(article.Status, status, id, article.PublishedAt, input.PublishedAt, time.Now())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	tags, err := loadTags(input.TagIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tags"})
		return
	}

	article.TitleEn = input.TitleEn
	article.TitleHi = input.TitleHi
	article.TitleGu = input.TitleGu
	article.SummaryEn = input.SummaryEn
	article.SummaryHi = input.SummaryHi
	article.SummaryGu = input.SummaryGu
	article.ContentEn = input.ContentEn
	article.ContentHi = input.ContentHi
	article.ContentGu = input.ContentGu
	article.FeaturedImage = input.FeaturedImage
	article.SectionID = input.SectionID
	article.CategoryID = input.CategoryID
	article.DistrictID = input.DistrictID
	article.ContentType = input.ContentType
	article.PrimaryLanguage = input.PrimaryLanguage
	article.IsBreaking = input.IsBreaking
	article.IsTop = input.IsTop
	article.IsFeatured = input.IsFeatured
	article.Status = status
	article.PublishedAt = publishedAt

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Counters are owned by the engagement service; never write them
		// from an edit.
		if err := tx.Omit("Tags", "view_count", "likes_count").Save(&article).Error; err != nil {
			return err
		}
		return tx.Model(&article).Association("Tags").Replace(tags)
	})
	if err != nil {
		logger.Error().Err(err).Str("article_id", article.ID).Msg("Failed to update article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}

	article.Tags = tags
	c.JSON(http.StatusOK, gin.H{"article": article})
}

func DeleteArticle(c *gin.Context) {
	id := middleware.Identity(c)

	var article models.NewsArticle
	if err := database.DB.First(&article, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	if !id.CanModifyOwned(article.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own articles"})
		return
	}

	if err := database.DB.Select("Media").Delete(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

// BreakingNews returns the current breaking ticker items.
func BreakingNews(c *gin.Context) {
	var articles []models.NewsArticle
	err := database.DB.Scopes(policy.ContentVisible(policy.Anonymous())).
		Where("is_breaking = ?", true).
		Order("published_at DESC").
		Limit(10).
		Find(&articles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch breaking news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// TopNews returns editor-picked top stories.
func TopNews(c *gin.Context) {
	var articles []models.NewsArticle
	err := articlePreloads(database.DB.Scopes(policy.ContentVisible(policy.Anonymous()))).
		Where("is_top = ?", true).
		Order("published_at DESC").
		Limit(10).
		Find(&articles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// MostRead ranks published articles by view count over the whole archive.
func MostRead(c *gin.Context) {
	limit, _ := pagination(c)

	var articles []models.NewsArticle
	err := articlePreloads(database.DB.Scopes(policy.ContentVisible(policy.Anonymous()))).
		Order("view_count DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch most read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// RelatedArticles suggests other published stories from the same section.
func RelatedArticles(c *gin.Context) {
	var article models.NewsArticle
	err := database.DB.Scopes(policy.ContentVisible(middleware.Identity(c))).
		Where("slug = ?", c.Param("slug")).
		First(&article).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var related []models.NewsArticle
	err = database.DB.Scopes(policy.ContentVisible(policy.Anonymous())).
		Where("section_id = ? AND id <> ?", article.SectionID, article.ID).
		Order("published_at DESC").
		Limit(6).
		Find(&related).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch related articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": related})
}

// TrackArticleView bumps the view counter for a published article and
// logs the view. Open to anonymous callers.
func TrackArticleView(c *gin.Context) {
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

	meta := services.ViewMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if id.Authenticated {
		uid := id.UserID
		meta.UserID = &uid
	}

	count, err := engagementSvc().TrackView(article.ID, meta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track view"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewCount": count})
}

// ToggleArticleLike likes or unlikes the article for the caller.
func ToggleArticleLike(c *gin.Context) {
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

	liked, count, err := engagementSvc().ToggleLike(id.UserID, article.ID)
	if err != nil {
		logger.Error().Err(err).Str("article_id", article.ID).Msg("Failed to toggle like")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "likesCount": count})
}

// ListMyLikes returns the caller's liked articles, newest like first.
// Content managers get the unfiltered like log.
func ListMyLikes(c *gin.Context) {
	id := middleware.Identity(c)
	limit, offset := pagination(c)

	var likes []models.Like
	err := database.DB.Scopes(policy.LikesVisible(id)).
		Preload("Article", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(policy.ContentVisible(id))
		}).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&likes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
