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

// ClipInput covers both videos and reels; they share the same shape.
type ClipInput struct {
	TitleEn string `json:"titleEn" binding:"required"`
	TitleHi string `json:"titleHi"`
	TitleGu string `json:"titleGu"`

	DescriptionEn string `json:"descriptionEn"`
	DescriptionHi string `json:"descriptionHi"`
	DescriptionGu string `json:"descriptionGu"`

	SectionID  string  `json:"sectionId" binding:"required"`
	CategoryID *string `json:"categoryId"`

	Thumbnail  string `json:"thumbnail"`
	FilePath   string `json:"filePath"`
	YoutubeURL string `json:"youtubeUrl"`

	PrimaryLanguage models.Language      `json:"primaryLanguage"`
	Status          models.ContentStatus `json:"status"`
	PublishedAt     *time.Time           `json:"publishedAt"`
}

func (in *ClipInput) apply(fields *models.ClipFields) {
	fields.TitleEn = in.TitleEn
	fields.TitleHi = in.TitleHi
	fields.TitleGu = in.TitleGu
	fields.DescriptionEn = in.DescriptionEn
	fields.DescriptionHi = in.DescriptionHi
	fields.DescriptionGu = in.DescriptionGu
	fields.SectionID = in.SectionID
	fields.CategoryID = in.CategoryID
	fields.Thumbnail = in.Thumbnail
	fields.FilePath = in.FilePath
	fields.YoutubeURL = in.YoutubeURL
	fields.PrimaryLanguage = in.PrimaryLanguage
	if fields.PrimaryLanguage == "" {
		fields.PrimaryLanguage = models.LanguageGU
	}
}

// --- Videos ---

func ListVideos(c *gin.Context) {
	id := middleware.Identity(c)
	limit, offset := pagination(c)

	query := database.DB.Scopes(policy.ContentVisible(id)).
		Preload("Section").Preload("Category").Preload("Tags").
		Order("published_at DESC, created_at DESC")
	if sectionID := c.Query("section"); sectionID != "" {
		query = query.Where("section_id = ?", sectionID)
	}

	var videos []models.VideoContent
	if err := query.Limit(limit).Offset(offset).Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos, "limit": limit, "offset": offset})
}

func GetVideo(c *gin.Context) {
	id := middleware.Identity(c)

	var video models.VideoContent
	err := database.DB.Scopes(policy.ContentVisible(id)).
		Preload("Section").Preload("Category").Preload("Tags").
		Where("slug = ?", c.Param("slug")).
		First(&video).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"video": video})
}

func CreateVideo(c *gin.Context) {
	id := middleware.Identity(c)

	var input ClipInput
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

	var video models.VideoContent
	input.apply(&video.ClipFields)
	video.Status = status
	video.PublishedAt = publishedAt

	base := workflow.SlugBase(input.TitleEn, input.TitleHi, input.TitleGu)
	if err := workflow.CreateWithSlug(database.DB, &video, base, func(s string) { video.Slug = s }); err != nil {
		logger.Error().Err(err).Msg("Failed to create video")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"video": video})
}

func UpdateVideo(c *gin.Context) {
	id := middleware.Identity(c)

	var video models.VideoContent
	if err := database.DB.First(&video, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video"})
		return
	}

	var input ClipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = video.Status
	}
	publishedAt, err := workflow.Publish(video.Status, status, id, video.PublishedAt, input.PublishedAt, time.Now())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	input.apply(&video.ClipFields)
	video.Status = status
	video.PublishedAt = publishedAt

	if err := database.DB.Omit("view_count", "likes_count").Save(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"video": video})
}

func DeleteVideo(c *gin.Context) {
	result := database.DB.Delete(&models.VideoContent{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

func TrackVideoView(c *gin.Context) {
	trackClipView(c, &models.VideoContent{}, "Video")
}

// --- Reels ---

func ListReels(c *gin.Context) {
	id := middleware.Identity(c)
	limit, offset := pagination(c)

	query := database.DB.Scopes(policy.ContentVisible(id)).
		Preload("Section").Preload("Category").Preload("Tags").
		Order("published_at DESC, created_at DESC")
	if sectionID := c.Query("section"); sectionID != "" {
		query = query.Where("section_id = ?", sectionID)
	}

	var reels []models.ReelContent
	if err := query.Limit(limit).Offset(offset).Find(&reels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reels"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reels": reels, "limit": limit, "offset": offset})
}

func GetReel(c *gin.Context) {
	id := middleware.Identity(c)

	var reel models.ReelContent
	err := database.DB.Scopes(policy.ContentVisible(id)).
		Preload("Section").Preload("Category").Preload("Tags").
		Where("slug = ?", c.Param("slug")).
		First(&reel).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reel not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reel": reel})
}

func CreateReel(c *gin.Context) {
	id := middleware.Identity(c)

	var input ClipInput
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

	var reel models.ReelContent
	input.apply(&reel.ClipFields)
	reel.Status = status
	reel.PublishedAt = publishedAt

	base := workflow.SlugBase(input.TitleEn, input.TitleHi, input.TitleGu)
	if err := workflow.CreateWithSlug(database.DB, &reel, base, func(s string) { reel.Slug = s }); err != nil {
		logger.Error().Err(err).Msg("Failed to create reel")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reel"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reel": reel})
}

func UpdateReel(c *gin.Context) {
	id := middleware.Identity(c)

	var reel models.ReelContent
	if err := database.DB.First(&reel, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reel"})
		return
	}

	var input ClipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = reel.Status
	}
	publishedAt, err := workflow.Publish(reel.Status, status, id, reel.PublishedAt, input.PublishedAt, time.Now())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	input.apply(&reel.ClipFields)
	reel.Status = status
	reel.PublishedAt = publishedAt

	if err := database.DB.Omit("view_count", "likes_count").Save(&reel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reel"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reel": reel})
}

func DeleteReel(c *gin.Context) {
	result := database.DB.Delete(&models.ReelContent{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reel"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reel not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reel deleted"})
}

func TrackReelView(c *gin.Context) {
	trackClipView(c, &models.ReelContent{}, "Reel")
}

func trackClipView(c *gin.Context, model any, label string) {
	id := middleware.Identity(c)

	var clipID string
	err := database.DB.Model(model).Scopes(policy.ContentVisible(id)).
		Select("id").
		Where("slug = ?", c.Param("slug")).
		Scan(&clipID).Error
	if err != nil || clipID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": label + " not found"})
		return
	}

	count, err := engagementSvc().TrackClipView(model, clipID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track view"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewCount": count})
}
