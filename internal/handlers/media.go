package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
)

type MediaInput struct {
	MediaType  models.MediaType `json:"mediaType" binding:"required"`
	FilePath   string           `json:"filePath"`
	ImagePath  string           `json:"imagePath"`
	YoutubeURL string           `json:"youtubeUrl"`
	Thumbnail  string           `json:"thumbnail"`
	Caption    string           `json:"caption"`
	SortOrder  int              `json:"sortOrder"`
}

// AddArticleMedia attaches an uploaded file or YouTube embed to an
// article.
func AddArticleMedia(c *gin.Context) {
	var article models.NewsArticle
	if err := database.DB.Select("id").First(&article, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var input MediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FilePath == "" && input.ImagePath == "" && input.YoutubeURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media needs a file, image or YouTube URL"})
		return
	}

	media := models.Media{
		ArticleID:  article.ID,
		MediaType:  input.MediaType,
		FilePath:   input.FilePath,
		ImagePath:  input.ImagePath,
		YoutubeURL: input.YoutubeURL,
		Thumbnail:  input.Thumbnail,
		Caption:    input.Caption,
		SortOrder:  input.SortOrder,
	}
	if err := database.DB.Create(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add media"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"media": media})
}

func DeleteArticleMedia(c *gin.Context) {
	result := database.DB.Delete(&models.Media{}, "id = ? AND article_id = ?", c.Param("mediaId"), c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media deleted"})
}
