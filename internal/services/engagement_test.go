package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
)

func setupEngagementDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.NewsArticle{},
		&models.ArticleView{},
		&models.Like{},
		&models.VideoContent{},
		&models.Advertisement{},
	))
	return db
}

func seedArticle(t *testing.T, db *gorm.DB, id string) {
	article := models.NewsArticle{
		ID:        id,
		TitleEn:   "Title " + id,
		Slug:      "slug-" + id,
		ContentEn: "body",
		SectionID: "s1",
		Status:    models.StatusPublished,
	}
	assert.NoError(t, db.Create(&article).Error)
}

func TestTrackView_IncrementsAndLogs(t *testing.T) {
	db := setupEngagementDB(t)
	svc := NewEngagement(db)
	seedArticle(t, db, "a1")

	ip := "10.0.0.1"
	count, err := svc.TrackView("a1", ViewMeta{IPAddress: ip, UserAgent: "test-agent"})
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.TrackView("a1", ViewMeta{IPAddress: ip, UserAgent: "test-agent"})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	var logged int64
	db.Model(&models.ArticleView{}).Where("article_id = ?", "a1").Count(&logged)
	assert.EqualValues(t, 2, logged)
}

func TestTrackView_MissingArticle(t *testing.T) {
	db := setupEngagementDB(t)
	svc := NewEngagement(db)

	_, err := svc.TrackView("nope", ViewMeta{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var logged int64
	db.Model(&models.ArticleView{}).Count(&logged)
	assert.EqualValues(t, 0, logged)
}

func TestToggleLike_RoundTrip(t *testing.T) {
	db := setupEngagementDB(t)
	svc := NewEngagement(db)
	seedArticle(t, db, "a1")
	assert.NoError(t, db.Create(&models.User{ID: "u1", Email: "u1@example.com", Username: "u1"}).Error)

	liked, count, err := svc.ToggleLike("u1", "a1")
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count, err = svc.ToggleLike("u1", "a1")
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)

	var rows int64
	db.Model(&models.Like{}).Count(&rows)
	assert.EqualValues(t, 0, rows)
}

func TestToggleLike_DecrementClampsAtZero(t *testing.T) {
	db := setupEngagementDB(t)
	svc := NewEngagement(db)
	seedArticle(t, db, "a1")
	assert.NoError(t, db.Create(&models.User{ID: "u1", Email: "u1@example.com", Username: "u1"}).Error)

	// Drifted state: a like row exists but the counter already reads zero.
	assert.NoError(t, db.Create(&models.Like{UserID: "u1", ArticleID: "a1"}).Error)

	liked, count, err := svc.ToggleLike("u1", "a1")
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)
}

func TestTrackClipView(t *testing.T) {
	db := setupEngagementDB(t)
	svc := NewEngagement(db)

	video := models.VideoContent{}
	video.ID = "v1"
	video.TitleEn = "Video"
	video.Slug = "video"
	video.SectionID = "s1"
	assert.NoError(t, db.Create(&video).Error)

	count, err := svc.TrackClipView(&models.VideoContent{}, "v1")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.TrackClipView(&models.VideoContent{}, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTrackImpressionAndClick(t *testing.T) {
	db := setupEngagementDB(t)
	svc := NewEngagement(db)

	ad := models.Advertisement{ID: "ad1", Title: "Banner", Placement: models.PlacementTop}
	assert.NoError(t, db.Create(&ad).Error)

	assert.NoError(t, svc.TrackImpression("ad1"))
	assert.NoError(t, svc.TrackImpression("ad1"))
	assert.NoError(t, svc.TrackClick("ad1"))
	assert.ErrorIs(t, svc.TrackClick("missing"), gorm.ErrRecordNotFound)

	var got models.Advertisement
	assert.NoError(t, db.First(&got, "id = ?", "ad1").Error)
	assert.Equal(t, 2, got.ImpressionCount)
	assert.Equal(t, 1, got.ClickCount)
}

func TestReconcileCounters(t *testing.T) {
	db := setupEngagementDB(t)
	svc := NewEngagement(db)
	seedArticle(t, db, "a1")
	seedArticle(t, db, "a2")
	assert.NoError(t, db.Create(&models.User{ID: "u1", Email: "u1@example.com", Username: "u1"}).Error)

	// a1 drifts: counters say 10/5, source tables say 2 views and 1 like.
	db.Model(&models.NewsArticle{}).Where("id = ?", "a1").
		UpdateColumns(map[string]any{"view_count": 10, "likes_count": 5})
	assert.NoError(t, db.Create(&models.ArticleView{ArticleID: "a1", IPAddress: "1.1.1.1"}).Error)
	assert.NoError(t, db.Create(&models.ArticleView{ArticleID: "a1", IPAddress: "1.1.1.2"}).Error)
	assert.NoError(t, db.Create(&models.Like{UserID: "u1", ArticleID: "a1"}).Error)

	report, err := svc.ReconcileCounters(true)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.ArticlesChecked)
	assert.Equal(t, 1, report.ViewsCorrected)
	assert.Equal(t, 1, report.LikesCorrected)

	// Dry run leaves the drift in place.
	var a1 models.NewsArticle
	assert.NoError(t, db.First(&a1, "id = ?", "a1").Error)
	assert.Equal(t, 10, a1.ViewCount)

	_, err = svc.ReconcileCounters(false)
	assert.NoError(t, err)
	assert.NoError(t, db.First(&a1, "id = ?", "a1").Error)
	assert.Equal(t, 2, a1.ViewCount)
	assert.Equal(t, 1, a1.LikesCount)

	var a2 models.NewsArticle
	assert.NoError(t, db.First(&a2, "id = ?", "a2").Error)
	assert.Equal(t, 0, a2.ViewCount)
}
