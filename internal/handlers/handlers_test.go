package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database.DB = db
	assert.NoError(t, database.DB.AutoMigrate(
		&models.User{},
		&models.Section{},
		&models.Category{},
		&models.Tag{},
		&models.District{},
		&models.NewsArticle{},
		&models.Media{},
		&models.Comment{},
		&models.Like{},
		&models.ArticleView{},
		&models.JobPosting{},
		&models.JobApplication{},
	))
}

// withIdentity stands in for the auth middleware in tests.
func withIdentity(id policy.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id.Authenticated {
			c.Set("userId", id.UserID)
			c.Set("identity", id)
		}
		c.Next()
	}
}

func doJSON(t *testing.T, handler gin.HandlerFunc, id policy.Identity, method, pattern, path string, body interface{}) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware(), withIdentity(id))
	r.Handle(method, pattern, handler)

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedEditor(t *testing.T) models.User {
	u := models.User{ID: "editor1", Name: "Editor", Email: "editor@test.local", Username: "editor", Role: models.RoleEditor}
	assert.NoError(t, database.DB.Create(&u).Error)
	return u
}

func seedSection(t *testing.T, slug string, approved bool) models.Section {
	s := models.Section{
		NameEn: slug,
		Slug:   slug,
		ReviewState: models.ReviewState{
			IsActive:   true,
			IsApproved: approved,
		},
	}
	assert.NoError(t, database.DB.Create(&s).Error)
	return s
}

func seedPublished(t *testing.T, slug, sectionID string) models.NewsArticle {
	now := time.Now()
	a := models.NewsArticle{
		TitleEn:     slug,
		ContentEn:   "body",
		Slug:        slug,
		SectionID:   sectionID,
		Status:      models.StatusPublished,
		PublishedAt: &now,
	}
	assert.NoError(t, database.DB.Create(&a).Error)
	return a
}

func TestRegisterAndLogin(t *testing.T) {
	SetupTestDB(t)

	w := doJSON(t, Register, policy.Anonymous(), "POST", "/t", "/t", gin.H{
		"name": "Reader", "email": "reader@test.local", "username": "reader", "password": "Str0ngPass",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Token)
	// Self-registration never yields a staff role.
	assert.Equal(t, models.RoleUser, created.User.Role)

	w = doJSON(t, Login, policy.Anonymous(), "POST", "/t", "/t", gin.H{
		"email": "reader@test.local", "password": "wrong-One1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, Login, policy.Anonymous(), "POST", "/t", "/t", gin.H{
		"email": "reader@test.local", "password": "Str0ngPass",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	SetupTestDB(t)

	w := doJSON(t, Register, policy.Anonymous(), "POST", "/t", "/t", gin.H{
		"name": "Reader", "email": "weak@test.local", "username": "weakpw", "password": "alllower1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateArticle_ReporterCannotPublish(t *testing.T) {
	SetupTestDB(t)
	section := seedSection(t, "gujarat", true)
	reporter := policy.Identity{UserID: "rep1", Role: models.RoleReporter, Authenticated: true}

	w := doJSON(t, CreateArticle, reporter, "POST", "/t", "/t", gin.H{
		"titleEn": "Scoop", "contentEn": "body", "sectionId": section.ID, "status": "PUBLISHED",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	database.DB.Model(&models.NewsArticle{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateArticle_ReporterDraftAllowed(t *testing.T) {
	SetupTestDB(t)
	section := seedSection(t, "gujarat", true)
	reporter := policy.Identity{UserID: "rep1", Role: models.RoleReporter, Authenticated: true}

	w := doJSON(t, CreateArticle, reporter, "POST", "/t", "/t", gin.H{
		"titleEn": "Scoop", "contentEn": "body", "sectionId": section.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var article models.NewsArticle
	assert.NoError(t, database.DB.First(&article, "slug = ?", "scoop").Error)
	assert.Equal(t, models.StatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)
}

func TestCreateArticle_EditorPublishStampsTimestamp(t *testing.T) {
	SetupTestDB(t)
	section := seedSection(t, "gujarat", true)
	editor := policy.Identity{UserID: seedEditor(t).ID, Role: models.RoleEditor, Authenticated: true}

	w := doJSON(t, CreateArticle, editor, "POST", "/t", "/t", gin.H{
		"titleEn": "Launch", "contentEn": "body", "sectionId": section.ID, "status": "PUBLISHED",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var article models.NewsArticle
	assert.NoError(t, database.DB.First(&article, "slug = ?", "launch").Error)
	assert.Equal(t, models.StatusPublished, article.Status)
	assert.NotNil(t, article.PublishedAt)
	assert.WithinDuration(t, time.Now(), *article.PublishedAt, 5*time.Second)
}

func TestCreateArticle_DuplicateTitleGetsSuffixedSlug(t *testing.T) {
	SetupTestDB(t)
	section := seedSection(t, "gujarat", true)
	editor := policy.Identity{UserID: "editor1", Role: models.RoleEditor, Authenticated: true}

	for i := 0; i < 2; i++ {
		w := doJSON(t, CreateArticle, editor, "POST", "/t", "/t", gin.H{
			"titleEn": "Breaking Story", "contentEn": "body", "sectionId": section.ID,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	var slugs []string
	assert.NoError(t, database.DB.Model(&models.NewsArticle{}).Order("created_at ASC").Pluck("slug", &slugs).Error)
	assert.Equal(t, []string{"breaking-story", "breaking-story-2"}, slugs)
}

func TestListSections_VisibilityByRole(t *testing.T) {
	SetupTestDB(t)
	seedSection(t, "approved-section", true)
	seedSection(t, "pending-section", false)

	w := doJSON(t, ListSections, policy.Anonymous(), "GET", "/t", "/t", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var public struct {
		Sections []models.Section `json:"sections"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	assert.Len(t, public.Sections, 1)
	assert.Equal(t, "approved-section", public.Sections[0].Slug)

	editor := policy.Identity{UserID: "editor1", Role: models.RoleEditor, Authenticated: true}
	w = doJSON(t, ListSections, editor, "GET", "/t", "/t", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var managed struct {
		Sections []models.Section `json:"sections"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &managed))
	assert.Len(t, managed.Sections, 2)
}

func TestRejectSection_HidesFromPublicKeepsStamp(t *testing.T) {
	SetupTestDB(t)
	section := seedSection(t, "doomed", true)
	admin := policy.Identity{UserID: "admin1", Role: models.RoleSuperAdmin, Authenticated: true}

	w := doJSON(t, RejectSection, admin, "POST", "/t/:id", "/t/"+section.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Section
	assert.NoError(t, database.DB.First(&updated, "id = ?", section.ID).Error)
	assert.False(t, updated.IsApproved)
	assert.False(t, updated.IsActive)
	// The stamp survives so rejected rows read differently from pending.
	assert.NotNil(t, updated.ApprovedByID)
	assert.Equal(t, "admin1", *updated.ApprovedByID)

	w = doJSON(t, GetSection, policy.Anonymous(), "GET", "/t/:slug", "/t/doomed", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, GetSection, admin, "GET", "/t/:slug", "/t/doomed", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrackArticleView_HTTP(t *testing.T) {
	SetupTestDB(t)
	section := seedSection(t, "gujarat", true)
	seedPublished(t, "published-story", section.ID)

	w := doJSON(t, TrackArticleView, policy.Anonymous(), "POST", "/t/:slug", "/t/published-story", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ViewCount int `json:"viewCount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ViewCount)

	// Draft articles answer 404 to the public, same as missing slugs.
	draft := models.NewsArticle{TitleEn: "Draft", ContentEn: "x", Slug: "draft-story", SectionID: section.ID, Status: models.StatusDraft}
	assert.NoError(t, database.DB.Create(&draft).Error)

	w = doJSON(t, TrackArticleView, policy.Anonymous(), "POST", "/t/:slug", "/t/draft-story", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleArticleLike_HTTP(t *testing.T) {
	SetupTestDB(t)
	section := seedSection(t, "gujarat", true)
	seedPublished(t, "liked-story", section.ID)
	assert.NoError(t, database.DB.Create(&models.User{ID: "reader1", Email: "r@test.local", Username: "reader1"}).Error)
	reader := policy.Identity{UserID: "reader1", Role: models.RoleUser, Authenticated: true}

	w := doJSON(t, ToggleArticleLike, reader, "POST", "/t/:slug", "/t/liked-story", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Liked      bool `json:"liked"`
		LikesCount int  `json:"likesCount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.Equal(t, 1, resp.LikesCount)

	w = doJSON(t, ToggleArticleLike, reader, "POST", "/t/:slug", "/t/liked-story", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Liked)
	assert.Equal(t, 0, resp.LikesCount)
}

func TestListMyLikes_OwnRowsOnly(t *testing.T) {
	SetupTestDB(t)
	section := seedSection(t, "gujarat", true)
	article := seedPublished(t, "shared-story", section.ID)

	assert.NoError(t, database.DB.Create(&models.Like{UserID: "reader1", ArticleID: article.ID}).Error)
	assert.NoError(t, database.DB.Create(&models.Like{UserID: "reader2", ArticleID: article.ID}).Error)

	reader := policy.Identity{UserID: "reader1", Role: models.RoleUser, Authenticated: true}
	w := doJSON(t, ListMyLikes, reader, "GET", "/t", "/t", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var mine struct {
		Likes []models.Like `json:"likes"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine.Likes, 1)
	assert.Equal(t, "reader1", mine.Likes[0].UserID)
	assert.NotNil(t, mine.Likes[0].Article)
	assert.Equal(t, "shared-story", mine.Likes[0].Article.Slug)

	editor := policy.Identity{UserID: "editor1", Role: models.RoleEditor, Authenticated: true}
	w = doJSON(t, ListMyLikes, editor, "GET", "/t", "/t", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var all struct {
		Likes []models.Like `json:"likes"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all.Likes, 2)
}

func TestJobPostingStatistics(t *testing.T) {
	SetupTestDB(t)

	job := models.JobPosting{Title: "Reporter", Description: "d", Location: "Surat", JobType: models.JobTypeFullTime, Status: models.JobStatusOpen}
	assert.NoError(t, database.DB.Create(&job).Error)

	statuses := []models.ApplicationStatus{
		models.ApplicationSubmitted,
		models.ApplicationSubmitted,
		models.ApplicationShortlisted,
	}
	for i, status := range statuses {
		app := models.JobApplication{
			JobPostingID: job.ID,
			FullName:     "Applicant",
			Email:        "a@test.local",
			Phone:        "123",
			ResumePath:   "careers/resumes/r.pdf",
			Status:       status,
		}
		assert.NoError(t, database.DB.Create(&app).Error, i)
	}

	admin := policy.Identity{UserID: "admin1", Role: models.RoleSuperAdmin, Authenticated: true}
	w := doJSON(t, JobPostingStatistics, admin, "GET", "/t/:id", "/t/"+job.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		JobID    string           `json:"jobId"`
		Total    int64            `json:"total"`
		ByStatus map[string]int64 `json:"byStatus"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, job.ID, resp.JobID)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, int64(2), resp.ByStatus["SUBMITTED"])
	assert.Equal(t, int64(1), resp.ByStatus["SHORTLISTED"])

	w = doJSON(t, JobPostingStatistics, admin, "GET", "/t/:id", "/t/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
