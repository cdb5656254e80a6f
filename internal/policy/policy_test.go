package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
)

func setupPolicyDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Section{},
		&models.Category{},
		&models.Tag{},
		&models.NewsArticle{},
		&models.Comment{},
		&models.Like{},
		&models.Advertisement{},
		&models.JobApplication{},
		&models.JobPosting{},
	))
	return db
}

func anonymous() Identity { return Anonymous() }

func editorID() Identity {
	return Identity{UserID: "editor1", Role: models.RoleEditor, Authenticated: true}
}

func readerID() Identity {
	return Identity{UserID: "reader1", Role: models.RoleUser, Authenticated: true}
}

func TestTaxonomyVisible_PublicSeesOnlyActiveApproved(t *testing.T) {
	db := setupPolicyDB(t)

	rows := []models.Category{
		{NameEn: "Approved", Slug: "approved", ReviewState: models.ReviewState{IsActive: true, IsApproved: true}},
		{NameEn: "Pending", Slug: "pending", ReviewState: models.ReviewState{IsActive: true, IsApproved: false}},
		{NameEn: "Deactivated", Slug: "deactivated", ReviewState: models.ReviewState{IsActive: false, IsApproved: true}},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}

	var public []models.Category
	assert.NoError(t, db.Scopes(TaxonomyVisible(anonymous())).Find(&public).Error)
	assert.Len(t, public, 1)
	assert.Equal(t, "approved", public[0].Slug)

	// The same listing as an editor includes pending and deactivated rows.
	var managed []models.Category
	assert.NoError(t, db.Scopes(TaxonomyVisible(editorID())).Find(&managed).Error)
	assert.Len(t, managed, 3)
}

func TestTaxonomyVisible_RejectedRowHiddenFromPublicOnly(t *testing.T) {
	db := setupPolicyDB(t)

	rejected := models.Category{
		NameEn:      "Rejected",
		Slug:        "rejected",
		ReviewState: models.ReviewState{IsActive: false, IsApproved: false},
	}
	assert.NoError(t, db.Create(&rejected).Error)

	var public []models.Category
	assert.NoError(t, db.Scopes(TaxonomyVisible(anonymous())).Find(&public).Error)
	assert.Empty(t, public)

	var managed []models.Category
	assert.NoError(t, db.Scopes(TaxonomyVisible(editorID())).Find(&managed).Error)
	assert.Len(t, managed, 1)
}

func TestTagVisible_IgnoresActiveFlag(t *testing.T) {
	db := setupPolicyDB(t)

	tag := models.Tag{
		Name:        "Elections",
		Slug:        "elections",
		ReviewState: models.ReviewState{IsActive: false, IsApproved: true},
	}
	assert.NoError(t, db.Create(&tag).Error)

	var public []models.Tag
	assert.NoError(t, db.Scopes(TagVisible(anonymous())).Find(&public).Error)
	assert.Len(t, public, 1)
}

func TestContentVisible(t *testing.T) {
	db := setupPolicyDB(t)

	published := models.NewsArticle{TitleEn: "P", Slug: "p", ContentEn: "x", SectionID: "s1", Status: models.StatusPublished}
	draft := models.NewsArticle{TitleEn: "D", Slug: "d", ContentEn: "x", SectionID: "s1", Status: models.StatusDraft}
	archived := models.NewsArticle{TitleEn: "A", Slug: "a", ContentEn: "x", SectionID: "s1", Status: models.StatusArchived}
	for _, a := range []*models.NewsArticle{&published, &draft, &archived} {
		assert.NoError(t, db.Create(a).Error)
	}

	var public []models.NewsArticle
	assert.NoError(t, db.Scopes(ContentVisible(readerID())).Find(&public).Error)
	assert.Len(t, public, 1)
	assert.Equal(t, "p", public[0].Slug)

	var managed []models.NewsArticle
	assert.NoError(t, db.Scopes(ContentVisible(editorID())).Find(&managed).Error)
	assert.Len(t, managed, 3)
}

func TestCommentsVisible_AuthorSeesOwnPending(t *testing.T) {
	db := setupPolicyDB(t)

	author := "reader1"
	other := "reader2"
	rows := []models.Comment{
		{ArticleID: "a1", UserID: &author, Content: "mine pending", IsApproved: false},
		{ArticleID: "a1", UserID: &other, Content: "theirs pending", IsApproved: false},
		{ArticleID: "a1", UserID: &other, Content: "theirs approved", IsApproved: true},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}

	var mine []models.Comment
	assert.NoError(t, db.Scopes(CommentsVisible(readerID())).Find(&mine).Error)
	assert.Len(t, mine, 2)

	var public []models.Comment
	assert.NoError(t, db.Scopes(CommentsVisible(anonymous())).Find(&public).Error)
	assert.Len(t, public, 1)
}

func TestLikesVisible_OwnerOnly(t *testing.T) {
	db := setupPolicyDB(t)

	article := models.NewsArticle{TitleEn: "Story", ContentEn: "x", Slug: "story", SectionID: "s1", Status: models.StatusPublished}
	assert.NoError(t, db.Create(&article).Error)
	assert.NoError(t, db.Create(&models.Like{UserID: "reader1", ArticleID: article.ID}).Error)
	assert.NoError(t, db.Create(&models.Like{UserID: "other", ArticleID: article.ID}).Error)

	var mine []models.Like
	assert.NoError(t, db.Scopes(LikesVisible(readerID())).Find(&mine).Error)
	assert.Len(t, mine, 1)
	assert.Equal(t, "reader1", mine[0].UserID)

	var all []models.Like
	assert.NoError(t, db.Scopes(LikesVisible(editorID())).Find(&all).Error)
	assert.Len(t, all, 2)
}

func TestApplicationsVisible(t *testing.T) {
	db := setupPolicyDB(t)

	mine := "reader1"
	rows := []models.JobApplication{
		{JobPostingID: "j1", UserID: &mine, FullName: "Me", Email: "me@example.com", Phone: "1", ResumePath: "r1.pdf"},
		{JobPostingID: "j1", FullName: "Anon", Email: "anon@example.com", Phone: "2", ResumePath: "r2.pdf"},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}

	var own []models.JobApplication
	assert.NoError(t, db.Scopes(ApplicationsVisible(readerID())).Find(&own).Error)
	assert.Len(t, own, 1)
	assert.Equal(t, "Me", own[0].FullName)

	var none []models.JobApplication
	assert.NoError(t, db.Scopes(ApplicationsVisible(anonymous())).Find(&none).Error)
	assert.Empty(t, none)

	var all []models.JobApplication
	assert.NoError(t, db.Scopes(ApplicationsVisible(editorID())).Find(&all).Error)
	assert.Len(t, all, 2)
}

func TestAdsVisible_ScheduleWindow(t *testing.T) {
	db := setupPolicyDB(t)
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	rows := []models.Advertisement{
		{Title: "live", Placement: models.PlacementTop, Status: models.AdStatusActive, IsActive: true},
		{Title: "windowed", Placement: models.PlacementTop, Status: models.AdStatusActive, IsActive: true, StartAt: &past, EndAt: &future},
		{Title: "expired", Placement: models.PlacementTop, Status: models.AdStatusActive, IsActive: true, EndAt: &past},
		{Title: "scheduled", Placement: models.PlacementTop, Status: models.AdStatusActive, IsActive: true, StartAt: &future},
		{Title: "paused", Placement: models.PlacementTop, Status: models.AdStatusPaused, IsActive: true},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}

	var visible []models.Advertisement
	assert.NoError(t, db.Scopes(AdsVisible(anonymous(), now)).Find(&visible).Error)
	assert.Len(t, visible, 2)

	for i := range rows {
		wantLive := rows[i].Title == "live" || rows[i].Title == "windowed"
		assert.Equal(t, wantLive, rows[i].IsCurrentlyActive(now), rows[i].Title)
	}
}

func TestIdentityPermissions(t *testing.T) {
	reporter := Identity{UserID: "rep1", Role: models.RoleReporter, Authenticated: true}
	admin := Identity{UserID: "adm1", Role: models.RoleSuperAdmin, Authenticated: true}

	assert.True(t, reporter.IsContentManager())
	assert.False(t, reporter.CanPublish())
	assert.False(t, reporter.CanApprove())

	assert.True(t, editorID().CanPublish())
	assert.False(t, editorID().CanApprove())

	assert.True(t, admin.CanPublish())
	assert.True(t, admin.CanApprove())

	assert.False(t, readerID().IsContentManager())
	assert.False(t, anonymous().IsContentManager())

	own := "rep1"
	other := "someone"
	assert.True(t, reporter.CanModifyOwned(&own))
	assert.False(t, reporter.CanModifyOwned(&other))
	assert.False(t, reporter.CanModifyOwned(nil))
	assert.True(t, editorID().CanModifyOwned(&other))
}
