package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
)

func setupSlugDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Section{}, &models.NewsArticle{}))
	return db
}

func superAdmin() policy.Identity {
	return policy.Identity{UserID: "admin1", Role: models.RoleSuperAdmin, Authenticated: true}
}

func editor() policy.Identity {
	return policy.Identity{UserID: "editor1", Role: models.RoleEditor, Authenticated: true}
}

func reporter() policy.Identity {
	return policy.Identity{UserID: "reporter1", Role: models.RoleReporter, Authenticated: true}
}

func TestApplyCreate_SuperAdminAutoApproves(t *testing.T) {
	now := time.Now()
	var rs models.ReviewState

	ApplyCreate(&rs, superAdmin(), now)

	assert.True(t, rs.IsApproved)
	assert.True(t, rs.IsActive)
	assert.Equal(t, "admin1", *rs.ApprovedByID)
	assert.Equal(t, now, *rs.ApprovedAt)
}

func TestApplyCreate_EditorStartsPending(t *testing.T) {
	var rs models.ReviewState

	ApplyCreate(&rs, editor(), time.Now())

	assert.False(t, rs.IsApproved)
	assert.True(t, rs.IsActive)
	assert.Nil(t, rs.ApprovedByID)
	assert.Nil(t, rs.ApprovedAt)
}

func TestApplyUpdate_NonAdminResetsToPending(t *testing.T) {
	now := time.Now()
	rs := models.ReviewState{IsActive: true}
	Approve(&rs, superAdmin(), now)

	ApplyUpdate(&rs, reporter(), now.Add(time.Minute))

	assert.False(t, rs.IsApproved)
	assert.Nil(t, rs.ApprovedByID)
	assert.Nil(t, rs.ApprovedAt)
	assert.True(t, rs.IsActive)
}

func TestApplyUpdate_SuperAdminEditApproves(t *testing.T) {
	now := time.Now()
	rs := models.ReviewState{IsActive: true}

	ApplyUpdate(&rs, superAdmin(), now)

	assert.True(t, rs.IsApproved)
	assert.Equal(t, "admin1", *rs.ApprovedByID)
}

func TestReject_DeactivatesAndStampsReviewer(t *testing.T) {
	now := time.Now()
	rs := models.ReviewState{IsActive: true}
	Approve(&rs, superAdmin(), now)

	Reject(&rs, superAdmin(), now.Add(time.Minute))

	assert.False(t, rs.IsApproved)
	assert.False(t, rs.IsActive)
	// Rejected keeps the stamp so it is distinguishable from pending.
	assert.Equal(t, "admin1", *rs.ApprovedByID)
	assert.Equal(t, now.Add(time.Minute), *rs.ApprovedAt)
}

func TestPublish_ReporterDeniedOnEntry(t *testing.T) {
	now := time.Now()

	_, err := Publish(models.StatusDraft, models.StatusPublished, reporter(), nil, nil, now)
	assert.ErrorIs(t, err, ErrReporterPublish)

	// Same payload kept as DRAFT succeeds with no timestamp.
	publishedAt, err := Publish(models.StatusDraft, models.StatusDraft, reporter(), nil, nil, now)
	assert.NoError(t, err)
	assert.Nil(t, publishedAt)
}

func TestPublish_EditorStampsFirstPublish(t *testing.T) {
	now := time.Now()

	publishedAt, err := Publish(models.StatusDraft, models.StatusPublished, editor(), nil, nil, now)
	assert.NoError(t, err)
	assert.Equal(t, now, *publishedAt)
}

func TestPublish_TimestampNeverOverwritten(t *testing.T) {
	first := time.Now().Add(-24 * time.Hour)
	now := time.Now()

	publishedAt, err := Publish(models.StatusPublished, models.StatusPublished, editor(), &first, nil, now)
	assert.NoError(t, err)
	assert.Equal(t, first, *publishedAt)
}

func TestPublish_ExplicitTimestampHonoredForEditor(t *testing.T) {
	first := time.Now().Add(-24 * time.Hour)
	supplied := time.Now().Add(-48 * time.Hour)

	publishedAt, err := Publish(models.StatusPublished, models.StatusPublished, editor(), &first, &supplied, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, supplied, *publishedAt)
}

func TestPublish_ReporterMayEditAlreadyPublished(t *testing.T) {
	first := time.Now().Add(-time.Hour)

	publishedAt, err := Publish(models.StatusPublished, models.StatusPublished, reporter(), &first, nil, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, first, *publishedAt)

	// Leaving PUBLISHED is unrestricted; only entry is gated.
	publishedAt, err = Publish(models.StatusPublished, models.StatusArchived, reporter(), &first, nil, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, first, *publishedAt)
}

func TestUniqueSlug_AppendsNumericSuffix(t *testing.T) {
	db := setupSlugDB(t)

	for _, want := range []string{"gujarat", "gujarat-2", "gujarat-3"} {
		slug, err := UniqueSlug(db, &models.Section{}, "gujarat", "")
		assert.NoError(t, err)
		assert.Equal(t, want, slug)

		section := models.Section{NameEn: "Gujarat", Slug: slug}
		assert.NoError(t, db.Create(&section).Error)
	}
}

func TestUniqueSlug_ExcludesOwnRowOnUpdate(t *testing.T) {
	db := setupSlugDB(t)

	section := models.Section{NameEn: "Sports", Slug: "sports"}
	assert.NoError(t, db.Create(&section).Error)

	slug, err := UniqueSlug(db, &models.Section{}, "sports", section.ID)
	assert.NoError(t, err)
	assert.Equal(t, "sports", slug)
}

func TestCreateWithSlug_Article(t *testing.T) {
	db := setupSlugDB(t)

	for _, want := range []string{"breaking-story", "breaking-story-2"} {
		article := models.NewsArticle{TitleEn: "Breaking Story", ContentEn: "body", SectionID: "s1"}
		err := CreateWithSlug(db, &article, SlugBase(article.TitleEn), func(s string) { article.Slug = s })
		assert.NoError(t, err)
		assert.Equal(t, want, article.Slug)
	}
}

func TestSlugBase_FallsBackForNonLatinTitles(t *testing.T) {
	assert.Equal(t, "breaking-story", SlugBase("Breaking Story"))
	// Gujarati headline slugs empty; the English title wins.
	assert.Equal(t, "gandhinagar", SlugBase("ગાંધીનગર સમાચાર", "Gandhinagar"))

	base := SlugBase("ગાંધીનગર", "")
	assert.NotEmpty(t, base)
	assert.Contains(t, base, "post-")
}
