package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
)

func setupNotifierDB(t *testing.T) *gorm.DB {
	logger.Init("test")
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Notification{},
		&models.ContactMessage{},
		&models.JobPosting{},
		&models.JobApplication{},
	))
	return db
}

func TestNotifyContact_RecordsRowWithoutBlockingOnMail(t *testing.T) {
	db := setupNotifierDB(t)
	// Unroutable SMTP host (TEST-NET); the dial happens off this
	// goroutine, so the call must return immediately regardless.
	n := NewNotifier(db, &config.Config{
		ContactAdminEmail: "admin@test.local",
		SMTPHost:          "192.0.2.1",
		SMTPPort:          "2525",
	})

	msg := models.ContactMessage{Name: "Visitor", Email: "v@test.local", Subject: "Hello", Message: "Hi"}
	assert.NoError(t, db.Create(&msg).Error)

	start := time.Now()
	n.NotifyContact(&msg)
	assert.Less(t, time.Since(start), time.Second)

	var note models.Notification
	assert.NoError(t, db.First(&note, "related_id = ?", msg.ID).Error)
	assert.Equal(t, models.NotificationContactMessage, note.Type)
	assert.Equal(t, "contact_message", note.RelatedType)
	assert.False(t, note.IsRead)
}

func TestNotifyApplication_RecordsRow(t *testing.T) {
	db := setupNotifierDB(t)
	n := NewNotifier(db, &config.Config{})

	job := models.JobPosting{Title: "Reporter", Description: "d", Location: "Surat", JobType: models.JobTypeFullTime}
	assert.NoError(t, db.Create(&job).Error)
	app := models.JobApplication{JobPostingID: job.ID, FullName: "Applicant", Email: "a@test.local", Phone: "123", ResumePath: "careers/resumes/r.pdf"}
	assert.NoError(t, db.Create(&app).Error)

	n.NotifyApplication(&app, &job)

	var note models.Notification
	assert.NoError(t, db.First(&note, "related_id = ?", app.ID).Error)
	assert.Equal(t, models.NotificationCareerApplication, note.Type)
}
