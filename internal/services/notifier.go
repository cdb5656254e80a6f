package services

import (
	"fmt"
	"net/smtp"

	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
)

// Notifier records admin notifications and sends best-effort emails.
// Notification failures never fail the request that triggered them; the
// submission is already stored, notification is a side channel.
type Notifier struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewNotifier(db *gorm.DB, cfg *config.Config) *Notifier {
	return &Notifier{DB: db, Cfg: cfg}
}

// NotifyApplication records a notification row for a new job application.
func (n *Notifier) NotifyApplication(app *models.JobApplication, job *models.JobPosting) {
	note := models.Notification{
		Type:        models.NotificationCareerApplication,
		Title:       "New job application",
		Message:     fmt.Sprintf("%s applied for %s", app.FullName, job.Title),
		RelatedType: "job_application",
		RelatedID:   app.ID,
	}
	if err := n.DB.Create(&note).Error; err != nil {
		logger.Error().Err(err).Str("application_id", app.ID).Msg("Failed to record application notification")
	}
}

// NotifyContact records a notification row and emails the site admin about
// a new contact message.
func (n *Notifier) NotifyContact(msg *models.ContactMessage) {
	note := models.Notification{
		Type:        models.NotificationContactMessage,
		Title:       "New contact message",
		Message:     fmt.Sprintf("%s: %s", msg.Name, msg.Subject),
		RelatedType: "contact_message",
		RelatedID:   msg.ID,
	}
	if err := n.DB.Create(&note).Error; err != nil {
		logger.Error().Err(err).Str("message_id", msg.ID).Msg("Failed to record contact notification")
	}

	if n.Cfg.ContactAdminEmail == "" {
		return
	}
	body := fmt.Sprintf(
		"New contact message\n\nFrom: %s <%s>\nPhone: %s\nSubject: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	)
	// Dispatch off the request goroutine; a slow SMTP server must not
	// stall the submission response.
	subject := "New contact message: " + msg.Subject
	messageID := msg.ID
	go func() {
		if err := n.sendMail(n.Cfg.ContactAdminEmail, subject, body); err != nil {
			logger.Error().Err(err).Str("message_id", messageID).Msg("Failed to email contact message")
		}
	}()
}

func (n *Notifier) sendMail(to, subject, body string) error {
	if n.Cfg.SMTPHost == "" {
		return fmt.Errorf("smtp not configured")
	}
	from := n.Cfg.DefaultFromEmail
	if from == "" {
		from = n.Cfg.SMTPUser
	}
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, to, subject, body))
	addr := fmt.Sprintf("%s:%s", n.Cfg.SMTPHost, n.Cfg.SMTPPort)

	var auth smtp.Auth
	if n.Cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", n.Cfg.SMTPUser, n.Cfg.SMTPPassword, n.Cfg.SMTPHost)
	}
	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}
