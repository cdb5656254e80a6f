package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
	JobStatusOnHold JobStatus = "ON_HOLD"
)

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeRemote     JobType = "REMOTE"
)

type JobPosting struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title            string `gorm:"not null" json:"title"`
	Description      string `gorm:"type:text;not null" json:"description"`
	Requirements     string `gorm:"type:text" json:"requirements"`
	Responsibilities string `gorm:"type:text" json:"responsibilities"`

	SalaryRangeMin *float64 `json:"salaryRangeMin"`
	SalaryRangeMax *float64 `json:"salaryRangeMax"`

	Location string    `gorm:"not null" json:"location"`
	JobType  JobType   `gorm:"type:text;not null" json:"jobType"`
	Category string    `gorm:"type:text;default:'OTHER'" json:"category"`
	Status   JobStatus `gorm:"type:text;default:'OPEN';index" json:"status"`

	PostedByID *string `gorm:"type:text" json:"postedById"`
	PostedBy   *User   `gorm:"foreignKey:PostedByID" json:"postedBy,omitempty"`

	Deadline *time.Time `json:"deadline"`

	Applications []*JobApplication `gorm:"foreignKey:JobPostingID" json:"-"`
}

func (j *JobPosting) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	return
}

// IsOpen reports whether the posting still accepts applications.
func (j *JobPosting) IsOpen(now time.Time) bool {
	if j.Status != JobStatusOpen {
		return false
	}
	if j.Deadline != nil && now.After(*j.Deadline) {
		return false
	}
	return true
}

type ApplicationStatus string

const (
	ApplicationSubmitted   ApplicationStatus = "SUBMITTED"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationAccepted    ApplicationStatus = "ACCEPTED"
)

// JobApplication can be submitted anonymously; UserID stays nil for
// public submissions and those rows are only reachable by admins.
type JobApplication struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	JobPostingID string      `gorm:"type:text;index;not null" json:"jobPostingId"`
	JobPosting   *JobPosting `gorm:"foreignKey:JobPostingID" json:"jobPosting,omitempty"`

	UserID *string `gorm:"type:text;index" json:"userId"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`

	FullName string `gorm:"not null" json:"fullName"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`

	YearsOfExperience int            `json:"yearsOfExperience"`
	CoverLetter       string         `gorm:"type:text" json:"coverLetter"`
	Skills            pq.StringArray `gorm:"type:text[]" json:"skills"`

	ResumePath   string `gorm:"not null" json:"resumePath"`
	PortfolioURL string `json:"portfolioUrl"`
	LinkedinURL  string `json:"linkedinUrl"`

	Status     ApplicationStatus `gorm:"type:text;default:'SUBMITTED';index" json:"status"`
	AdminNotes string            `gorm:"type:text" json:"adminNotes"`

	// Explicit zero-or-one review relation; serialized as a nullable
	// field rather than probed for at runtime.
	Review *ApplicationReview `gorm:"foreignKey:ApplicationID" json:"review,omitempty"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// ApplicationReview records an admin's rating of one application.
type ApplicationReview struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	ReviewedAt time.Time `gorm:"autoCreateTime" json:"reviewedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	ApplicationID string          `gorm:"uniqueIndex;type:text;not null" json:"applicationId"`
	Application   *JobApplication `gorm:"foreignKey:ApplicationID" json:"-"`

	ReviewedByID *string `gorm:"type:text" json:"reviewedById"`
	ReviewedBy   *User   `gorm:"foreignKey:ReviewedByID" json:"reviewedBy,omitempty"`

	Rating   int    `gorm:"not null" json:"rating"` // 1..5
	Feedback string `gorm:"type:text" json:"feedback"`
}

func (r *ApplicationReview) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

type NotificationType string

const (
	NotificationCareerApplication NotificationType = "CAREER_APPLICATION"
	NotificationContactMessage    NotificationType = "CONTACT_MESSAGE"
	NotificationOther             NotificationType = "OTHER"
)

// Notification feeds the admin dashboard bell.
type Notification struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Type    NotificationType `gorm:"type:text;default:'OTHER';index" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Message string           `gorm:"type:text" json:"message"`

	RelatedType string `json:"relatedType"`
	RelatedID   string `gorm:"type:text" json:"relatedId"`

	IsRead bool       `gorm:"default:false;index" json:"isRead"`
	ReadAt *time.Time `json:"readAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}
