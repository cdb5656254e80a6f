package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/services"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/utils"
)

func notifierSvc() *services.Notifier {
	return services.NewNotifier(database.DB, config.AppConfig)
}

// --- Job postings ---

type JobPostingInput struct {
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description" binding:"required"`
	Requirements     string           `json:"requirements"`
	Responsibilities string           `json:"responsibilities"`
	SalaryRangeMin   *float64         `json:"salaryRangeMin"`
	SalaryRangeMax   *float64         `json:"salaryRangeMax"`
	Location         string           `json:"location" binding:"required"`
	JobType          models.JobType   `json:"jobType" binding:"required"`
	Category         string           `json:"category"`
	Status           models.JobStatus `json:"status"`
	Deadline         *time.Time       `json:"deadline"`
}

// ListJobPostings shows open postings to the public; managers see all and
// can filter by status.
func ListJobPostings(c *gin.Context) {
	id := middleware.Identity(c)

	query := database.DB.Model(&models.JobPosting{}).Order("created_at DESC")
	if id.IsContentManager() {
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
	} else {
		query = query.Where("status = ?", models.JobStatusOpen).
			Where("deadline IS NULL OR deadline >= ?", time.Now())
	}

	var jobs []models.JobPosting
	if err := query.Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job postings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func GetJobPosting(c *gin.Context) {
	var job models.JobPosting
	if err := database.DB.First(&job, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
		return
	}

	id := middleware.Identity(c)
	if !id.IsContentManager() && !job.IsOpen(time.Now()) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func CreateJobPosting(c *gin.Context) {
	id := middleware.Identity(c)

	var input JobPostingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := id.UserID
	job := models.JobPosting{
		Title:            input.Title,
		Description:      input.Description,
		Requirements:     input.Requirements,
		Responsibilities: input.Responsibilities,
		SalaryRangeMin:   input.SalaryRangeMin,
		SalaryRangeMax:   input.SalaryRangeMax,
		Location:         input.Location,
		JobType:          input.JobType,
		Category:         input.Category,
		Status:           input.Status,
		PostedByID:       &uid,
		Deadline:         input.Deadline,
	}
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}

	if err := database.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job posting"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func UpdateJobPosting(c *gin.Context) {
	var job models.JobPosting
	if err := database.DB.First(&job, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job posting"})
		return
	}

	var input JobPostingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job.Title = input.Title
	job.Description = input.Description
	job.Requirements = input.Requirements
	job.Responsibilities = input.Responsibilities
	job.SalaryRangeMin = input.SalaryRangeMin
	job.SalaryRangeMax = input.SalaryRangeMax
	job.Location = input.Location
	job.JobType = input.JobType
	job.Category = input.Category
	job.Deadline = input.Deadline
	if input.Status != "" {
		job.Status = input.Status
	}

	if err := database.DB.Save(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job posting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func DeleteJobPosting(c *gin.Context) {
	result := database.DB.Delete(&models.JobPosting{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job posting"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job posting deleted"})
}

// JobPostingStatistics summarizes the application pipeline for one
// posting: total applications plus a per-status breakdown.
func JobPostingStatistics(c *gin.Context) {
	var job models.JobPosting
	if err := database.DB.First(&job, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
		return
	}

	var rows []struct {
		Status models.ApplicationStatus
		Count  int64
	}
	err := database.DB.Model(&models.JobApplication{}).
		Select("status, COUNT(*) AS count").
		Where("job_posting_id = ?", job.ID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	var total int64
	byStatus := gin.H{}
	for _, row := range rows {
		total += row.Count
		byStatus[string(row.Status)] = row.Count
	}
	c.JSON(http.StatusOK, gin.H{"jobId": job.ID, "total": total, "byStatus": byStatus})
}

// --- Applications ---

type ApplicationInput struct {
	FullName          string   `json:"fullName" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	Phone             string   `json:"phone" binding:"required"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	CoverLetter       string   `json:"coverLetter"`
	Skills            []string `json:"skills"`
	ResumePath        string   `json:"resumePath" binding:"required"`
	PortfolioURL      string   `json:"portfolioUrl"`
	LinkedinURL       string   `json:"linkedinUrl"`
}

// SubmitApplication accepts an application for an open posting. Works for
// anonymous visitors; logged-in users get the application linked to their
// account.
func SubmitApplication(c *gin.Context) {
	var job models.JobPosting
	if err := database.DB.First(&job, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
		return
	}
	if !job.IsOpen(time.Now()) {
		c.JSON(http.StatusConflict, gin.H{"error": "This posting is no longer accepting applications"})
		return
	}

	var input ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateResumeExtension(input.ResumePath); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app := models.JobApplication{
		JobPostingID:      job.ID,
		FullName:          input.FullName,
		Email:             input.Email,
		Phone:             input.Phone,
		YearsOfExperience: input.YearsOfExperience,
		CoverLetter:       input.CoverLetter,
		Skills:            pq.StringArray(input.Skills),
		ResumePath:        input.ResumePath,
		PortfolioURL:      input.PortfolioURL,
		LinkedinURL:       input.LinkedinURL,
		Status:            models.ApplicationSubmitted,
	}

	id := middleware.Identity(c)
	if id.Authenticated {
		uid := id.UserID
		app.UserID = &uid
	}

	if err := database.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}

	notifierSvc().NotifyApplication(&app, &job)
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

// ListApplications shows the caller's own applications, or all of them
// for managers (optionally filtered by posting and status).
func ListApplications(c *gin.Context) {
	id := middleware.Identity(c)

	query := database.DB.Scopes(policy.ApplicationsVisible(id)).
		Preload("JobPosting").
		Preload("Review").
		Order("applied_at DESC")
	if id.IsContentManager() {
		if jobID := c.Query("job"); jobID != "" {
			query = query.Where("job_posting_id = ?", jobID)
		}
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
	}

	var apps []models.JobApplication
	if err := query.Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

type ApplicationStatusInput struct {
	Status     models.ApplicationStatus `json:"status" binding:"required"`
	AdminNotes string                   `json:"adminNotes"`
}

func UpdateApplicationStatus(c *gin.Context) {
	var input ApplicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var app models.JobApplication
	if err := database.DB.First(&app, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	app.Status = input.Status
	app.AdminNotes = input.AdminNotes
	if err := database.DB.Save(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

type ReviewInput struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

// ReviewApplication creates or updates the single review for an
// application.
func ReviewApplication(c *gin.Context) {
	id := middleware.Identity(c)

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var app models.JobApplication
	if err := database.DB.First(&app, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	uid := id.UserID
	var review models.ApplicationReview
	err := database.DB.Where("application_id = ?", app.ID).First(&review).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = models.ApplicationReview{
			ApplicationID: app.ID,
			ReviewedByID:  &uid,
			Rating:        input.Rating,
			Feedback:      input.Feedback,
		}
		err = database.DB.Create(&review).Error
	case err == nil:
		review.ReviewedByID = &uid
		review.Rating = input.Rating
		review.Feedback = input.Feedback
		err = database.DB.Save(&review).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// --- Notifications ---

func ListNotifications(c *gin.Context) {
	query := database.DB.Model(&models.Notification{}).Order("created_at DESC")
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var notes []models.Notification
	if err := query.Limit(50).Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	var unread int64
	database.DB.Model(&models.Notification{}).Where("is_read = ?", false).Count(&unread)
	c.JSON(http.StatusOK, gin.H{"notifications": notes, "unreadCount": unread})
}

func MarkNotificationRead(c *gin.Context) {
	now := time.Now()
	result := database.DB.Model(&models.Notification{}).
		Where("id = ?", c.Param("id")).
		UpdateColumns(map[string]any{"is_read": true, "read_at": now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func MarkAllNotificationsRead(c *gin.Context) {
	now := time.Now()
	if err := database.DB.Model(&models.Notification{}).
		Where("is_read = ?", false).
		UpdateColumns(map[string]any{"is_read": true, "read_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
