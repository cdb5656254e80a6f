package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/handlers"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
)

func RegisterCareerRoutes(r gin.IRouter) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", middleware.OptionalAuthMiddleware(), handlers.ListJobPostings)
		jobs.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetJobPosting)

		// Applications can come from anonymous visitors.
		jobs.POST("/:id/apply", middleware.SubmitRateLimit(), middleware.OptionalAuthMiddleware(), handlers.SubmitApplication)

		manage := jobs.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateJobPosting)
			manage.PUT("/:id", handlers.UpdateJobPosting)
			manage.DELETE("/:id", handlers.DeleteJobPosting)
			manage.GET("/:id/statistics", handlers.JobPostingStatistics)
		}
	}

	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.GET("", handlers.ListApplications)

		manage := applications.Group("/")
		manage.Use(middleware.ContentManagerOnly())
		{
			manage.PUT("/:id/status", handlers.UpdateApplicationStatus)
			manage.PUT("/:id/review", handlers.ReviewApplication)
		}
	}

	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
	{
		notifications.GET("", handlers.ListNotifications)
		notifications.PUT("/:id/read", handlers.MarkNotificationRead)
		notifications.POST("/read-all", handlers.MarkAllNotificationsRead)
	}
}
