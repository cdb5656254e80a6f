package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/handlers"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
)

func RegisterContactRoutes(r gin.IRouter) {
	contact := r.Group("/contact")
	{
		contact.POST("", middleware.SubmitRateLimit(), handlers.SubmitContactMessage)

		manage := contact.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.GET("", handlers.ListContactMessages)
			manage.PUT("/:id/read", handlers.MarkContactMessageRead)
			manage.DELETE("/:id", handlers.DeleteContactMessage)
		}
	}
}

func RegisterSettingsRoutes(r gin.IRouter) {
	settings := r.Group("/settings")
	{
		settings.GET("", handlers.GetSiteSettings)
		settings.PUT("", middleware.AuthMiddleware(), middleware.SuperAdminOnly(), handlers.UpdateSiteSettings)
	}
}

func RegisterAnalyticsRoutes(r gin.IRouter) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
	{
		dashboard.GET("/stats", handlers.DashboardStats)
	}
}

func RegisterCricketRoutes(r gin.IRouter) {
	cricket := r.Group("/cricket")
	{
		cricket.GET("/live", handlers.CricketLiveScores)
		cricket.GET("/matches", handlers.CricketMatches)
	}
}

func RegisterUploadRoutes(r gin.IRouter) {
	uploads := r.Group("/upload")
	uploads.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
	{
		uploads.POST("/image", handlers.UploadArticleImage)
		uploads.POST("/epaper", handlers.UploadEpaperPDF)
		uploads.POST("/video", handlers.UploadVideoFile)
		uploads.POST("/reel", handlers.UploadReelFile)
	}

	// Applicants attach resumes before they have an account.
	r.POST("/upload/resume", middleware.SubmitRateLimit(), handlers.UploadResume)
}
