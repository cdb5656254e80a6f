package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/handlers"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
)

func RegisterClipRoutes(r gin.IRouter) {
	videos := r.Group("/videos")
	{
		videos.GET("", middleware.OptionalAuthMiddleware(), handlers.ListVideos)
		videos.GET("/:slug", middleware.OptionalAuthMiddleware(), handlers.GetVideo)
		videos.POST("/:slug/view", middleware.TrackRateLimit(), handlers.TrackVideoView)

		manage := videos.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateVideo)
			manage.PUT("/:id", handlers.UpdateVideo)
			manage.DELETE("/:id", handlers.DeleteVideo)
		}
	}

	reels := r.Group("/reels")
	{
		reels.GET("", middleware.OptionalAuthMiddleware(), handlers.ListReels)
		reels.GET("/:slug", middleware.OptionalAuthMiddleware(), handlers.GetReel)
		reels.POST("/:slug/view", middleware.TrackRateLimit(), handlers.TrackReelView)

		manage := reels.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateReel)
			manage.PUT("/:id", handlers.UpdateReel)
			manage.DELETE("/:id", handlers.DeleteReel)
		}
	}

	epaper := r.Group("/epaper")
	{
		epaper.GET("", handlers.ListEpaperEditions)
		epaper.GET("/:date", handlers.GetEpaperEdition)

		manage := epaper.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateEpaperEdition)
			manage.DELETE("/:id", handlers.DeleteEpaperEdition)
		}
	}
}
