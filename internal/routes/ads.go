package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/handlers"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
)

func RegisterAdRoutes(r gin.IRouter) {
	slots := r.Group("/ad-slots")
	{
		slots.GET("", middleware.OptionalAuthMiddleware(), handlers.ListAdSenseSlots)

		manage := slots.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateAdSenseSlot)
			manage.PUT("/:id", handlers.UpdateAdSenseSlot)
			manage.DELETE("/:id", handlers.DeleteAdSenseSlot)
		}
	}

	ads := r.Group("/advertisements")
	{
		ads.GET("", middleware.OptionalAuthMiddleware(), handlers.ListAdvertisements)
		ads.POST("/:id/impression", middleware.TrackRateLimit(), handlers.TrackAdImpression)
		ads.POST("/:id/click", middleware.TrackRateLimit(), handlers.TrackAdClick)

		manage := ads.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateAdvertisement)
			manage.PUT("/:id", handlers.UpdateAdvertisement)
			manage.DELETE("/:id", handlers.DeleteAdvertisement)
		}
	}

	requests := r.Group("/ad-requests")
	{
		requests.POST("", middleware.SubmitRateLimit(), handlers.SubmitAdRequest)

		manage := requests.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.GET("", handlers.ListAdRequests)
			manage.PUT("/:id", handlers.UpdateAdRequest)
		}
	}
}
