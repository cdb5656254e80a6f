package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/handlers"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
)

func RegisterTaxonomyRoutes(r gin.IRouter) {
	sections := r.Group("/sections")
	{
		sections.GET("", middleware.OptionalAuthMiddleware(), handlers.ListSections)
		sections.GET("/:slug", middleware.OptionalAuthMiddleware(), handlers.GetSection)

		manage := sections.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateSection)
			manage.PUT("/:id", handlers.UpdateSection)
			manage.DELETE("/:id", handlers.DeleteSection)
		}

		review := sections.Group("/")
		review.Use(middleware.AuthMiddleware(), middleware.SuperAdminOnly())
		{
			review.POST("/:id/approve", handlers.ApproveSection)
			review.POST("/:id/reject", handlers.RejectSection)
		}
	}

	districts := r.Group("/districts")
	{
		districts.GET("", middleware.OptionalAuthMiddleware(), handlers.ListDistricts)

		manage := districts.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateDistrict)
			manage.PUT("/:id", handlers.UpdateDistrict)
			manage.DELETE("/:id", handlers.DeleteDistrict)
		}
	}

	categories := r.Group("/categories")
	{
		categories.GET("", middleware.OptionalAuthMiddleware(), handlers.ListCategories)
		categories.GET("/:slug", middleware.OptionalAuthMiddleware(), handlers.GetCategory)

		manage := categories.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateCategory)
			manage.PUT("/:id", handlers.UpdateCategory)
			manage.DELETE("/:id", handlers.DeleteCategory)
		}

		review := categories.Group("/")
		review.Use(middleware.AuthMiddleware(), middleware.SuperAdminOnly())
		{
			review.POST("/:id/approve", handlers.ApproveCategory)
			review.POST("/:id/reject", handlers.RejectCategory)
		}
	}

	tags := r.Group("/tags")
	{
		tags.GET("", middleware.OptionalAuthMiddleware(), handlers.ListTags)
		tags.GET("/trending", handlers.TrendingTags)

		manage := tags.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateTag)
			manage.PUT("/:id", handlers.UpdateTag)
			manage.DELETE("/:id", handlers.DeleteTag)
		}

		review := tags.Group("/")
		review.Use(middleware.AuthMiddleware(), middleware.SuperAdminOnly())
		{
			review.POST("/:id/approve", handlers.ApproveTag)
			review.POST("/:id/reject", handlers.RejectTag)
		}
	}
}
