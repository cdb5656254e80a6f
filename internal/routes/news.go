package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/handlers"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
)

func RegisterNewsRoutes(r gin.IRouter) {
	news := r.Group("/news")
	{
		news.GET("", middleware.OptionalAuthMiddleware(), handlers.ListArticles)
		news.GET("/breaking", handlers.BreakingNews)
		news.GET("/top", handlers.TopNews)
		news.GET("/most-read", handlers.MostRead)
		news.GET("/:slug", middleware.OptionalAuthMiddleware(), handlers.GetArticle)
		news.GET("/:slug/related", middleware.OptionalAuthMiddleware(), handlers.RelatedArticles)

		// Engagement; view tracking is open, likes need an account.
		news.POST("/:slug/view", middleware.TrackRateLimit(), middleware.OptionalAuthMiddleware(), handlers.TrackArticleView)
		news.POST("/:slug/like", middleware.TrackRateLimit(), middleware.AuthMiddleware(), handlers.ToggleArticleLike)

		// Comments
		news.GET("/:slug/comments", middleware.OptionalAuthMiddleware(), handlers.ListComments)
		news.POST("/:slug/comments", middleware.AuthMiddleware(), handlers.CreateComment)

		manage := news.Group("/")
		manage.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
		{
			manage.POST("", handlers.CreateArticle)
		}
	}

	// Management endpoints address articles by id, not slug, since slugs
	// can change on edit.
	articles := r.Group("/articles")
	articles.Use(middleware.AuthMiddleware(), middleware.ContentManagerOnly())
	{
		articles.PUT("/:id", handlers.UpdateArticle)
		articles.DELETE("/:id", handlers.DeleteArticle)
		articles.POST("/:id/media", handlers.AddArticleMedia)
		articles.DELETE("/:id/media/:mediaId", handlers.DeleteArticleMedia)
		articles.GET("/:id/views", handlers.ListArticleViews)
	}

	likes := r.Group("/likes")
	likes.Use(middleware.AuthMiddleware())
	{
		likes.GET("", handlers.ListMyLikes)
	}

	comments := r.Group("/comments")
	comments.Use(middleware.AuthMiddleware())
	{
		comments.DELETE("/:id", handlers.DeleteComment)
		comments.PUT("/:id/moderate", middleware.ContentManagerOnly(), handlers.ModerateComment)
	}
}
