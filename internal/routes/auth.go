package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/handlers"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.AuthRateLimit(), handlers.Register)
		auth.POST("/login", middleware.AuthRateLimit(), handlers.Login)

		me := auth.Group("/")
		me.Use(middleware.AuthMiddleware())
		{
			me.GET("/me", handlers.Me)
			me.PUT("/me", handlers.UpdateProfile)
			me.PUT("/me/password", handlers.ChangePassword)
		}
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.SuperAdminOnly())
	{
		users.GET("", handlers.ListUsers)
		users.PUT("/:id/role", handlers.UpdateUserRole)
	}
}
