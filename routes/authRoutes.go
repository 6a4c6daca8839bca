package routes

import (
	"github.com/borgestech/storefront-api/controllers"
	"github.com/borgestech/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-email/:activationToken", controllers.ActivateAccount)
		auth.POST("/forgot-password", controllers.SendPasswordResetLink)
		auth.POST("/reset-password/:resetToken", controllers.ResetPassword)
		auth.GET("/profile", middlewares.RequireAuth(), controllers.GetProfile)
		auth.PUT("/profile", middlewares.RequireAuth(), controllers.UpdateProfile)
	}

	users := server.Group("/user", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		users.GET("", controllers.GetUsers)
		users.DELETE("/:userId", controllers.DeleteUser)
	}
}
