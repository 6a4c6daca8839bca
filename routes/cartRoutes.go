package routes

import (
	"github.com/borgestech/storefront-api/controllers"
	"github.com/borgestech/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("/items", controllers.AddCartItem)
		cart.DELETE("/items/:productId", controllers.RemoveCartItem)
	}
}
