package routes

import (
	"github.com/borgestech/storefront-api/controllers"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(server *gin.Engine) {
	config := server.Group("/config")
	{
		config.GET("/pricing", controllers.GetPricingConfig)
		config.GET("/payment", controllers.GetPaymentConfig)
	}
}
