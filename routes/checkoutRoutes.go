package routes

import (
	"github.com/borgestech/storefront-api/controllers"
	"github.com/borgestech/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CheckoutRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout", middlewares.RequireAuth())
	{
		checkout.GET("", controllers.GetCheckoutState)
		checkout.PUT("/shipping", controllers.SaveShippingAddress)
		checkout.PUT("/payment", controllers.SavePaymentMethod)
		checkout.POST("/place-order", controllers.PlaceOrder)
	}
}
