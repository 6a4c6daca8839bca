package routes

import (
	"github.com/borgestech/storefront-api/controllers"
	"github.com/borgestech/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	// Collection routes stay static-only and item routes param-only, the
	// gin router rejects mixed siblings.
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("/mine", controllers.GetMyOrders)

		admin := orders.Group("", middlewares.RequireAdmin())
		{
			admin.GET("", controllers.GetOrders)
			admin.GET("/undelivered-count", controllers.GetUndeliveredOrders)
		}
	}

	order := server.Group("/order", middlewares.RequireAuth())
	{
		order.GET("/:orderId", controllers.GetOrderById)
		order.PUT("/:orderId/pay", controllers.PayOrder)
		// The admin capability check for delivery lives in the order
		// service, the route only requires authentication.
		order.PATCH("/:orderId/deliver", controllers.MarkOrderDelivered)
	}
}
