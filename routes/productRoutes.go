package routes

import (
	"github.com/borgestech/storefront-api/controllers"
	"github.com/borgestech/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)

	admin := server.Group("", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/product", controllers.CreateProduct)
		admin.PUT("/product/:id", controllers.UpdateProduct)
		admin.DELETE("/product/:id", controllers.DeleteProduct)
		admin.POST("/product-specs", controllers.CreateProductSpecs)
		admin.POST("/product-images", controllers.UploadProductImages)
	}
}
