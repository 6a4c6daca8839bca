package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the BorgesTech Storefront API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password
- GET "/auth/profile" - Get own profile
- PUT "/auth/profile" - Update own profile

PRODUCT
- GET "/product" - Get all products
- GET "/product/{id}" - Get product by ID
- POST "/product" - Create new product (admin)
- PUT "/product/{id}" - Update product (admin)
- DELETE "/product/{id}" - Delete product (admin)
- POST "/product-specs" - Add product specifications (admin)
- POST "/product-images" - Add product images (admin)

CART
- GET "/cart" - Get own cart with derived prices
- POST "/cart/items" - Add or update a cart item
- DELETE "/cart/items/{productId}" - Remove a cart item

CHECKOUT
- GET "/checkout" - Get current checkout step
- PUT "/checkout/shipping" - Save shipping address
- PUT "/checkout/payment" - Save payment method
- POST "/checkout/place-order" - Place the order

ORDER
- GET "/orders/mine" - Get own orders
- GET "/order/{orderId}" - Get order by ID
- PUT "/order/{orderId}/pay" - Record payment capture
- GET "/orders" - Retrieve all orders (admin)
- PATCH "/order/{orderId}/deliver" - Mark order delivered (admin)
- GET "/orders/undelivered-count" - Count undelivered orders (admin)

CONFIG
- GET "/config/pricing" - Shipping and tax rules
- GET "/config/payment" - Payment gateway client id`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
