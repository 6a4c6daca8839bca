package controllers

import (
	"errors"
	"net/http"

	"github.com/borgestech/storefront-api/initializers"
	"github.com/borgestech/storefront-api/models"
	"github.com/borgestech/storefront-api/payments"
	"github.com/borgestech/storefront-api/repositories"
	"github.com/borgestech/storefront-api/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	cartRepo     *repositories.CartRepository
	orderRepo    *repositories.OrderRepository
	orderService *services.OrderService
)

// Init wires the controllers to the database and the payment gateway.
// Called from main after the database connection is up.
func Init() {
	cartRepo = repositories.NewCartRepository(initializers.DB)
	orderRepo = repositories.NewOrderRepository(initializers.DB)
	orderService = services.NewOrderService(orderRepo, payments.NewGateway())
}

// currentUser loads the authenticated user from the claims RequireAuth put
// into the context.
func currentUser(ctx *gin.Context) (models.User, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return models.User{}, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return models.User{}, false
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return models.User{}, false
	}

	var user models.User
	if result := initializers.DB.First(&user, int(userID)); result.Error != nil {
		return models.User{}, false
	}
	return user, true
}

// serviceErrorStatus maps the service error taxonomy onto HTTP statuses.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrPaymentMismatch):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
