package controllers

import (
	"log"
	"net/http"

	"github.com/borgestech/storefront-api/models"
	"github.com/borgestech/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// loadCartForCheckout fetches the caller's cart and runs the step guard.
// When the cart has not earned the step being entered, it answers 409 with
// the step the client must go back to and reports false.
func loadCartForCheckout(ctx *gin.Context, entering services.CheckoutStep) (models.Cart, models.User, bool) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return models.Cart{}, models.User{}, false
	}

	cart, err := cartRepo.GetByUser(int(user.ID))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return models.Cart{}, models.User{}, false
	}

	if redirect, bounced := services.RedirectFor(cart, entering); bounced {
		sendJSONResponse(ctx, http.StatusConflict, gin.H{
			"message":    "Checkout step not available yet",
			"redirectTo": redirect.String(),
		})
		return models.Cart{}, models.User{}, false
	}
	return cart, user, true
}

// GetCheckoutState tells the client which checkout step it should render.
func GetCheckoutState(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := cartRepo.GetByUser(int(user.ID))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"currentStep":    services.FirstUnmetStep(cart).String(),
		"paymentMethods": services.PaymentMethods,
	})
}

// SaveShippingAddress stores the shipping address on the cart. All four
// fields are required.
func SaveShippingAddress(ctx *gin.Context) {
	cart, _, ok := loadCartForCheckout(ctx, services.StepShipping)
	if !ok {
		return
	}

	var address models.ShippingAddress
	if err := ctx.ShouldBindJSON(&address); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}
	if !address.Complete() {
		sendErrorResponse(ctx, http.StatusBadRequest, "Address, city, postal code and country are all required")
		return
	}

	if err := cartRepo.SaveShippingAddress(int(cart.ID), address); err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save shipping address")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Shipping address saved."})
}

// SavePaymentMethod stores the chosen payment method on the cart.
func SavePaymentMethod(ctx *gin.Context) {
	cart, _, ok := loadCartForCheckout(ctx, services.StepPayment)
	if !ok {
		return
	}

	var paymentData struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&paymentData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}
	if !services.ValidPaymentMethod(paymentData.PaymentMethod) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown payment method")
		return
	}

	if err := cartRepo.SavePaymentMethod(int(cart.ID), paymentData.PaymentMethod); err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save payment method")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment method saved."})
}
