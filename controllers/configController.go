package controllers

import (
	"net/http"
	"os"

	"github.com/borgestech/storefront-api/initializers"
	"github.com/gin-gonic/gin"
)

// GetPricingConfig exposes the shipping and tax rules so the storefront
// can preview prices with the same numbers the server charges.
func GetPricingConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, initializers.Pricing)
}

// GetPaymentConfig hands the storefront the public gateway client id.
func GetPaymentConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"clientId": os.Getenv("PAYMENT_CLIENT_ID"),
	})
}
