package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/borgestech/storefront-api/initializers"
	"github.com/borgestech/storefront-api/models"
	"github.com/borgestech/storefront-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// cartResponse pairs the stored cart with prices derived fresh on every
// read. Derived prices are never persisted.
func cartResponse(cart models.Cart) gin.H {
	quote := services.Quote(cart.Items, initializers.Pricing)
	return gin.H{
		"cart":      cart,
		"itemCount": services.ItemCount(cart),
		"prices":    quote,
	}
}

func GetCart(ctx *gin.Context) {
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

	sendJSONResponse(ctx, http.StatusOK, cartResponse(cart))
}

// AddCartItem adds a product to the cart or replaces its quantity when the
// product is already there.
func AddCartItem(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var itemData struct {
		ProductID int `json:"productId" binding:"required"`
		Qty       int `json:"qty" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&itemData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	var product models.Product
	if err := initializers.DB.Preload("Images").First(&product, itemData.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch product")
		}
		return
	}

	cart, err := cartRepo.GetByUser(int(user.ID))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	cart, err = services.AddItem(cart, product, itemData.Qty)
	if err != nil {
		sendErrorResponse(ctx, serviceErrorStatus(err), err.Error())
		return
	}

	if err := cartRepo.ReplaceItems(cart); err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, cartResponse(cart))
}

// RemoveCartItem deletes a product from the cart. Removing an absent
// product succeeds quietly.
func RemoveCartItem(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse productId")
		return
	}

	cart, err := cartRepo.GetByUser(int(user.ID))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	cart = services.RemoveItem(cart, productId)

	if err := cartRepo.ReplaceItems(cart); err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, cartResponse(cart))
}
