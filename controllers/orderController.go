package controllers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/borgestech/storefront-api/initializers"
	"github.com/borgestech/storefront-api/services"
	"github.com/borgestech/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

func sendOrderConfirmationEmail(email, name string, orderID uint) error {
	emailData := utils.EmailData{
		Name:    name,
		Message: fmt.Sprintf("Your order #%d has been placed. We will let you know once payment is confirmed.", orderID),
		OrderID: orderID,
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(email, fmt.Sprintf("Order #%d confirmation", orderID), emailData, templatePath)
}

// PlaceOrder turns the caller's cart into an order and clears the cart.
func PlaceOrder(ctx *gin.Context) {
	cart, user, ok := loadCartForCheckout(ctx, services.StepPlaceOrder)
	if !ok {
		return
	}

	order, err := orderService.PlaceOrder(cart, int(user.ID), initializers.Pricing)
	if err != nil {
		log.Println("Order placement error:", err)
		sendErrorResponse(ctx, serviceErrorStatus(err), err.Error())
		return
	}

	if err := cartRepo.Clear(int(cart.ID)); err != nil {
		// The order exists; a stale cart is recoverable.
		log.Printf("Order %d placed but cart %d not cleared: %v", order.ID, cart.ID, err)
	}

	if err := sendOrderConfirmationEmail(user.Email, user.Name, order.ID); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully.",
		"order":   order,
	})
}

// PayOrder records a payment capture against an order. The gateway is the
// source of truth for the captured amount; the client only names the
// transaction.
func PayOrder(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var paymentData struct {
		TransactionID string `json:"transactionId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&paymentData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	order, err := orderRepo.GetByID(orderId)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != int(user.ID) && !user.IsAdmin() {
		sendErrorResponse(ctx, http.StatusForbidden, "You cannot pay for someone else's order")
		return
	}

	paid, err := orderService.AuthorizePayment(ctx.Request.Context(), orderId, paymentData.TransactionID)
	if err != nil {
		log.Printf("Payment authorization failed for order %d: %v", orderId, err)
		sendErrorResponse(ctx, serviceErrorStatus(err), err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment recorded successfully.",
		"order":   paid,
	})
}

// MarkOrderDelivered is the admin action on the order list screen.
func MarkOrderDelivered(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := orderService.MarkDelivered(orderId, user)
	if err != nil {
		log.Printf("Deliver failed for order %d: %v", orderId, err)
		sendErrorResponse(ctx, serviceErrorStatus(err), err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order marked as delivered.",
		"order":   order,
	})
}

// GetMyOrders lists the caller's own orders.
func GetMyOrders(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	orders, err := orderRepo.ListByUser(int(user.ID), sortOrder)
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrderById returns one order, visible to its owner and to admins.
func GetOrderById(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := orderRepo.GetByID(orderId)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != int(user.ID) && !user.IsAdmin() {
		sendErrorResponse(ctx, http.StatusForbidden, "You cannot view someone else's order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetOrders lists all orders for the admin console, paginated.
func GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	orders, count, err := orderRepo.List(limit, offset, sortOrder)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// GetUndeliveredOrders feeds the badge on the admin dashboard.
func GetUndeliveredOrders(ctx *gin.Context) {
	count, err := orderRepo.CountUndelivered()
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count undelivered orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
