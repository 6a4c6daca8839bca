package services

import (
	"testing"

	"github.com/borgestech/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cartWithItems() models.Cart {
	return models.Cart{
		Items: []models.CartItem{
			{ProductID: 1, Price: decimal.RequireFromString("10.00"), Qty: 1},
		},
	}
}

func completeAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Address:    "Av. Paulista 1000",
		City:       "Sao Paulo",
		PostalCode: "01310-100",
		Country:    "Brazil",
	}
}

func TestFirstUnmetStep_Progression(t *testing.T) {
	cart := models.Cart{}
	assert.Equal(t, StepCart, FirstUnmetStep(cart))

	cart = cartWithItems()
	assert.Equal(t, StepShipping, FirstUnmetStep(cart))

	cart.ShippingAddress = completeAddress()
	assert.Equal(t, StepPayment, FirstUnmetStep(cart))

	cart.PaymentMethod = "Pix"
	assert.Equal(t, StepPlaceOrder, FirstUnmetStep(cart))
}

func TestFirstUnmetStep_PartialAddressDoesNotCount(t *testing.T) {
	cart := cartWithItems()
	cart.ShippingAddress = models.ShippingAddress{Address: "Av. Paulista 1000", City: "Sao Paulo"}

	assert.Equal(t, StepShipping, FirstUnmetStep(cart))
}

func TestRedirectFor_PaymentWithoutShippingBouncesToShipping(t *testing.T) {
	cart := cartWithItems()

	redirect, bounced := RedirectFor(cart, StepPayment)

	assert.True(t, bounced)
	assert.Equal(t, StepShipping, redirect)
}

func TestRedirectFor_PlaceOrderWithoutPaymentBouncesToPayment(t *testing.T) {
	cart := cartWithItems()
	cart.ShippingAddress = completeAddress()

	redirect, bounced := RedirectFor(cart, StepPlaceOrder)

	assert.True(t, bounced)
	assert.Equal(t, StepPayment, redirect)
}

func TestRedirectFor_EarnedStepPasses(t *testing.T) {
	cart := cartWithItems()
	cart.ShippingAddress = completeAddress()
	cart.PaymentMethod = "CreditCard"

	for _, step := range []CheckoutStep{StepCart, StepShipping, StepPayment, StepPlaceOrder} {
		redirect, bounced := RedirectFor(cart, step)
		assert.False(t, bounced)
		assert.Equal(t, step, redirect)
	}
}

func TestRedirectFor_GuardRunsOnEveryEntry(t *testing.T) {
	// A cart that once reached payment loses the step again when its
	// address is cleared.
	cart := cartWithItems()
	cart.ShippingAddress = completeAddress()
	cart.PaymentMethod = "Pix"

	cart.ShippingAddress = models.ShippingAddress{}

	redirect, bounced := RedirectFor(cart, StepPayment)
	assert.True(t, bounced)
	assert.Equal(t, StepShipping, redirect)
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod("Pix"))
	assert.True(t, ValidPaymentMethod("CreditCard"))
	assert.True(t, ValidPaymentMethod("PayPal"))
	assert.False(t, ValidPaymentMethod(""))
	assert.False(t, ValidPaymentMethod("Barter"))
}
