package services

import "github.com/borgestech/storefront-api/models"

// CheckoutStep is one of the sequential gates of the checkout flow. Each
// step requires every earlier step to be satisfied.
type CheckoutStep string

const (
	StepCart       CheckoutStep = "cart"
	StepShipping   CheckoutStep = "shipping"
	StepPayment    CheckoutStep = "payment"
	StepPlaceOrder CheckoutStep = "placeorder"
)

var checkoutOrder = []CheckoutStep{StepCart, StepShipping, StepPayment, StepPlaceOrder}

func (s CheckoutStep) String() string {
	return string(s)
}

func (s CheckoutStep) ordinal() int {
	for i, step := range checkoutOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// PaymentMethods enumerates the accepted payment options.
var PaymentMethods = []string{"Pix", "CreditCard", "PayPal"}

func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// FirstUnmetStep walks the checkout sequence and returns the first step
// whose prerequisite the cart does not satisfy. A cart that is ready to
// place an order yields StepPlaceOrder.
func FirstUnmetStep(cart models.Cart) CheckoutStep {
	if IsEmpty(cart) {
		return StepCart
	}
	if !cart.ShippingAddress.Complete() {
		return StepShipping
	}
	if !ValidPaymentMethod(cart.PaymentMethod) {
		return StepPayment
	}
	return StepPlaceOrder
}

// RedirectFor is the guard evaluated on every entry to a checkout screen.
// When the cart has not yet earned the step being entered, it returns the
// step to bounce the shopper back to.
func RedirectFor(cart models.Cart, entering CheckoutStep) (CheckoutStep, bool) {
	unmet := FirstUnmetStep(cart)
	if unmet.ordinal() < entering.ordinal() {
		return unmet, true
	}
	return entering, false
}
