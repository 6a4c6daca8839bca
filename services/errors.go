package services

import "errors"

var (
	// ErrValidation covers malformed or empty input, e.g. placing an order
	// with no items or an out-of-range quantity.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState marks a transition attempted from a state that does
	// not permit it.
	ErrInvalidState = errors.New("order state does not allow this operation")

	// ErrPaymentMismatch means the amount reported by the payment gateway
	// differs from the order total.
	ErrPaymentMismatch = errors.New("captured amount does not match order total")

	ErrForbidden = errors.New("caller lacks permission")

	// ErrTransient marks network or timeout failures from external
	// collaborators. The caller may retry manually; this service never
	// retries payment-affecting operations on its own.
	ErrTransient = errors.New("temporary failure reaching external service")
)
