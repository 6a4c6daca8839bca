package services

import (
	"context"
	"fmt"
	"time"

	"github.com/borgestech/storefront-api/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepository is the slice of the store the order lifecycle needs. The
// two Mark methods are conditional updates: they transition the row only
// when it is still in the expected state and report whether a row moved,
// so two concurrent captures can never both succeed.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id int) (models.Order, error)
	MarkPaid(orderID int, paidAt time.Time, paymentRef string) (bool, error)
	MarkDelivered(orderID int, deliveredAt time.Time) (bool, error)
}

// PaymentCapture is what the gateway reports for a transaction. It is
// untrusted input until the amount has been checked against the order.
type PaymentCapture struct {
	TransactionID string
	Amount        decimal.Decimal
	Completed     bool
}

type PaymentGateway interface {
	Capture(ctx context.Context, transactionID string) (PaymentCapture, error)
}

type OrderService struct {
	repo    OrderRepository
	gateway PaymentGateway
	now     func() time.Time
}

func NewOrderService(repo OrderRepository, gateway PaymentGateway) *OrderService {
	return &OrderService{repo: repo, gateway: gateway, now: time.Now}
}

// PlaceOrder snapshots the cart into a new unpaid, undelivered order. The
// prices are recomputed here rather than taken from the client.
func (s *OrderService) PlaceOrder(cart models.Cart, userID int, cfg PricingConfig) (models.Order, error) {
	if IsEmpty(cart) {
		return models.Order{}, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	if !cart.ShippingAddress.Complete() {
		return models.Order{}, fmt.Errorf("%w: shipping address is incomplete", ErrValidation)
	}
	if !ValidPaymentMethod(cart.PaymentMethod) {
		return models.Order{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, cart.PaymentMethod)
	}

	quote := Quote(cart.Items, cfg)

	order := models.Order{
		UserID:          userID,
		ShippingAddress: cart.ShippingAddress,
		PaymentMethod:   cart.PaymentMethod,
		ItemsPrice:      quote.ItemsPrice,
		ShippingPrice:   quote.ShippingPrice,
		TaxPrice:        quote.TaxPrice,
		TotalPrice:      quote.TotalPrice,
		MerchantRef:     uuid.NewString(),
	}
	for _, item := range cart.Items {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Qty:       item.Qty,
		})
	}

	if err := s.repo.Create(&order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// AuthorizePayment moves an order from created to paid. The gateway is
// asked for the authoritative capture and its amount must match the order
// total exactly; a short payment is rejected, not absorbed. Calling this on
// an order that is already paid fails loudly, double capture is a
// correctness bug rather than a no-op.
func (s *OrderService) AuthorizePayment(ctx context.Context, orderID int, transactionID string) (models.Order, error) {
	order, err := s.repo.GetByID(orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.IsPaid {
		return models.Order{}, fmt.Errorf("%w: order %d is already paid", ErrInvalidState, orderID)
	}

	capture, err := s.gateway.Capture(ctx, transactionID)
	if err != nil {
		return models.Order{}, err
	}
	if !capture.Completed {
		return models.Order{}, fmt.Errorf("%w: transaction %s is not completed", ErrValidation, transactionID)
	}
	if !capture.Amount.Equal(order.TotalPrice) {
		return models.Order{}, fmt.Errorf("%w: gateway reported %s, order total is %s",
			ErrPaymentMismatch, capture.Amount.StringFixed(2), order.TotalPrice.StringFixed(2))
	}

	moved, err := s.repo.MarkPaid(orderID, s.now(), capture.TransactionID)
	if err != nil {
		return models.Order{}, err
	}
	if !moved {
		// Another capture won the race between our read and the update.
		return models.Order{}, fmt.Errorf("%w: order %d is already paid", ErrInvalidState, orderID)
	}

	return s.repo.GetByID(orderID)
}

// MarkDelivered is an admin-only transition from paid to delivered.
func (s *OrderService) MarkDelivered(orderID int, actingUser models.User) (models.Order, error) {
	if !actingUser.IsAdmin() {
		return models.Order{}, fmt.Errorf("%w: only admins can mark orders delivered", ErrForbidden)
	}

	order, err := s.repo.GetByID(orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.IsDelivered {
		return models.Order{}, fmt.Errorf("%w: order %d is already delivered", ErrInvalidState, orderID)
	}
	if !order.IsPaid {
		return models.Order{}, fmt.Errorf("%w: order %d has not been paid", ErrInvalidState, orderID)
	}

	moved, err := s.repo.MarkDelivered(orderID, s.now())
	if err != nil {
		return models.Order{}, err
	}
	if !moved {
		return models.Order{}, fmt.Errorf("%w: order %d is not in a deliverable state", ErrInvalidState, orderID)
	}

	return s.repo.GetByID(orderID)
}
