package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/borgestech/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockOrderRepo implements OrderRepository over a map, mirroring the
// conditional-update contract of the gorm repository.
type mockOrderRepo struct {
	orders map[int]models.Order
	nextID int
	err    error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[int]models.Order), nextID: 1}
}

func (m *mockOrderRepo) Create(order *models.Order) error {
	if m.err != nil {
		return m.err
	}
	order.ID = uint(m.nextID)
	m.orders[m.nextID] = *order
	m.nextID++
	return nil
}

func (m *mockOrderRepo) GetByID(id int) (models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return models.Order{}, fmt.Errorf("order %d not found", id)
	}
	return order, nil
}

func (m *mockOrderRepo) MarkPaid(orderID int, paidAt time.Time, paymentRef string) (bool, error) {
	order, ok := m.orders[orderID]
	if !ok || order.IsPaid {
		return false, nil
	}
	order.IsPaid = true
	order.PaidAt = &paidAt
	order.PaymentRef = paymentRef
	m.orders[orderID] = order
	return true, nil
}

func (m *mockOrderRepo) MarkDelivered(orderID int, deliveredAt time.Time) (bool, error) {
	order, ok := m.orders[orderID]
	if !ok || !order.IsPaid || order.IsDelivered {
		return false, nil
	}
	order.IsDelivered = true
	order.DeliveredAt = &deliveredAt
	m.orders[orderID] = order
	return true, nil
}

type mockGateway struct {
	capture PaymentCapture
	err     error
	calls   int
}

func (m *mockGateway) Capture(_ context.Context, transactionID string) (PaymentCapture, error) {
	m.calls++
	if m.err != nil {
		return PaymentCapture{}, m.err
	}
	capture := m.capture
	capture.TransactionID = transactionID
	return capture, nil
}

func checkoutReadyCart() models.Cart {
	return models.Cart{
		Items: []models.CartItem{
			{ProductID: 1, Name: "Wireless Headphones", Price: decimal.RequireFromString("50.00"), Qty: 2},
			{ProductID: 2, Name: "Phone Case", Price: decimal.RequireFromString("10.00"), Qty: 1},
		},
		ShippingAddress: models.ShippingAddress{
			Address:    "Av. Paulista 1000",
			City:       "Sao Paulo",
			PostalCode: "01310-100",
			Country:    "Brazil",
		},
		PaymentMethod: "Pix",
	}
}

func admin() models.User {
	return models.User{Model: gorm.Model{ID: 1}, Role: models.RoleAdmin}
}

func customer() models.User {
	return models.User{Model: gorm.Model{ID: 2}, Role: models.RoleCustomer}
}

func placeTestOrder(t *testing.T, svc *OrderService) models.Order {
	t.Helper()
	order, err := svc.PlaceOrder(checkoutReadyCart(), 7, testConfig("100"))
	require.NoError(t, err)
	return order
}

func TestPlaceOrder_SnapshotsCartAndPrices(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, &mockGateway{})

	order := placeTestOrder(t, svc)

	assert.Equal(t, 7, order.UserID)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, "110.00", order.ItemsPrice.StringFixed(2))
	assert.Equal(t, "0.00", order.ShippingPrice.StringFixed(2))
	assert.Equal(t, "5.50", order.TaxPrice.StringFixed(2))
	assert.Equal(t, "115.50", order.TotalPrice.StringFixed(2))
	assert.NotEmpty(t, order.MerchantRef)
	assert.False(t, order.IsPaid)
	assert.Nil(t, order.PaidAt)
	assert.False(t, order.IsDelivered)
	assert.Nil(t, order.DeliveredAt)
}

func TestPlaceOrder_EmptyCartFails(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo(), &mockGateway{})

	cart := checkoutReadyCart()
	cart.Items = nil

	_, err := svc.PlaceOrder(cart, 7, testConfig("100"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceOrder_UnknownPaymentMethodFails(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo(), &mockGateway{})

	cart := checkoutReadyCart()
	cart.PaymentMethod = "Barter"

	_, err := svc.PlaceOrder(cart, 7, testConfig("100"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthorizePayment_MatchingAmountMovesToPaid(t *testing.T) {
	repo := newMockOrderRepo()
	gateway := &mockGateway{capture: PaymentCapture{
		Amount:    decimal.RequireFromString("115.50"),
		Completed: true,
	}}
	svc := NewOrderService(repo, gateway)
	order := placeTestOrder(t, svc)

	paid, err := svc.AuthorizePayment(context.Background(), int(order.ID), "TX-123")

	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, "TX-123", paid.PaymentRef)
	assert.False(t, paid.IsDelivered)
}

func TestAuthorizePayment_SecondCaptureFailsLoudly(t *testing.T) {
	repo := newMockOrderRepo()
	gateway := &mockGateway{capture: PaymentCapture{
		Amount:    decimal.RequireFromString("115.50"),
		Completed: true,
	}}
	svc := NewOrderService(repo, gateway)
	order := placeTestOrder(t, svc)

	_, err := svc.AuthorizePayment(context.Background(), int(order.ID), "TX-123")
	require.NoError(t, err)

	_, err = svc.AuthorizePayment(context.Background(), int(order.ID), "TX-456")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAuthorizePayment_ShortPaymentIsRejected(t *testing.T) {
	repo := newMockOrderRepo()
	gateway := &mockGateway{capture: PaymentCapture{
		Amount:    decimal.RequireFromString("115.49"),
		Completed: true,
	}}
	svc := NewOrderService(repo, gateway)
	order := placeTestOrder(t, svc)

	_, err := svc.AuthorizePayment(context.Background(), int(order.ID), "TX-123")

	assert.ErrorIs(t, err, ErrPaymentMismatch)

	stored, getErr := repo.GetByID(int(order.ID))
	require.NoError(t, getErr)
	assert.False(t, stored.IsPaid, "a mismatched capture must leave the order unpaid")
	assert.Nil(t, stored.PaidAt)
}

func TestAuthorizePayment_IncompleteCaptureIsRejected(t *testing.T) {
	repo := newMockOrderRepo()
	gateway := &mockGateway{capture: PaymentCapture{
		Amount:    decimal.RequireFromString("115.50"),
		Completed: false,
	}}
	svc := NewOrderService(repo, gateway)
	order := placeTestOrder(t, svc)

	_, err := svc.AuthorizePayment(context.Background(), int(order.ID), "TX-123")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthorizePayment_GatewayFailurePropagates(t *testing.T) {
	repo := newMockOrderRepo()
	gateway := &mockGateway{err: fmt.Errorf("%w: connect timeout", ErrTransient)}
	svc := NewOrderService(repo, gateway)
	order := placeTestOrder(t, svc)

	_, err := svc.AuthorizePayment(context.Background(), int(order.ID), "TX-123")

	assert.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, 1, gateway.calls, "transient failures must not be retried automatically")
}

func TestMarkDelivered_RequiresAdmin(t *testing.T) {
	repo := newMockOrderRepo()
	gateway := &mockGateway{capture: PaymentCapture{
		Amount:    decimal.RequireFromString("115.50"),
		Completed: true,
	}}
	svc := NewOrderService(repo, gateway)
	order := placeTestOrder(t, svc)

	_, err := svc.AuthorizePayment(context.Background(), int(order.ID), "TX-123")
	require.NoError(t, err)

	_, err = svc.MarkDelivered(int(order.ID), customer())
	assert.ErrorIs(t, err, ErrForbidden)

	stored, getErr := repo.GetByID(int(order.ID))
	require.NoError(t, getErr)
	assert.False(t, stored.IsDelivered)
}

func TestMarkDelivered_RequiresPaidOrder(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewOrderService(repo, &mockGateway{})
	order := placeTestOrder(t, svc)

	_, err := svc.MarkDelivered(int(order.ID), admin())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestMarkDelivered_AdminOnPaidOrder(t *testing.T) {
	repo := newMockOrderRepo()
	gateway := &mockGateway{capture: PaymentCapture{
		Amount:    decimal.RequireFromString("115.50"),
		Completed: true,
	}}
	svc := NewOrderService(repo, gateway)
	order := placeTestOrder(t, svc)

	_, err := svc.AuthorizePayment(context.Background(), int(order.ID), "TX-123")
	require.NoError(t, err)

	delivered, err := svc.MarkDelivered(int(order.ID), admin())

	require.NoError(t, err)
	assert.True(t, delivered.IsDelivered)
	require.NotNil(t, delivered.DeliveredAt)
	assert.True(t, delivered.IsPaid, "a delivered order is always a paid order")

	_, err = svc.MarkDelivered(int(order.ID), admin())
	assert.ErrorIs(t, err, ErrInvalidState)
}
