package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a cart at placement time. After creation
// only the payment and delivery flags move, via the conditional updates in
// the order repository.
type Order struct {
	gorm.Model
	UserID          int             `json:"userId"`
	OrderItems      []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal `json:"itemsPrice" gorm:"type:decimal(10,2)"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice" gorm:"type:decimal(10,2)"`
	TaxPrice        decimal.Decimal `json:"taxPrice" gorm:"type:decimal(10,2)"`
	TotalPrice      decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2)"`
	MerchantRef     string          `json:"merchantRef"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt"`
	PaymentRef      string          `json:"paymentRef"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt"`
}

type OrderItem struct {
	gorm.Model
	OrderID   int             `json:"orderId"`
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Qty       int             `json:"qty"`
}
