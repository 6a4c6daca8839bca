package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShippingAddress is embedded into carts and orders. It is considered set
// only when all four fields are non-empty.
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a ShippingAddress) Complete() bool {
	return a.Address != "" && a.City != "" && a.PostalCode != "" && a.Country != ""
}

// CartItem snapshots the product fields the cart screen needs, so the cart
// stays renderable even if the product changes later. One row per product.
type CartItem struct {
	gorm.Model
	CartID       int             `json:"cartId"`
	ProductID    int             `json:"productId"`
	Name         string          `json:"name"`
	Image        string          `json:"image"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	CountInStock int             `json:"countInStock"`
	Qty          int             `json:"qty"`
}

type Cart struct {
	gorm.Model
	UserID          int             `json:"userId"`
	Items           []CartItem      `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	PaymentMethod   string          `json:"paymentMethod"`
}
