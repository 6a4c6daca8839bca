package services

import (
	"github.com/borgestech/storefront-api/models"
	"github.com/shopspring/decimal"
)

// PricingConfig holds the server-controlled pricing rules. Values come from
// the environment at startup, never from the client.
type PricingConfig struct {
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	FlatShippingFee       decimal.Decimal `json:"flatShippingFee"`
	TaxRate               decimal.Decimal `json:"taxRate"`
}

type PriceBreakdown struct {
	ItemsPrice    decimal.Decimal `json:"itemsPrice"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	TaxPrice      decimal.Decimal `json:"taxPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

// Quote derives the four price components from the cart items. It is pure
// and gets re-run on every cart read and again at order placement; nothing
// derived is ever stored on the cart.
//
// Shipping is free strictly above the threshold, otherwise the flat fee
// applies. Tax is a fraction of the items price. All components round to
// two decimal places.
func Quote(items []models.CartItem, cfg PricingConfig) PriceBreakdown {
	itemsPrice := decimal.Zero
	for _, item := range items {
		itemsPrice = itemsPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	itemsPrice = itemsPrice.Round(2)

	shippingPrice := cfg.FlatShippingFee.Round(2)
	if itemsPrice.GreaterThan(cfg.FreeShippingThreshold) {
		shippingPrice = decimal.Zero
	}

	taxPrice := itemsPrice.Mul(cfg.TaxRate).Round(2)

	return PriceBreakdown{
		ItemsPrice:    itemsPrice,
		ShippingPrice: shippingPrice,
		TaxPrice:      taxPrice,
		TotalPrice:    itemsPrice.Add(shippingPrice).Add(taxPrice),
	}
}
