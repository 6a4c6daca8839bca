package services

import (
	"testing"

	"github.com/borgestech/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testConfig(threshold string) PricingConfig {
	return PricingConfig{
		FreeShippingThreshold: decimal.RequireFromString(threshold),
		FlatShippingFee:       decimal.RequireFromString("15"),
		TaxRate:               decimal.RequireFromString("0.05"),
	}
}

func sampleItems() []models.CartItem {
	return []models.CartItem{
		{ProductID: 1, Price: decimal.RequireFromString("50.00"), Qty: 2},
		{ProductID: 2, Price: decimal.RequireFromString("10.00"), Qty: 1},
	}
}

func TestQuote_FreeShippingAboveThreshold(t *testing.T) {
	quote := Quote(sampleItems(), testConfig("100"))

	assert.Equal(t, "110.00", quote.ItemsPrice.StringFixed(2))
	assert.Equal(t, "0.00", quote.ShippingPrice.StringFixed(2))
	assert.Equal(t, "5.50", quote.TaxPrice.StringFixed(2))
	assert.Equal(t, "115.50", quote.TotalPrice.StringFixed(2))
}

func TestQuote_FlatFeeBelowThreshold(t *testing.T) {
	quote := Quote(sampleItems(), testConfig("200"))

	assert.Equal(t, "15.00", quote.ShippingPrice.StringFixed(2))
	assert.Equal(t, "130.50", quote.TotalPrice.StringFixed(2))
}

func TestQuote_ThresholdIsExclusive(t *testing.T) {
	// Exactly at the threshold still pays shipping.
	items := []models.CartItem{
		{ProductID: 1, Price: decimal.RequireFromString("100.00"), Qty: 1},
	}

	quote := Quote(items, testConfig("100"))

	assert.Equal(t, "15.00", quote.ShippingPrice.StringFixed(2))
}

func TestQuote_EmptyCart(t *testing.T) {
	quote := Quote(nil, testConfig("100"))

	assert.True(t, quote.ItemsPrice.IsZero())
	assert.Equal(t, "0.00", quote.TaxPrice.StringFixed(2))
	assert.Equal(t, "15.00", quote.TotalPrice.StringFixed(2))
}

func TestQuote_TotalIsSumOfComponents(t *testing.T) {
	carts := [][]models.CartItem{
		sampleItems(),
		{{ProductID: 1, Price: decimal.RequireFromString("0.01"), Qty: 3}},
		{{ProductID: 1, Price: decimal.RequireFromString("19.99"), Qty: 7},
			{ProductID: 2, Price: decimal.RequireFromString("3.33"), Qty: 2}},
		nil,
	}

	for _, items := range carts {
		quote := Quote(items, testConfig("100"))
		sum := quote.ItemsPrice.Add(quote.ShippingPrice).Add(quote.TaxPrice)
		assert.True(t, quote.TotalPrice.Equal(sum),
			"total %s != sum of components %s", quote.TotalPrice, sum)
	}
}

func TestQuote_RoundsTaxToTwoDecimals(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Price: decimal.RequireFromString("33.33"), Qty: 1},
	}

	quote := Quote(items, testConfig("100"))

	// 33.33 * 0.05 = 1.6665, rounds to 1.67
	assert.Equal(t, "1.67", quote.TaxPrice.StringFixed(2))
}
