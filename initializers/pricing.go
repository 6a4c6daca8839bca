package initializers

import (
	"log"
	"os"

	"github.com/borgestech/storefront-api/services"
	"github.com/shopspring/decimal"
)

// Pricing holds the server-controlled pricing rules, loaded once at startup.
var Pricing services.PricingConfig

func envDecimal(key, fallback string) decimal.Decimal {
	raw := os.Getenv(key)
	if raw == "" {
		raw = fallback
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %q", key, raw)
	}
	return value
}

func LoadPricingConfig() {
	Pricing = services.PricingConfig{
		FreeShippingThreshold: envDecimal("FREE_SHIPPING_THRESHOLD", "100"),
		FlatShippingFee:       envDecimal("FLAT_SHIPPING_FEE", "15"),
		TaxRate:               envDecimal("TAX_RATE", "0.05"),
	}
	log.Printf("Pricing config loaded: free shipping above %s, flat fee %s, tax rate %s",
		Pricing.FreeShippingThreshold, Pricing.FlatShippingFee, Pricing.TaxRate)
}
