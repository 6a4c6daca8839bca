package initializers

import (
	"log"

	"github.com/borgestech/storefront-api/models"
	"github.com/shopspring/decimal"
)

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// SeedProducts loads the starter catalog on an empty products table so a
// fresh install has something to sell.
func SeedProducts() {
	var count int64
	DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []models.Product{
		{
			Brand:        "Apple",
			Name:         "AirPods Wireless Bluetooth Headphones",
			Description:  "Bluetooth technology lets you connect it with compatible devices wirelessly. High-quality AAC audio offers an immersive listening experience.",
			Price:        price("89.99"),
			Category:     "Electronics",
			CountInStock: 10,
			Rating:       4.5,
			NumReviews:   12,
		},
		{
			Brand:        "Apple",
			Name:         "iPhone 13 Pro 256GB",
			Description:  "A transformative triple-camera system that adds tons of capability without complexity. An unprecedented leap in battery life.",
			Price:        price("599.99"),
			Category:     "Electronics",
			CountInStock: 7,
			Rating:       4.0,
			NumReviews:   8,
		},
		{
			Brand:        "Canon",
			Name:         "Canon EOS 80D DSLR Camera",
			Description:  "Characterized by versatile imaging specs, the Canon EOS 80D further clarifies itself using a pair of robust focusing systems.",
			Price:        price("929.99"),
			Category:     "Electronics",
			CountInStock: 5,
			Rating:       3.0,
			NumReviews:   12,
		},
		{
			Brand:        "Sony",
			Name:         "Sony PlayStation 5",
			Description:  "The ultimate home entertainment center starts with PlayStation. Games, music, and more.",
			Price:        price("399.99"),
			Category:     "Electronics",
			CountInStock: 11,
			Rating:       5.0,
			NumReviews:   12,
		},
		{
			Brand:        "Logitech",
			Name:         "Logitech G-Series Gaming Mouse",
			Description:  "Get a better handle on your games with this Logitech gaming mouse. Six programmable buttons allow customization for a smooth playing experience.",
			Price:        price("49.99"),
			Category:     "Electronics",
			CountInStock: 7,
			Rating:       3.5,
			NumReviews:   10,
		},
		{
			Brand:        "Amazon",
			Name:         "Amazon Echo Dot 3rd Generation",
			Description:  "Meet Echo Dot, our most popular smart speaker with a fabric design. It is our most compact smart speaker that fits perfectly into small spaces.",
			Price:        price("29.99"),
			Category:     "Electronics",
			CountInStock: 0,
			Rating:       4.0,
			NumReviews:   12,
		},
	}

	if err := DB.Create(&products).Error; err != nil {
		log.Println("Failed to seed products:", err)
		return
	}
	log.Printf("Seeded %d products.", len(products))
}
