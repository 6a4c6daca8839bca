package repositories

import (
	"errors"

	"github.com/borgestech/storefront-api/models"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetByUser returns the user's cart, creating an empty one on first use.
func (r *CartRepository) GetByUser(userID int) (models.Cart, error) {
	var cart models.Cart
	result := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.created_at ASC")
	}).Where("user_id = ?", userID).First(&cart)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := r.db.Create(&cart).Error; err != nil {
			return models.Cart{}, err
		}
		return cart, nil
	}
	return cart, result.Error
}

// ReplaceItems swaps the stored line items for the given set in one
// transaction, keeping the stored cart in step with the aggregator's view.
func (r *CartRepository) ReplaceItems(cart models.Cart) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			item := cart.Items[i]
			item.ID = 0
			item.CartID = int(cart.ID)
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CartRepository) SaveShippingAddress(cartID int, address models.ShippingAddress) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).
		Updates(map[string]any{
			"ship_address":     address.Address,
			"ship_city":        address.City,
			"ship_postal_code": address.PostalCode,
			"ship_country":     address.Country,
		}).Error
}

func (r *CartRepository) SavePaymentMethod(cartID int, method string) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("payment_method", method).Error
}

// Clear wipes the cart after a successful order placement: items go, and
// the saved address and method reset so the next checkout starts fresh.
func (r *CartRepository) Clear(cartID int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cartID).
			Updates(map[string]any{
				"ship_address":     "",
				"ship_city":        "",
				"ship_postal_code": "",
				"ship_country":     "",
				"payment_method":   "",
			}).Error
	})
}
