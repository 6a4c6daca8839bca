package services

import (
	"fmt"

	"github.com/borgestech/storefront-api/models"
)

// AddItem puts a product into the cart with the given quantity. If the
// product is already in the cart its quantity is replaced, not added to,
// matching how the cart screen resubmits the full quantity on change.
// Returns the updated cart without touching the original.
func AddItem(cart models.Cart, product models.Product, qty int) (models.Cart, error) {
	if qty < 1 {
		return cart, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if qty > product.CountInStock {
		return cart, fmt.Errorf("%w: only %d of %q in stock", ErrValidation, product.CountInStock, product.Name)
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0].Url
	}

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	replaced := false
	for i := range items {
		if items[i].ProductID == int(product.ID) {
			items[i].Qty = qty
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, models.CartItem{
			CartID:       int(cart.ID),
			ProductID:    int(product.ID),
			Name:         product.Name,
			Image:        image,
			Price:        product.Price,
			CountInStock: product.CountInStock,
			Qty:          qty,
		})
	}

	cart.Items = items
	return cart, nil
}

// RemoveItem filters the product out of the cart. Removing a product that
// is not in the cart is a no-op.
func RemoveItem(cart models.Cart, productID int) models.Cart {
	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items
	return cart
}

func ItemCount(cart models.Cart) int {
	count := 0
	for _, item := range cart.Items {
		count += item.Qty
	}
	return count
}

func IsEmpty(cart models.Cart) bool {
	return len(cart.Items) == 0
}
