package services

import (
	"testing"

	"github.com/borgestech/storefront-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func product(id uint, stock int) models.Product {
	return models.Product{
		Model:        gorm.Model{ID: id},
		Name:         "Wireless Headphones",
		Price:        decimal.RequireFromString("89.99"),
		CountInStock: stock,
	}
}

func TestAddItem_AppendsNewProduct(t *testing.T) {
	cart, err := AddItem(models.Cart{}, product(1, 10), 2)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, "89.99", cart.Items[0].Price.StringFixed(2))
}

func TestAddItem_ReplacesQuantityForExistingProduct(t *testing.T) {
	cart, err := AddItem(models.Cart{}, product(1, 10), 2)
	require.NoError(t, err)

	cart, err = AddItem(cart, product(1, 10), 3)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Qty, "re-adding must replace the quantity, not add to it")
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	cart, err := AddItem(models.Cart{}, product(1, 10), 1)
	require.NoError(t, err)
	cart, err = AddItem(cart, product(2, 10), 1)
	require.NoError(t, err)

	cart, err = AddItem(cart, product(1, 10), 5)

	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[1].ProductID)
}

func TestAddItem_RejectsOutOfRangeQuantity(t *testing.T) {
	_, err := AddItem(models.Cart{}, product(1, 3), 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = AddItem(models.Cart{}, product(1, 3), 4)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = AddItem(models.Cart{}, product(1, 3), 3)
	assert.NoError(t, err)
}

func TestRemoveItem_IsIdempotent(t *testing.T) {
	cart, err := AddItem(models.Cart{}, product(1, 10), 2)
	require.NoError(t, err)

	cart = RemoveItem(cart, 1)
	assert.Empty(t, cart.Items)

	cart = RemoveItem(cart, 1)
	assert.Empty(t, cart.Items)

	cart = RemoveItem(cart, 42)
	assert.Empty(t, cart.Items)
}

func TestItemCountAndIsEmpty(t *testing.T) {
	cart := models.Cart{}
	assert.True(t, IsEmpty(cart))
	assert.Equal(t, 0, ItemCount(cart))

	cart, err := AddItem(cart, product(1, 10), 2)
	require.NoError(t, err)
	cart, err = AddItem(cart, product(2, 10), 3)
	require.NoError(t, err)

	assert.False(t, IsEmpty(cart))
	assert.Equal(t, 5, ItemCount(cart))
}
