package repositories

import (
	"time"

	"github.com/borgestech/storefront-api/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(order *models.Order) error {
	tx := r.db.Begin()
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	items := order.OrderItems
	order.OrderItems = nil
	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}

	for i := range items {
		items[i].OrderID = int(order.ID)
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	order.OrderItems = items

	return tx.Commit().Error
}

func (r *OrderRepository) GetByID(id int) (models.Order, error) {
	var order models.Order
	result := r.db.Preload("OrderItems").First(&order, id)
	return order, result.Error
}

// MarkPaid flips the paid flag only while it is still unset. The state
// guard lives in the WHERE clause so the database serializes concurrent
// captures; the boolean tells the caller whether this call won.
func (r *OrderRepository) MarkPaid(orderID int, paidAt time.Time, paymentRef string) (bool, error) {
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND is_paid = ?", orderID, false).
		Updates(map[string]any{
			"is_paid":     true,
			"paid_at":     paidAt,
			"payment_ref": paymentRef,
		})
	return result.RowsAffected > 0, result.Error
}

// MarkDelivered transitions only orders that are paid and not yet delivered.
func (r *OrderRepository) MarkDelivered(orderID int, deliveredAt time.Time) (bool, error) {
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND is_paid = ? AND is_delivered = ?", orderID, true, false).
		Updates(map[string]any{
			"is_delivered": true,
			"delivered_at": deliveredAt,
		})
	return result.RowsAffected > 0, result.Error
}

func (r *OrderRepository) ListByUser(userID int, sortOrder string) ([]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at " + sortOrder).
		Find(&orders)
	return orders, result.Error
}

func (r *OrderRepository) List(limit, offset int, sortOrder string) ([]models.Order, int64, error) {
	var orders []models.Order
	result := r.db.Preload("OrderItems").
		Order("created_at " + sortOrder).
		Limit(limit).Offset(offset).
		Find(&orders)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

func (r *OrderRepository) CountUndelivered() (int64, error) {
	var count int64
	result := r.db.Model(&models.Order{}).
		Where("is_delivered = ?", false).
		Count(&count)
	return count, result.Error
}
