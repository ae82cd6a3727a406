package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// Insert goes through the model path so the JSON serializer handles
// the embedded items, charges and payment columns.
func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Create(order).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*domain.Order, error) {
	var order domain.Order
	err := db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]domain.OrderWithCustomer, error) {
	var rows []domain.OrderWithCustomer
	err := db.WithContext(ctx).
		Table("orders").
		Select("orders.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Where("orders.owner_id = ?", ownerID).
		Order("orders.created_at desc, orders.id desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("owner_id = ? AND id = ?", order.OwnerID, order.ID).
		Updates(map[string]any{
			"invoice_no": order.InvoiceNo,
			"due_date":   order.DueDate,
			"total":      order.Total,
			"status":     order.Status,
			"updated_at": order.UpdatedAt,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (int64, error) {
	result := db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&domain.Order{})
	return result.RowsAffected, result.Error
}
