package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO customers (id, owner_id, name, phone, address, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		customer.ID,
		customer.OwnerID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.Status,
		customer.CreatedAt,
		customer.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, name, phone, address, status, created_at, updated_at
		 FROM customers WHERE owner_id = ? AND id = ?`,
		ownerID,
		id,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("owner_id = ?", ownerID).
		Order("created_at desc, id desc").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("owner_id = ? AND id = ?", customer.OwnerID, customer.ID).
		Updates(map[string]any{
			"name":       customer.Name,
			"phone":      customer.Phone,
			"address":    customer.Address,
			"status":     customer.Status,
			"updated_at": customer.UpdatedAt,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (int64, error) {
	result := db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&domain.Customer{})
	return result.RowsAffected, result.Error
}
