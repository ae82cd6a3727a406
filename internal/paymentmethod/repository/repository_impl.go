package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/paymentmethod/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, method *domain.PaymentMethod) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO payment_methods (id, name, created_at)
		 VALUES (?, ?, ?)`,
		method.ID,
		method.Name,
		method.CreatedAt,
	).Error
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, created_at FROM payment_methods WHERE name = ?`,
		strings.TrimSpace(name),
	).Scan(&method).Error
	if err != nil {
		return nil, err
	}
	if method.ID == 0 {
		return nil, nil
	}
	return &method, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, created_at FROM payment_methods WHERE id = ?`,
		id,
	).Scan(&method).Error
	if err != nil {
		return nil, err
	}
	if method.ID == 0 {
		return nil, nil
	}
	return &method, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod
	err := db.WithContext(ctx).
		Model(&domain.PaymentMethod{}).
		Order("name asc").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}
