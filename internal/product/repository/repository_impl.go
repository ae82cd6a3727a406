package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, owner_id, name, description, price, stock, category, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.OwnerID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Category,
		product.CreatedAt,
		product.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, name, description, price, stock, category, created_at, updated_at
		 FROM products WHERE owner_id = ? AND id = ?`,
		ownerID,
		id,
	).Scan(&product).Error
	if err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, nil
	}
	return &product, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]domain.Product, error) {
	var products []domain.Product
	err := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("owner_id = ?", ownerID).
		Order("created_at desc, id desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("owner_id = ? AND id = ?", product.OwnerID, product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
			"category":    product.Category,
			"updated_at":  product.UpdatedAt,
		}).Error
}
