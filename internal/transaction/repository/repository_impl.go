package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/transaction/domain"
	"github.com/dukaankhata/dukaankhata/pkg/db/pagination"
	"gorm.io/gorm"
)

// Columns exposed to the sortColumn query parameter. Anything else
// falls back to created_at.
var sortableColumns = map[string]bool{
	"created_at":   true,
	"amount":       true,
	"type":         true,
	"category":     true,
	"status":       true,
	"payment_date": true,
}

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, transaction *domain.Transaction) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO transactions (id, owner_id, order_id, payment_method_id, amount, type, category, status, description, payment_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		transaction.ID,
		transaction.OwnerID,
		transaction.OrderID,
		transaction.PaymentMethodID,
		transaction.Amount,
		transaction.Type,
		transaction.Category,
		transaction.Status,
		transaction.Description,
		transaction.PaymentDate,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Limit(1).
		Find(&transaction).Error
	if err != nil {
		return nil, err
	}
	if transaction.ID == 0 {
		return nil, nil
	}
	return &transaction, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, page pagination.Pagination, sort pagination.Sort) ([]domain.Transaction, int64, error) {
	page = page.Normalize()

	base := db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("owner_id = ?", ownerID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []domain.Transaction
	err := base.
		Order(sort.OrderBy(sortableColumns, "created_at")).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func (r *repo) ListCompleted(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	err := db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("owner_id = ? AND status = ?", ownerID, domain.StatusCompleted).
		Order("created_at asc, id asc").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, transaction *domain.Transaction) error {
	return db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("owner_id = ? AND id = ?", transaction.OwnerID, transaction.ID).
		Updates(map[string]any{
			"amount":       transaction.Amount,
			"type":         transaction.Type,
			"category":     transaction.Category,
			"status":       transaction.Status,
			"description":  transaction.Description,
			"payment_date": transaction.PaymentDate,
			"updated_at":   transaction.UpdatedAt,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (int64, error) {
	result := db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&domain.Transaction{})
	return result.RowsAffected, result.Error
}
