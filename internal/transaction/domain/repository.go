package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, transaction *Transaction) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Transaction, error)
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, page pagination.Pagination, sort pagination.Sort) ([]Transaction, int64, error)
	ListCompleted(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]Transaction, error)
	Update(ctx context.Context, db *gorm.DB, transaction *Transaction) error
	Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (int64, error)
}
