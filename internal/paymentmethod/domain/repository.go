package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, method *PaymentMethod) error
	FindByName(ctx context.Context, db *gorm.DB, name string) (*PaymentMethod, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PaymentMethod, error)
	List(ctx context.Context, db *gorm.DB) ([]PaymentMethod, error)
}
