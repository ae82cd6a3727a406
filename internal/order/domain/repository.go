package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// OrderWithCustomer is a listing row carrying the denormalized
// customer name.
type OrderWithCustomer struct {
	Order
	CustomerName string `json:"-"`
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Order, error)
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]OrderWithCustomer, error)
	Update(ctx context.Context, db *gorm.DB, order *Order) error
	Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (int64, error)
}
