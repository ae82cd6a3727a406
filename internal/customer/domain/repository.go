package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]Customer, error)
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (int64, error)
}
