package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	OwnerID     snowflake.ID    `gorm:"not null;index" json:"-"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Category    string          `gorm:"type:text" json:"category,omitempty"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
