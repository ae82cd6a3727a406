package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PaymentMethod is a global lookup entry; it is not owner-scoped.
type PaymentMethod struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
