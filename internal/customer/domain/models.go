package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID   snowflake.ID `gorm:"not null;index" json:"-"`
	Name      string       `gorm:"not null" json:"name"`
	Phone     string       `gorm:"type:text" json:"phone,omitempty"`
	Address   string       `gorm:"type:text" json:"address,omitempty"`
	Status    Status       `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
