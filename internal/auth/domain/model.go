// Package domain contains core types for the auth service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// User represents a shop-owner account. Every scoped record in the
// system carries this account's id as its owner.
type User struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	Email          string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash   string       `gorm:"column:password_hash;type:text;not null" json:"-"`
	DisplayName    string       `gorm:"column:display_name;type:text" json:"display_name"`
	CompanyName    string       `gorm:"column:company_name;type:text" json:"company_name"`
	CompanyLogo    string       `gorm:"column:company_logo;type:text" json:"company_logo,omitempty"`
	SignatureImage string       `gorm:"column:signature_image;type:text" json:"signature_image,omitempty"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// Session represents a persisted login session.
type Session struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	UserID    snowflake.ID `gorm:"column:user_id;not null;index"`
	TokenHash string       `gorm:"column:token_hash;type:text;not null;uniqueIndex"`
	ExpiresAt time.Time    `gorm:"column:expires_at;not null;index"`
	RevokedAt *time.Time   `gorm:"column:revoked_at"`
	CreatedAt time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }
