package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, user *User) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*User, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, db *gorm.DB, session *Session) error
	FindByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*Session, error)
	RevokeSession(ctx context.Context, db *gorm.DB, sessionID snowflake.ID, revokedAt time.Time) error
}
