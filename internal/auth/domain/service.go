package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type SignupRequest struct {
	Email       string
	Password    string
	DisplayName string
	CompanyName string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	User      *User
	RawToken  string
	ExpiresAt time.Time
	SessionID snowflake.ID
}

type ChangePasswordRequest struct {
	UserID          snowflake.ID
	CurrentPassword string
	NewPassword     string
}

type ResetPasswordRequest struct {
	Token       string
	NewPassword string
}

type UpdateAssetsRequest struct {
	UserID         snowflake.ID
	CompanyLogo    *string
	SignatureImage *string
}

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*Session, error)
	GetUser(ctx context.Context, id snowflake.ID) (*User, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetToken(ctx context.Context, token string) (string, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	UpdateAssets(ctx context.Context, req UpdateAssetsRequest) (*User, error)
}
