package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/auth/domain"
	"github.com/dukaankhata/dukaankhata/internal/auth/password"
	"github.com/dukaankhata/dukaankhata/internal/auth/resettoken"
	"github.com/dukaankhata/dukaankhata/internal/config"
	"github.com/dukaankhata/dukaankhata/internal/providers/email"
	"github.com/dukaankhata/dukaankhata/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sessionTokenBytes = 32
	sessionTTL        = 7 * 24 * time.Hour

	minPasswordLength = 8
)

type Params struct {
	fx.In

	Config      config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	SessionRepo domain.SessionRepository
	Mailer      email.Provider
}

type Service struct {
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	sessionRepo domain.SessionRepository
	mailer      email.Provider
	resetTokens *resettoken.Issuer
}

func New(p Params) domain.Service {
	return &Service{
		cfg:         p.Config,
		db:          p.DB,
		log:         p.Log.Named("auth.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		sessionRepo: p.SessionRepo,
		mailer:      p.Mailer,
		resetTokens: resettoken.NewIssuer(p.Config.ResetTokenSecret),
	}
}

func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	addr, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, s.db, addr); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = defaultDisplayName(addr)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           s.genID.Generate(),
		Email:        addr,
		PasswordHash: hashed,
		DisplayName:  displayName,
		CompanyName:  strings.TrimSpace(req.CompanyName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, s.db, user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	addr, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, s.db, addr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	rawToken, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        s.genID.Generate(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessionRepo.CreateSession(ctx, s.db, session); err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		User:      user,
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
		SessionID: session.ID,
	}, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return domain.ErrInvalidSession
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.ErrInvalidSession
		}
		return err
	}

	return s.sessionRepo.RevokeSession(ctx, s.db, session.ID, time.Now().UTC())
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.Session, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}

	if session.RevokedAt != nil {
		return nil, domain.ErrSessionRevoked
	}
	if time.Now().UTC().After(session.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

func (s *Service) GetUser(ctx context.Context, id snowflake.ID) (*domain.User, error) {
	return s.repo.FindByID(ctx, s.db, id)
}

func (s *Service) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	if len(strings.TrimSpace(req.NewPassword)) < minPasswordLength {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, s.db, req.UserID)
	if err != nil {
		return err
	}

	if !password.Verify(req.CurrentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdateFields(ctx, s.db, user.ID, map[string]any{
		"password_hash": hashed,
		"updated_at":    time.Now().UTC(),
	})
}

// ForgotPassword always reports success to the caller; whether the
// account exists must not be observable from the response.
func (s *Service) ForgotPassword(ctx context.Context, rawEmail string) error {
	addr, err := normalizeEmail(rawEmail)
	if err != nil {
		return nil
	}

	user, err := s.repo.FindByEmail(ctx, s.db, addr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token := s.resetTokens.Generate(user.Email, time.Now().UTC())
	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.AppURL, token)
	body := fmt.Sprintf(
		`<p>Hello %s,</p>
<p>We received a request to reset your password. The link below is valid for 15 minutes:</p>
<p><a href="%s">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>`,
		user.DisplayName, link,
	)

	if err := s.mailer.Send(ctx, []string{user.Email}, "Reset your password", body); err != nil {
		s.log.Error("failed to send reset email", zap.Error(err))
		return err
	}

	return nil
}

func (s *Service) VerifyResetToken(ctx context.Context, token string) (string, error) {
	addr, err := s.resetTokens.Verify(token, time.Now().UTC())
	if err != nil {
		return "", domain.ErrInvalidResetToken
	}
	if _, err := s.repo.FindByEmail(ctx, s.db, addr); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidResetToken
		}
		return "", err
	}
	return addr, nil
}

func (s *Service) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	addr, err := s.resetTokens.Verify(req.Token, time.Now().UTC())
	if err != nil {
		return domain.ErrInvalidResetToken
	}
	if len(strings.TrimSpace(req.NewPassword)) < minPasswordLength {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, s.db, addr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdateFields(ctx, s.db, user.ID, map[string]any{
		"password_hash": hashed,
		"updated_at":    time.Now().UTC(),
	})
}

func (s *Service) UpdateAssets(ctx context.Context, req domain.UpdateAssetsRequest) (*domain.User, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if req.CompanyLogo != nil {
		fields["company_logo"] = *req.CompanyLogo
	}
	if req.SignatureImage != nil {
		fields["signature_image"] = *req.SignatureImage
	}

	if err := s.repo.UpdateFields(ctx, s.db, req.UserID, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, s.db, req.UserID)
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(addr.Address)), nil
}

func defaultDisplayName(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) != "" {
		return strings.TrimSpace(parts[0])
	}
	return email
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
