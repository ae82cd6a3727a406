package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/dukaankhata/dukaankhata/internal/auth/domain"
	"github.com/dukaankhata/dukaankhata/internal/auth/repository"
	"github.com/dukaankhata/dukaankhata/internal/config"
	"github.com/dukaankhata/dukaankhata/pkg/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingMailer struct {
	mu     sync.Mutex
	sent   int
	lastTo string
	body   string
}

func (m *recordingMailer) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent++
	if len(to) > 0 {
		m.lastTo = to[0]
	}
	m.body = htmlBody
	return nil
}

func newTestService(t *testing.T) (authdomain.Service, *recordingMailer) {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&authdomain.User{}, &authdomain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	mailer := &recordingMailer{}
	svc := New(Params{
		Config: config.Config{
			AppURL:           "http://localhost:3000",
			ResetTokenSecret: "test-secret",
		},
		DB:          dbConn,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        repository.ProvideUserRepository(),
		SessionRepo: repository.ProvideSessionRepository(),
		Mailer:      mailer,
	})
	return svc, mailer
}

func signup(t *testing.T, svc authdomain.Service, email string) *authdomain.User {
	t.Helper()
	user, err := svc.Signup(context.Background(), authdomain.SignupRequest{
		Email:       email,
		Password:    "correct-password",
		DisplayName: "Alice",
		CompanyName: "Alice Traders",
	})
	require.NoError(t, err)
	return user
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc, "alice@example.com")

	_, err := svc.Signup(context.Background(), authdomain.SignupRequest{
		Email:    "Alice@Example.com",
		Password: "another-password",
	})
	require.ErrorIs(t, err, authdomain.ErrUserExists)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), authdomain.SignupRequest{
		Email:    "bob@example.com",
		Password: "short",
	})
	require.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc, "alice@example.com")

	_, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	user := signup(t, svc, "alice@example.com")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.RawToken)
	require.Equal(t, user.ID, result.User.ID)

	session, err := svc.Authenticate(context.Background(), result.RawToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, session.UserID)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc, "alice@example.com")

	result, err := svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.RawToken))

	_, err = svc.Authenticate(context.Background(), result.RawToken)
	require.ErrorIs(t, err, authdomain.ErrSessionRevoked)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	svc, _ := newTestService(t)
	user := signup(t, svc, "alice@example.com")

	err := svc.ChangePassword(context.Background(), authdomain.ChangePasswordRequest{
		UserID:          user.ID,
		CurrentPassword: "wrong-password",
		NewPassword:     "brand-new-password",
	})
	require.ErrorIs(t, err, authdomain.ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), authdomain.ChangePasswordRequest{
		UserID:          user.ID,
		CurrentPassword: "correct-password",
		NewPassword:     "brand-new-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "brand-new-password",
	})
	require.NoError(t, err)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, mailer := newTestService(t)

	require.NoError(t, svc.ForgotPassword(context.Background(), "nobody@example.com"))
	require.Equal(t, 0, mailer.sent)
}

func TestForgotThenResetPassword(t *testing.T) {
	svc, mailer := newTestService(t)
	signup(t, svc, "alice@example.com")

	require.NoError(t, svc.ForgotPassword(context.Background(), "alice@example.com"))
	require.Equal(t, 1, mailer.sent)
	require.Equal(t, "alice@example.com", mailer.lastTo)
	require.Contains(t, mailer.body, "http://localhost:3000/reset-password?token=")

	token := extractToken(t, mailer.body)

	email, err := svc.VerifyResetToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)

	err = svc.ResetPassword(context.Background(), authdomain.ResetPasswordRequest{
		Token:       token,
		NewPassword: "password-after-reset",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), authdomain.LoginRequest{
		Email:    "alice@example.com",
		Password: "password-after-reset",
	})
	require.NoError(t, err)
}

func TestResetPasswordRejectsBadToken(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc, "alice@example.com")

	err := svc.ResetPassword(context.Background(), authdomain.ResetPasswordRequest{
		Token:       "bogus",
		NewPassword: "password-after-reset",
	})
	require.ErrorIs(t, err, authdomain.ErrInvalidResetToken)
}

func TestUpdateAssets(t *testing.T) {
	svc, _ := newTestService(t)
	user := signup(t, svc, "alice@example.com")

	logo := "data:image/png;base64,aGVsbG8="
	updated, err := svc.UpdateAssets(context.Background(), authdomain.UpdateAssetsRequest{
		UserID:      user.ID,
		CompanyLogo: &logo,
	})
	require.NoError(t, err)
	require.Equal(t, logo, updated.CompanyLogo)
	require.Empty(t, updated.SignatureImage)
}

func extractToken(t *testing.T, body string) string {
	t.Helper()
	const marker = "reset-password?token="
	start := strings.Index(body, marker)
	require.GreaterOrEqual(t, start, 0)
	rest := body[start+len(marker):]
	end := strings.Index(rest, `"`)
	require.GreaterOrEqual(t, end, 0)
	return rest[:end]
}
