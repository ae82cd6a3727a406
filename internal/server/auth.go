package server

import (
	"net/http"
	"strings"

	authdomain "github.com/dukaankhata/dukaankhata/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	CompanyName string `json:"company_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (s *Server) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		AbortWithError(c, newValidationError("email", "required", "email is required"))
		return
	}
	if len(strings.TrimSpace(req.Password)) < 8 {
		AbortWithError(c, newValidationError("password", "weak_password", "password must be at least 8 characters"))
		return
	}

	user, err := s.authsvc.Signup(c.Request.Context(), authdomain.SignupRequest{
		Email:       email,
		Password:    req.Password,
		DisplayName: strings.TrimSpace(req.DisplayName),
		CompanyName: strings.TrimSpace(req.CompanyName),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": user})
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)

	c.JSON(http.StatusOK, gin.H{"data": result.User})
}

func (s *Server) Logout(c *gin.Context) {
	token, ok := s.sessions.ReadToken(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.authsvc.Logout(c.Request.Context(), token); err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}

func (s *Server) Me(c *gin.Context) {
	token, ok := s.sessions.ReadToken(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	session, err := s.authsvc.Authenticate(c.Request.Context(), token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	user, err := s.authsvc.GetUser(c.Request.Context(), session.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (s *Server) ChangePassword(c *gin.Context) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	currentPassword := strings.TrimSpace(req.CurrentPassword)
	newPassword := strings.TrimSpace(req.NewPassword)
	if currentPassword == "" {
		AbortWithError(c, newValidationError("current_password", "required", "current password is required"))
		return
	}
	if newPassword == "" {
		AbortWithError(c, newValidationError("new_password", "required", "new password is required"))
		return
	}
	if currentPassword == newPassword {
		AbortWithError(c, newValidationError("new_password", "must_differ", "new password must be different"))
		return
	}
	if len(newPassword) < 8 {
		AbortWithError(c, newValidationError("new_password", "weak_password", "password must be at least 8 characters"))
		return
	}

	err := s.authsvc.ChangePassword(c.Request.Context(), authdomain.ChangePasswordRequest{
		UserID:          userID,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ForgotPassword always answers 202; account existence must not be
// observable from the response.
func (s *Server) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.authsvc.ForgotPassword(c.Request.Context(), strings.TrimSpace(req.Email)); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "ok"})
}

func (s *Server) VerifyResetToken(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		AbortWithError(c, newValidationError("token", "required", "token is required"))
		return
	}

	email, err := s.authsvc.VerifyResetToken(c.Request.Context(), token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"email": email}})
}

func (s *Server) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if len(strings.TrimSpace(req.NewPassword)) < 8 {
		AbortWithError(c, newValidationError("new_password", "weak_password", "password must be at least 8 characters"))
		return
	}

	err := s.authsvc.ResetPassword(c.Request.Context(), authdomain.ResetPasswordRequest{
		Token:       strings.TrimSpace(req.Token),
		NewPassword: req.NewPassword,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
