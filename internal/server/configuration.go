package server

import (
	"net/http"
	"strings"

	authdomain "github.com/dukaankhata/dukaankhata/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

type configurationAssets struct {
	CompanyLogo    string `json:"company_logo"`
	SignatureImage string `json:"signature_image"`
}

type updateConfigurationAssetsRequest struct {
	CompanyLogo    *string `json:"company_logo"`
	SignatureImage *string `json:"signature_image"`
}

func (s *Server) GetConfigurationAssets(c *gin.Context) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	user, err := s.authsvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": configurationAssets{
		CompanyLogo:    user.CompanyLogo,
		SignatureImage: user.SignatureImage,
	}})
}

func (s *Server) UpdateConfigurationAssets(c *gin.Context) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req updateConfigurationAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.CompanyLogo == nil && req.SignatureImage == nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if !validAssetValue(req.CompanyLogo) {
		AbortWithError(c, newValidationError("company_logo", "invalid_asset", "must be an image data URL"))
		return
	}
	if !validAssetValue(req.SignatureImage) {
		AbortWithError(c, newValidationError("signature_image", "invalid_asset", "must be an image data URL"))
		return
	}

	user, err := s.authsvc.UpdateAssets(c.Request.Context(), authdomain.UpdateAssetsRequest{
		UserID:         userID,
		CompanyLogo:    req.CompanyLogo,
		SignatureImage: req.SignatureImage,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": configurationAssets{
		CompanyLogo:    user.CompanyLogo,
		SignatureImage: user.SignatureImage,
	}})
}

// Empty string clears the asset; anything else must look like an
// image data URL.
func validAssetValue(value *string) bool {
	if value == nil {
		return true
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return true
	}
	return strings.HasPrefix(trimmed, "data:image/")
}
