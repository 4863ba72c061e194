package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/service"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
	"github.com/harborlane/storefront-api/pkg/response"
)

// AuthHandler exposes the admin login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Exchange the admin credential for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credential"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload"))
		return
	}

	token, expiresAt, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
