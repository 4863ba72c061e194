package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/harborlane/storefront-api/internal/models"
	"github.com/harborlane/storefront-api/pkg/config"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
)

// AuthService issues and validates admin bearer tokens. There is a single
// admin credential, configured as email plus bcrypt hash.
type AuthService struct {
	admin  config.AdminConfig
	jwtCfg config.JWTConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewAuthService instantiates AuthService.
func NewAuthService(admin config.AdminConfig, jwtCfg config.JWTConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{admin: admin, jwtCfg: jwtCfg, logger: logger, now: time.Now}
}

// Login checks the credential and returns a signed token with its expiry.
func (s *AuthService) Login(email, password string) (string, time.Time, error) {
	if email != s.admin.Email {
		return "", time.Time{}, appErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, appErrors.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.jwtCfg.Expiration)
	claims := models.JWTClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}
	return token, expiresAt, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func (s *AuthService) ValidateToken(raw string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}
