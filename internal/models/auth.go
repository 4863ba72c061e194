package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims carries the authenticated admin identity.
type JWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
