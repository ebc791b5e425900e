package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of access-token claims this service relies on.
// Tokens are issued by the external identity provider.
type Claims struct {
	Roles []string `json:"roles"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens presented to the admin API.
type TokenService interface {
	// ValidateToken checks signature and expiry and returns the parsed claims.
	ValidateToken(tokenString string) (*Claims, error)
}
