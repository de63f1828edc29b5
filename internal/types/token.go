package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token types embedded in the token_type claim. Refresh tokens are only
// accepted by the refresh endpoint, access tokens everywhere else.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims represents the claims carried by issued JWTs.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
}

// TokenPair is the response of the token obtain endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
