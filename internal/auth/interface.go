package auth

import "github.com/golang-jwt/jwt/v5"

// Claims carried by SwiftDoc access tokens. Subject is the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates bearer tokens and extracts their claims.
type TokenVerifier interface {
	// VerifyToken validates a JWT and returns its claims.
	// Returns domain.ErrUnauthorized for any invalid, expired or
	// wrongly-signed token.
	VerifyToken(tokenString string) (*Claims, error)

	// Close releases resources held by the verifier.
	Close() error
}
