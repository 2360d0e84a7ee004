package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/blog-posts-api/internal/config"
	"github.com/blog-posts-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator issues and verifies the signed tokens that carry a
// caller's identity between requests
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator creates an Authenticator from auth configuration
func NewAuthenticator(cfg *config.AuthConfig) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

type tokenClaims struct {
	Staff bool `json:"staff"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for the given user
func (a *Authenticator) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Staff: user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token string and reconstructs the Caller it represents
func (a *Authenticator) Parse(tokenString string) (Caller, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (interface{}, error) {
			return a.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Anonymous(), fmt.Errorf("invalid token: %w", err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Anonymous(), fmt.Errorf("invalid token subject: %w", err)
	}

	return Caller{
		ID:              id,
		IsAuthenticated: true,
		IsStaff:         claims.Staff,
	}, nil
}
