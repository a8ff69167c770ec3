package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akarpov/tasklist/internal/config"
)

// ErrInvalidToken covers every token rejection: bad signature, malformed
// encoding, expired, or missing subject.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed token payload: the username as subject plus the
// registered expiry claim.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies HS256-signed access tokens. The secret
// and TTL are fixed at construction; there is no rotation.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer from the auth configuration.
func NewTokenIssuer(cfg config.Auth) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue creates a signed token for the given subject, expiring after the
// configured TTL.
func (ti *TokenIssuer) Issue(subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ti.ttl)),
		},
	})

	return token.SignedString(ti.secret)
}

// Verify parses and validates a token string, returning the subject.
// Only HS256 is accepted; anything else fails verification.
func (ti *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
