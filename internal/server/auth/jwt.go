package auth

import (
	"errors"
	"time"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind discriminates access tokens from refresh tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims carries the standard registered claims plus the token-type tag and
// an optional display email. Access tokens have no type tag; refresh tokens
// are explicitly tagged "refresh" so an access token cannot be replayed at
// the refresh endpoint. Email is display convenience only and must never
// drive authorization decisions.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Kind returns the token kind asserted by the claims.
func (c *Claims) Kind() TokenKind {
	if c.TokenType == string(TokenKindRefresh) {
		return TokenKindRefresh
	}
	return TokenKindAccess
}

// TokenCodec encodes and decodes signed, expiring identity tokens (HS256).
// The secret is loaded once at startup and never logged.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret, now: time.Now}
}

// Issue produces a signed token asserting subject for ttl. Refresh tokens
// get the "refresh" type tag; email rides along on access tokens only.
func (c *TokenCodec) Issue(subject string, kind TokenKind, ttl time.Duration, email string) (string, error) {
	now := c.now().Truncate(time.Second)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if kind == TokenKindRefresh {
		claims.TokenType = string(TokenKindRefresh)
	} else if email != "" {
		claims.Email = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the claims. Exactly one
// of the common token sentinels comes back on failure:
// ErrTokenMalformed, ErrTokenSignature, ErrTokenExpired, or ErrInvalidToken.
// A token is invalid exactly at its expiry instant.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenSignature
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrInvalidToken
		}
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, common.ErrTokenMalformed
	}
	// jwt/v5 treats the exact expiry instant as still valid; our contract
	// does not.
	if !c.now().Before(claims.ExpiresAt.Time) {
		return nil, common.ErrTokenExpired
	}

	return claims, nil
}
