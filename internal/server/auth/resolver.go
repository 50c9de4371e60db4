package auth

import (
	"strings"

	"github.com/finbuddy/finbuddy/internal/common"
)

const bearerScheme = "Bearer "

// ResolveIdentity turns a raw Authorization header value into the subject id
// the token asserts. Every protected operation passes through here. All
// failure modes, including a refresh token presented in place of an access
// token, collapse to ErrorUnauthorized so the boundary never reveals which
// check failed. No store lookup happens: a user deleted after issuance stays
// resolvable until the token expires.
func (c *TokenCodec) ResolveIdentity(header string) (string, error) {
	tokenString, ok := strings.CutPrefix(header, bearerScheme)
	if !ok || tokenString == "" {
		return "", common.ErrorUnauthorized
	}

	claims, err := c.Decode(tokenString)
	if err != nil {
		return "", common.ErrorUnauthorized
	}
	if claims.Kind() != TokenKindAccess {
		return "", common.ErrorUnauthorized
	}

	return claims.Subject, nil
}
