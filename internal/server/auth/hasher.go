// Package auth implements the authentication primitives of the server:
// bcrypt password hashing, JWT issuance and verification, and the
// bearer-header identity resolution every protected endpoint goes through.
package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor used when none is configured.
// Cost 12 keeps hashing slow enough to resist brute force without making
// login noticeably laggy.
const DefaultBcryptCost = 12

// PasswordHasher performs one-way salted hashing of plaintext passwords.
// bcrypt embeds the salt in its output, so verification needs no separate
// storage.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
// A non-positive cost selects DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches hash. Any internal error,
// including a malformed hash, is reported as a mismatch so callers cannot
// distinguish "bad hash" from "wrong password".
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
