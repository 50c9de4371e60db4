// Package models defines the server-side domain entities persisted in
// PostgreSQL.
package models

import "time"

// User is an account holder. Email is unique case-insensitively; the
// password hash is opaque bcrypt output and is never transmitted or logged.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
