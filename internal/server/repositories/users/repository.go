// Package users persists account records. The store, not the application,
// is the authority on email uniqueness.
package users

import (
	"context"

	"github.com/finbuddy/finbuddy/internal/server/models"
)

type Repository interface {
	// Create inserts the user. A duplicate email (case-insensitive) yields
	// common.ErrorAlreadyExists even when two inserts race.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
