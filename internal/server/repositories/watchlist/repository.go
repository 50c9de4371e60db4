// Package watchlist persists tracked stocks and funds, always scoped to the
// owning user.
package watchlist

import (
	"context"

	"github.com/finbuddy/finbuddy/internal/server/models"
)

type Repository interface {
	// List returns a page of the user's items, newest first. An empty
	// assetType means no type filter.
	List(ctx context.Context, userID, assetType string, offset, limit int) ([]*models.WatchlistItem, error)
	Count(ctx context.Context, userID, assetType string) (int, error)
	// Create inserts the item. A duplicate (user, symbol, type) yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error)
	GetByID(ctx context.Context, id, userID string) (*models.WatchlistItem, error)
	Delete(ctx context.Context, id, userID string) error
}
