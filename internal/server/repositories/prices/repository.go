// Package prices reads ingested quotes. Ingestion itself happens outside
// this service; only the read path lives here.
package prices

import (
	"context"

	"github.com/finbuddy/finbuddy/internal/server/models"
)

type Repository interface {
	// GetLatest returns the most recent quote for (symbol, assetType), or
	// common.ErrorNotFound when nothing has been ingested yet.
	GetLatest(ctx context.Context, symbol, assetType string) (*models.PricePoint, error)
}
