package memory

import (
	"context"
	"sync"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/finbuddy/finbuddy/internal/server/models"
)

// PricesRepo keeps ingested quotes; GetLatest scans for the newest
// FetchedAt per (symbol, type).
type PricesRepo struct {
	mu    sync.Mutex
	Items []*models.PricePoint
	Err   error
}

func (r *PricesRepo) GetLatest(_ context.Context, symbol, assetType string) (*models.PricePoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var latest *models.PricePoint
	for _, p := range r.Items {
		if p.Symbol != symbol || p.Type != assetType {
			continue
		}
		if latest == nil || p.FetchedAt.After(latest.FetchedAt) {
			latest = p
		}
	}
	if latest == nil {
		return nil, common.ErrorNotFound
	}
	return latest, nil
}
