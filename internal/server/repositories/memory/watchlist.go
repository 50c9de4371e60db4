package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/finbuddy/finbuddy/internal/server/models"
)

// WatchlistRepo keeps watchlist items in memory, lists them newest first,
// and enforces the per-user (symbol, type) uniqueness constraint.
type WatchlistRepo struct {
	mu    sync.Mutex
	Items []*models.WatchlistItem
	Err   error
}

func matchesItem(it *models.WatchlistItem, userID, assetType string) bool {
	return it.UserID == userID && (assetType == "" || it.Type == assetType)
}

func (r *WatchlistRepo) List(_ context.Context, userID, assetType string, offset, limit int) ([]*models.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var all []*models.WatchlistItem
	for _, it := range r.Items {
		if matchesItem(it, userID, assetType) {
			all = append(all, it)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *WatchlistRepo) Count(_ context.Context, userID, assetType string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	n := 0
	for _, it := range r.Items {
		if matchesItem(it, userID, assetType) {
			n++
		}
	}
	return n, nil
}

func (r *WatchlistRepo) Create(_ context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, it := range r.Items {
		if it.UserID == item.UserID && it.Symbol == item.Symbol && it.Type == item.Type {
			return nil, common.ErrorAlreadyExists
		}
	}
	it := *item
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt
	r.Items = append(r.Items, &it)
	return &it, nil
}

func (r *WatchlistRepo) GetByID(_ context.Context, id, userID string) (*models.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, it := range r.Items {
		if it.ID == id && it.UserID == userID {
			return it, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *WatchlistRepo) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, it := range r.Items {
		if it.ID == id && it.UserID == userID {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
