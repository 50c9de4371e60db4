package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/finbuddy/finbuddy/internal/server/models"
)

// AnalysisRepo keeps analysis documents in memory and lists them newest
// first.
type AnalysisRepo struct {
	mu    sync.Mutex
	Items []*models.AnalysisResult
	Err   error
}

func matchesAnalysis(a *models.AnalysisResult, userID, watchlistID string) bool {
	if a.UserID != userID {
		return false
	}
	if watchlistID == "" {
		return true
	}
	return a.WatchlistID != nil && *a.WatchlistID == watchlistID
}

func (r *AnalysisRepo) Create(_ context.Context, result *models.AnalysisResult) (*models.AnalysisResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	a := *result
	a.CreatedAt = time.Now()
	r.Items = append(r.Items, &a)
	return &a, nil
}

func (r *AnalysisRepo) List(_ context.Context, userID, watchlistID string, offset, limit int) ([]*models.AnalysisResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var all []*models.AnalysisResult
	for _, a := range r.Items {
		if matchesAnalysis(a, userID, watchlistID) {
			all = append(all, a)
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

func (r *AnalysisRepo) Count(_ context.Context, userID, watchlistID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	n := 0
	for _, a := range r.Items {
		if matchesAnalysis(a, userID, watchlistID) {
			n++
		}
	}
	return n, nil
}
