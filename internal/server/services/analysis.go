package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/finbuddy/finbuddy/internal/dbx"
	"github.com/finbuddy/finbuddy/internal/server/models"
	"github.com/finbuddy/finbuddy/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// AnalysisPage is one page of a user's analysis results plus the
// unpaginated total.
type AnalysisPage struct {
	Items []*models.AnalysisResult
	Total int
}

// AnalysisService stores and lists AI-generated analysis documents.
type AnalysisService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAnalysisService(db *sql.DB, m repomanager.RepositoryManager) *AnalysisService {
	return &AnalysisService{db: db, repomanager: m}
}

// Create stores an analysis document. When a watchlist link is given, the
// ownership check and the insert run in one transaction so the link cannot
// point at an item deleted in between.
func (s *AnalysisService) Create(ctx context.Context, userID string, watchlistID *string, tool string, result json.RawMessage) (*models.AnalysisResult, error) {
	res := &models.AnalysisResult{
		ID:          uuid.NewString(),
		UserID:      userID,
		WatchlistID: watchlistID,
		Tool:        tool,
		Result:      result,
	}

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	if watchlistID == nil {
		created, err := s.repomanager.Analysis(s.db).Create(ctx, res)
		if err != nil {
			return nil, storeErr(err)
		}
		return created, nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Watchlist(tx).GetByID(ctx, *watchlistID, userID); err != nil {
			return err
		}
		created, err := s.repomanager.Analysis(tx).Create(ctx, res)
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, storeErr(err)
	}

	return res, nil
}

// List returns one page of the user's results, newest first. watchlistID
// filters to a single item; empty means everything.
func (s *AnalysisService) List(ctx context.Context, userID, watchlistID string, page, limit int) (*AnalysisPage, error) {
	repo := s.repomanager.Analysis(s.db)

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	total, err := repo.Count(ctx, userID, watchlistID)
	if err != nil {
		return nil, storeErr(err)
	}

	items, err := repo.List(ctx, userID, watchlistID, (page-1)*limit, limit)
	if err != nil {
		return nil, storeErr(err)
	}

	return &AnalysisPage{Items: items, Total: total}, nil
}
