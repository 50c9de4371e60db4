package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/finbuddy/finbuddy/internal/server/models"
	"github.com/finbuddy/finbuddy/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// WatchlistPage is one page of a user's watchlist plus the unpaginated
// total.
type WatchlistPage struct {
	Items []*models.WatchlistItem
	Total int
}

// LatestData is the freshest stored quote for a watchlist item. Price
// fields are nil until something has been ingested for the symbol.
type LatestData struct {
	Item  *models.WatchlistItem
	Price *models.PricePoint
}

// WatchlistService manages a user's tracked stocks and funds.
type WatchlistService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWatchlistService(db *sql.DB, m repomanager.RepositoryManager) *WatchlistService {
	return &WatchlistService{db: db, repomanager: m}
}

// List returns one page of the user's items, newest first, with the total
// count for pagination. assetType filters to "stock" or "fund"; empty means
// everything.
func (s *WatchlistService) List(ctx context.Context, userID, assetType string, page, limit int) (*WatchlistPage, error) {
	repo := s.repomanager.Watchlist(s.db)

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	total, err := repo.Count(ctx, userID, assetType)
	if err != nil {
		return nil, storeErr(err)
	}

	items, err := repo.List(ctx, userID, assetType, (page-1)*limit, limit)
	if err != nil {
		return nil, storeErr(err)
	}

	return &WatchlistPage{Items: items, Total: total}, nil
}

// Create adds an item to the user's watchlist. A duplicate (symbol, type)
// for the same user yields ErrorAlreadyExists, enforced by the storage
// constraint even under concurrent inserts.
func (s *WatchlistService) Create(ctx context.Context, userID, assetType, symbol, name string, source *string) (*models.WatchlistItem, error) {
	repo := s.repomanager.Watchlist(s.db)

	item := &models.WatchlistItem{
		ID:     uuid.NewString(),
		UserID: userID,
		Type:   assetType,
		Symbol: symbol,
		Name:   name,
		Source: source,
	}

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	item, err := repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, storeErr(err)
	}

	return item, nil
}

// Delete removes the user's item. Items belonging to other users are
// invisible here and report ErrorNotFound.
func (s *WatchlistService) Delete(ctx context.Context, id, userID string) error {
	repo := s.repomanager.Watchlist(s.db)

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	if err := repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return storeErr(err)
	}
	return nil
}

// Latest returns the item together with its most recent stored quote, if
// any. Missing price data is not an error; ingestion runs elsewhere.
func (s *WatchlistService) Latest(ctx context.Context, id, userID string) (*LatestData, error) {
	watchRepo := s.repomanager.Watchlist(s.db)
	priceRepo := s.repomanager.Prices(s.db)

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	item, err := watchRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, storeErr(err)
	}

	price, err := priceRepo.GetLatest(ctx, item.Symbol, item.Type)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, storeErr(err)
		}
		price = nil
	}

	return &LatestData{Item: item, Price: price}, nil
}
