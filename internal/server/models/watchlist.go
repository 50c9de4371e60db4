package models

import "time"

// Asset types a watchlist item can track. The storage layer enforces the
// same set via a CHECK constraint.
const (
	AssetTypeStock = "stock"
	AssetTypeFund  = "fund"
)

// ValidAssetType reports whether t is one of the known asset types.
func ValidAssetType(t string) bool {
	return t == AssetTypeStock || t == AssetTypeFund
}

// WatchlistItem is one tracked stock or fund. A user can track a given
// (symbol, type) pair at most once.
type WatchlistItem struct {
	ID        string
	UserID    string
	Type      string
	Symbol    string
	Name      string
	Source    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
