package models

import (
	"encoding/json"
	"time"
)

// AnalysisResult stores one AI-generated analysis document. The optional
// watchlist link is severed (set to NULL) when the item is deleted, so old
// analyses survive watchlist cleanup.
type AnalysisResult struct {
	ID          string
	UserID      string
	WatchlistID *string
	Tool        string
	Result      json.RawMessage
	CreatedAt   time.Time
}
