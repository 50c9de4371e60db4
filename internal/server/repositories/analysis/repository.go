// Package analysis persists AI-generated analysis documents.
package analysis

import (
	"context"

	"github.com/finbuddy/finbuddy/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, result *models.AnalysisResult) (*models.AnalysisResult, error)
	// List returns a page of the user's results, newest first. An empty
	// watchlistID means no filter.
	List(ctx context.Context, userID, watchlistID string, offset, limit int) ([]*models.AnalysisResult, error)
	Count(ctx context.Context, userID, watchlistID string) (int, error)
}
