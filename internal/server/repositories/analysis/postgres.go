package analysis

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finbuddy/finbuddy/internal/dbx"
	"github.com/finbuddy/finbuddy/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, result *models.AnalysisResult) (*models.AnalysisResult, error) {

	query :=
		`INSERT INTO analysis_results (id, user_id, watchlist_id, tool, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		result.ID, result.UserID, result.WatchlistID, result.Tool, []byte(result.Result)).
		Scan(&result.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID, watchlistID string, offset, limit int) ([]*models.AnalysisResult, error) {

	query :=
		`SELECT id, user_id, watchlist_id, tool, result, created_at FROM analysis_results
		 WHERE user_id = $1 AND ($2 = '' OR watchlist_id = $2::uuid)
		 ORDER BY created_at DESC
		 OFFSET $3 LIMIT $4
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, watchlistID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	results := []*models.AnalysisResult{}
	for rows.Next() {
		res := &models.AnalysisResult{}
		var watchlistRef sql.NullString
		var raw []byte
		if err := rows.Scan(&res.ID, &res.UserID, &watchlistRef, &res.Tool, &raw, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if watchlistRef.Valid {
			res.WatchlistID = &watchlistRef.String
		}
		res.Result = raw
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return results, nil
}

func (r *PostgresRepository) Count(ctx context.Context, userID, watchlistID string) (int, error) {
	query :=
		`SELECT COUNT(*) FROM analysis_results
		 WHERE user_id = $1 AND ($2 = '' OR watchlist_id = $2::uuid)
		 `

	var total int
	if err := r.db.QueryRowContext(ctx, query, userID, watchlistID).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}
