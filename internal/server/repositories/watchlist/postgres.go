package watchlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/finbuddy/finbuddy/internal/dbx"
	"github.com/finbuddy/finbuddy/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID, assetType string, offset, limit int) ([]*models.WatchlistItem, error) {

	query :=
		`SELECT id, user_id, type, symbol, name, source, created_at, updated_at FROM watchlist
		 WHERE user_id = $1 AND ($2 = '' OR type = $2)
		 ORDER BY created_at DESC
		 OFFSET $3 LIMIT $4
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, assetType, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []*models.WatchlistItem{}
	for rows.Next() {
		item := &models.WatchlistItem{}
		var source sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.Type, &item.Symbol,
			&item.Name, &source, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if source.Valid {
			item.Source = &source.String
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Count(ctx context.Context, userID, assetType string) (int, error) {
	query :=
		`SELECT COUNT(*) FROM watchlist
		 WHERE user_id = $1 AND ($2 = '' OR type = $2)
		 `

	var total int
	if err := r.db.QueryRowContext(ctx, query, userID, assetType).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {

	query :=
		`INSERT INTO watchlist (id, user_id, type, symbol, name, source)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.UserID, item.Type, item.Symbol, item.Name, item.Source).
		Scan(&item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.WatchlistItem, error) {
	query :=
		`SELECT id, user_id, type, symbol, name, source, created_at, updated_at FROM watchlist
		 WHERE id = $1 AND user_id = $2
		 `

	item := &models.WatchlistItem{}
	var source sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&item.ID, &item.UserID, &item.Type, &item.Symbol, &item.Name,
		&source, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if source.Valid {
		item.Source = &source.String
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query :=
		`DELETE FROM watchlist
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
