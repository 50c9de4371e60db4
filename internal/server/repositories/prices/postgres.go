package prices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/finbuddy/finbuddy/internal/dbx"
	"github.com/finbuddy/finbuddy/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetLatest(ctx context.Context, symbol, assetType string) (*models.PricePoint, error) {
	query :=
		`SELECT id, symbol, type, price, change_pct, volume, fetched_at FROM price_history
		 WHERE symbol = $1 AND type = $2
		 ORDER BY fetched_at DESC
		 LIMIT 1
		 `

	p := &models.PricePoint{}
	var changePct sql.NullFloat64
	var volume sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, symbol, assetType).Scan(
		&p.ID, &p.Symbol, &p.Type, &p.Price, &changePct, &volume, &p.FetchedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if changePct.Valid {
		p.ChangePct = &changePct.Float64
	}
	if volume.Valid {
		p.Volume = &volume.Int64
	}

	return p, nil
}
