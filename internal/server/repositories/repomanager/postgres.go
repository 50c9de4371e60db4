package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finbuddy/finbuddy/internal/dbx"
	"github.com/finbuddy/finbuddy/internal/server/migrations"
	"github.com/finbuddy/finbuddy/internal/server/repositories/analysis"
	"github.com/finbuddy/finbuddy/internal/server/repositories/prices"
	"github.com/finbuddy/finbuddy/internal/server/repositories/users"
	"github.com/finbuddy/finbuddy/internal/server/repositories/watchlist"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Open connects to PostgreSQL via the pgx stdlib driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return db, nil
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Watchlist returns a watchlist.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Watchlist(db dbx.DBTX) watchlist.Repository {
	return watchlist.NewPostgresRepository(db)
}

// Analysis returns an analysis.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Analysis(db dbx.DBTX) analysis.Repository {
	return analysis.NewPostgresRepository(db)
}

// Prices returns a prices.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Prices(db dbx.DBTX) prices.Repository {
	return prices.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
