// Package memory provides in-memory repository implementations that mirror
// the postgres behavior: the same error contracts and the same newest-first
// listing order. They back service and handler tests and are handy for
// local experiments without a database.
package memory

import (
	"context"
	"database/sql"

	"github.com/finbuddy/finbuddy/internal/dbx"
	"github.com/finbuddy/finbuddy/internal/server/repositories/analysis"
	"github.com/finbuddy/finbuddy/internal/server/repositories/prices"
	"github.com/finbuddy/finbuddy/internal/server/repositories/users"
	"github.com/finbuddy/finbuddy/internal/server/repositories/watchlist"
)

// Manager vends the in-memory repositories. The dbx handle arguments are
// ignored; state lives in the repos themselves.
type Manager struct {
	UsersRepo     *UsersRepo
	WatchlistRepo *WatchlistRepo
	AnalysisRepo  *AnalysisRepo
	PricesRepo    *PricesRepo
}

func NewManager() *Manager {
	return &Manager{
		UsersRepo:     &UsersRepo{},
		WatchlistRepo: &WatchlistRepo{},
		AnalysisRepo:  &AnalysisRepo{},
		PricesRepo:    &PricesRepo{},
	}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *Manager) Users(dbx.DBTX) users.Repository              { return m.UsersRepo }
func (m *Manager) Watchlist(dbx.DBTX) watchlist.Repository      { return m.WatchlistRepo }
func (m *Manager) Analysis(dbx.DBTX) analysis.Repository        { return m.AnalysisRepo }
func (m *Manager) Prices(dbx.DBTX) prices.Repository            { return m.PricesRepo }
