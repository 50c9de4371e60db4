// Package repomanager vends repository implementations bound to a database
// handle, so services can run repositories against either the pooled
// connection or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/finbuddy/finbuddy/internal/dbx"
	"github.com/finbuddy/finbuddy/internal/server/repositories/analysis"
	"github.com/finbuddy/finbuddy/internal/server/repositories/prices"
	"github.com/finbuddy/finbuddy/internal/server/repositories/users"
	"github.com/finbuddy/finbuddy/internal/server/repositories/watchlist"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Watchlist(db dbx.DBTX) watchlist.Repository
	Analysis(db dbx.DBTX) analysis.Repository
	Prices(db dbx.DBTX) prices.Repository
}
