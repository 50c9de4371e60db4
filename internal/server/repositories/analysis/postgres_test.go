package analysis

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finbuddy/finbuddy/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	doc := json.RawMessage(`{"verdict":"buy"}`)
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+analysis_results`).
		WithArgs("a-1", "u-1", nil, "stock_analyzer", []byte(doc)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	res, err := repo.Create(context.Background(), &models.AnalysisResult{
		ID: "a-1", UserID: "u-1", Tool: "stock_analyzer", Result: doc,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestList_NullWatchlistRef(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "watchlist_id", "tool", "result", "created_at"}).
		AddRow("a-2", "u-1", "w-1", "fund_analyzer", []byte(`{"verdict":"hold"}`), now).
		AddRow("a-1", "u-1", nil, "stock_analyzer", []byte(`{}`), now.Add(-time.Hour))
	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+analysis_results.*ORDER\s+BY\s+created_at\s+DESC`).
		WithArgs("u-1", "", 0, 20).
		WillReturnRows(rows)

	results, err := repo.List(context.Background(), "u-1", "", 0, 20)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].WatchlistID == nil || *results[0].WatchlistID != "w-1" {
		t.Fatalf("expected watchlist ref w-1, got %v", results[0].WatchlistID)
	}
	if results[1].WatchlistID != nil {
		t.Fatalf("expected nil watchlist ref, got %v", *results[1].WatchlistID)
	}
}

func TestCount_WithFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+analysis_results`).
		WithArgs("u-1", "w-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background(), "u-1", "w-1")
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3, got %d", total)
	}
}
