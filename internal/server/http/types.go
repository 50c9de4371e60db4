package http

import (
	"encoding/json"
	"time"
)

// ErrorResponse is the body for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenPairResponse is returned by register and login.
type TokenPairResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ProfileResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type CreateWatchlistRequest struct {
	Type   string  `json:"type"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Source *string `json:"source"`
}

type WatchlistItemResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Source    *string   `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// PageResponse wraps any paginated listing.
type PageResponse struct {
	Data  any `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// LatestResponse is the freshest stored quote for a watchlist item. Price
// fields are null until ingestion has stored something for the symbol.
type LatestResponse struct {
	Symbol    string     `json:"symbol"`
	Type      string     `json:"type"`
	Price     *float64   `json:"price"`
	ChangePct *float64   `json:"change_pct"`
	Volume    *int64     `json:"volume"`
	UpdatedAt *time.Time `json:"updated_at"`
	News      []any      `json:"news"`
}

type CreateAnalysisRequest struct {
	WatchlistID *string         `json:"watchlist_id"`
	Tool        string          `json:"tool"`
	Result      json.RawMessage `json:"result"`
}

type AnalysisResponse struct {
	ID          string          `json:"id"`
	WatchlistID *string         `json:"watchlist_id"`
	Tool        string          `json:"tool"`
	Result      json.RawMessage `json:"result"`
	CreatedAt   time.Time       `json:"created_at"`
}
