package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finbuddy/finbuddy/internal/logging"
	"github.com/finbuddy/finbuddy/internal/server/auth"
	"github.com/finbuddy/finbuddy/internal/server/config"
	"github.com/finbuddy/finbuddy/internal/server/repositories/memory"
	"github.com/finbuddy/finbuddy/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server *Server
	repos  *memory.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	repos := memory.NewManager()
	codec := auth.NewTokenCodec([]byte(cfg.SecretKey))
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv := NewServer(cfg, log, codec,
		services.NewUserService(nil, repos, codec, cfg),
		services.NewWatchlistService(nil, repos),
		services.NewAnalysisService(nil, repos),
	)
	return &testEnv{server: srv, repos: repos}
}

func (e *testEnv) request(t *testing.T, method, target, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.server.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// register creates a user and returns the token pair.
func (e *testEnv) register(t *testing.T, email string) TokenPairResponse {
	t.Helper()
	resp := e.request(t, fiber.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Email:    email,
		Password: "pass123",
		Name:     "Tester",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeBody[TokenPairResponse](t, resp)
}

func TestHealthEndpoints(t *testing.T) {
	e := newTestEnv(t)

	resp := e.request(t, fiber.MethodGet, "/", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = e.request(t, fiber.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterLoginFlow(t *testing.T) {
	e := newTestEnv(t)

	pair := e.register(t, "alice@example.com")
	assert.NotEmpty(t, pair.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	resp := e.request(t, fiber.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email: "alice@example.com", Password: "pass123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decodeBody[TokenPairResponse](t, resp)
	assert.Equal(t, pair.UserID, got.UserID)
}

func TestRegisterValidation(t *testing.T) {
	e := newTestEnv(t)

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Password: "pass123"}},
		{"missing password", RegisterRequest{Email: "a@x.com"}},
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "pass123"}},
		{"oversized password", RegisterRequest{Email: "a@x.com", Password: string(make([]byte, 80))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := e.request(t, fiber.MethodPost, "/api/v1/auth/register", "", tc.req)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice@example.com")

	resp := e.request(t, fiber.MethodPost, "/api/v1/auth/register", "", RegisterRequest{
		Email: "Alice@Example.com", Password: "other456", Name: "Alice II",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeBody[ErrorResponse](t, resp)
	assert.Equal(t, "conflict", body.Error)
	assert.Equal(t, "email already registered", body.Message)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice@example.com")

	unknown := e.request(t, fiber.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email: "nobody@example.com", Password: "pass123",
	})
	wrongPw := e.request(t, fiber.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})

	require.Equal(t, fiber.StatusUnauthorized, unknown.StatusCode)
	require.Equal(t, fiber.StatusUnauthorized, wrongPw.StatusCode)
	assert.Equal(t,
		decodeBody[ErrorResponse](t, unknown),
		decodeBody[ErrorResponse](t, wrongPw))
}

func TestRefreshEndpoint(t *testing.T) {
	e := newTestEnv(t)
	pair := e.register(t, "alice@example.com")

	resp := e.request(t, fiber.MethodPost, "/api/v1/auth/refresh", "", RefreshRequest{
		RefreshToken: pair.RefreshToken,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decodeBody[RefreshResponse](t, resp)
	assert.NotEmpty(t, got.AccessToken)
	assert.Equal(t, int64(900), got.ExpiresIn)

	// an access token at the refresh endpoint is a 401
	resp = e.request(t, fiber.MethodPost, "/api/v1/auth/refresh", "", RefreshRequest{
		RefreshToken: pair.AccessToken,
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// no body at all is a 400
	resp = e.request(t, fiber.MethodPost, "/api/v1/auth/refresh", "", RefreshRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	e := newTestEnv(t)

	resp := e.request(t, fiber.MethodPost, "/api/v1/auth/logout", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decodeBody[SuccessResponse](t, resp).Success)
}

func TestMe(t *testing.T) {
	e := newTestEnv(t)
	pair := e.register(t, "alice@example.com")

	resp := e.request(t, fiber.MethodGet, "/api/v1/auth/me", pair.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decodeBody[ProfileResponse](t, resp)
	assert.Equal(t, pair.UserID, got.UserID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "Tester", got.Name)
}

func TestProtectedEndpointsRejectBadTokens(t *testing.T) {
	e := newTestEnv(t)
	pair := e.register(t, "alice@example.com")

	cases := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage", "not.a.token"},
		{"refresh token as access", pair.RefreshToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := e.request(t, fiber.MethodGet, "/api/v1/watchlist/", tc.token, nil)
			require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			body := decodeBody[ErrorResponse](t, resp)
			assert.Equal(t, "unauthorized", body.Error)
		})
	}
}

func TestWatchlistCRUD(t *testing.T) {
	e := newTestEnv(t)
	pair := e.register(t, "alice@example.com")

	resp := e.request(t, fiber.MethodPost, "/api/v1/watchlist/", pair.AccessToken, CreateWatchlistRequest{
		Type: "stock", Symbol: "AAPL", Name: "Apple Inc.",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	item := decodeBody[WatchlistItemResponse](t, resp)
	assert.NotEmpty(t, item.ID)

	// duplicate
	resp = e.request(t, fiber.MethodPost, "/api/v1/watchlist/", pair.AccessToken, CreateWatchlistRequest{
		Type: "stock", Symbol: "AAPL", Name: "Apple again",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// listing
	resp = e.request(t, fiber.MethodGet, "/api/v1/watchlist/?type=stock", pair.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[PageResponse](t, resp)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)

	// deletion, then the id is gone
	resp = e.request(t, fiber.MethodDelete, "/api/v1/watchlist/"+item.ID, pair.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = e.request(t, fiber.MethodDelete, "/api/v1/watchlist/"+item.ID, pair.AccessToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestWatchlistValidation(t *testing.T) {
	e := newTestEnv(t)
	pair := e.register(t, "alice@example.com")

	// bad asset type
	resp := e.request(t, fiber.MethodPost, "/api/v1/watchlist/", pair.AccessToken, CreateWatchlistRequest{
		Type: "crypto", Symbol: "BTC", Name: "Bitcoin",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// bad filter and pagination params
	for _, target := range []string{
		"/api/v1/watchlist/?type=crypto",
		"/api/v1/watchlist/?page=0",
		"/api/v1/watchlist/?limit=0",
		"/api/v1/watchlist/?limit=500",
	} {
		resp = e.request(t, fiber.MethodGet, target, pair.AccessToken, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}

	// non-uuid path param
	resp = e.request(t, fiber.MethodDelete, "/api/v1/watchlist/not-a-uuid", pair.AccessToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWatchlistLatestEndpoint(t *testing.T) {
	e := newTestEnv(t)
	pair := e.register(t, "alice@example.com")

	resp := e.request(t, fiber.MethodPost, "/api/v1/watchlist/", pair.AccessToken, CreateWatchlistRequest{
		Type: "stock", Symbol: "AAPL", Name: "Apple Inc.",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	item := decodeBody[WatchlistItemResponse](t, resp)

	// nothing ingested yet: nulls, not an error
	resp = e.request(t, fiber.MethodGet, fmt.Sprintf("/api/v1/watchlist/%s/latest", item.ID), pair.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	latest := decodeBody[LatestResponse](t, resp)
	assert.Equal(t, "AAPL", latest.Symbol)
	assert.Nil(t, latest.Price)
	assert.NotNil(t, latest.News)

	// someone else's item is a 404
	other := e.register(t, "bob@example.com")
	resp = e.request(t, fiber.MethodGet, fmt.Sprintf("/api/v1/watchlist/%s/latest", item.ID), other.AccessToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAnalysisEndpoints(t *testing.T) {
	e := newTestEnv(t)
	pair := e.register(t, "alice@example.com")

	resp := e.request(t, fiber.MethodPost, "/api/v1/analysis/", pair.AccessToken, CreateAnalysisRequest{
		Tool:   "stock_analyzer",
		Result: json.RawMessage(`{"verdict":"hold"}`),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody[AnalysisResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.WatchlistID)

	// missing tool / invalid result document
	resp = e.request(t, fiber.MethodPost, "/api/v1/analysis/", pair.AccessToken, CreateAnalysisRequest{
		Result: json.RawMessage(`{}`),
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = e.request(t, fiber.MethodGet, "/api/v1/analysis/", pair.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decodeBody[PageResponse](t, resp)
	assert.Equal(t, 1, page.Total)

	// another user sees an empty listing
	other := e.register(t, "bob@example.com")
	resp = e.request(t, fiber.MethodGet, "/api/v1/analysis/", other.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Zero(t, decodeBody[PageResponse](t, resp).Total)
}
