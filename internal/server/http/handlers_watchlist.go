package http

import (
	"strings"

	"github.com/finbuddy/finbuddy/internal/server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// parsePagination reads page/limit query params and rejects out-of-range
// values rather than clamping them.
func parsePagination(c *fiber.Ctx) (page, limit int, ok bool) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", defaultPageLimit)
	if page < 1 || limit < 1 || limit > maxPageLimit {
		return 0, 0, false
	}
	return page, limit, true
}

func watchlistItemResponse(item *models.WatchlistItem) WatchlistItemResponse {
	return WatchlistItemResponse{
		ID:        item.ID,
		Type:      item.Type,
		Symbol:    item.Symbol,
		Name:      item.Name,
		Source:    item.Source,
		CreatedAt: item.CreatedAt,
	}
}

func (s *Server) handleWatchlistList(c *fiber.Ctx) error {
	assetType := c.Query("type")
	if assetType != "" && !models.ValidAssetType(assetType) {
		return badRequest(c, "type must be stock or fund")
	}
	page, limit, ok := parsePagination(c)
	if !ok {
		return badRequest(c, "page must be >= 1 and limit between 1 and 100")
	}

	result, err := s.watchlist.List(c.UserContext(), currentUserID(c), assetType, page, limit)
	if err != nil {
		return s.serviceError(c, err, "")
	}

	data := make([]WatchlistItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		data = append(data, watchlistItemResponse(item))
	}
	return c.JSON(PageResponse{Data: data, Total: result.Total, Page: page, Limit: limit})
}

func (s *Server) handleWatchlistCreate(c *fiber.Ctx) error {
	var req CreateWatchlistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.Symbol = strings.TrimSpace(req.Symbol)
	if req.Symbol == "" || req.Name == "" {
		return badRequest(c, "symbol and name are required")
	}
	if !models.ValidAssetType(req.Type) {
		return badRequest(c, "type must be stock or fund")
	}

	item, err := s.watchlist.Create(c.UserContext(), currentUserID(c), req.Type, req.Symbol, req.Name, req.Source)
	if err != nil {
		return s.serviceError(c, err, "watchlist item already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(watchlistItemResponse(item))
}

func (s *Server) handleWatchlistDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "invalid watchlist id")
	}

	if err := s.watchlist.Delete(c.UserContext(), id, currentUserID(c)); err != nil {
		return s.serviceError(c, err, "")
	}
	return c.JSON(SuccessResponse{Success: true})
}

func (s *Server) handleWatchlistLatest(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "invalid watchlist id")
	}

	latest, err := s.watchlist.Latest(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return s.serviceError(c, err, "")
	}

	resp := LatestResponse{
		Symbol: latest.Item.Symbol,
		Type:   latest.Item.Type,
		News:   []any{},
	}
	if p := latest.Price; p != nil {
		resp.Price = &p.Price
		resp.ChangePct = p.ChangePct
		resp.Volume = p.Volume
		resp.UpdatedAt = &p.FetchedAt
	}
	return c.JSON(resp)
}
