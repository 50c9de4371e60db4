package http

import (
	"encoding/json"

	"github.com/finbuddy/finbuddy/internal/server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func analysisResponse(res *models.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		ID:          res.ID,
		WatchlistID: res.WatchlistID,
		Tool:        res.Tool,
		Result:      res.Result,
		CreatedAt:   res.CreatedAt,
	}
}

func (s *Server) handleAnalysisCreate(c *fiber.Ctx) error {
	var req CreateAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Tool == "" {
		return badRequest(c, "tool is required")
	}
	if len(req.Result) == 0 || !json.Valid(req.Result) {
		return badRequest(c, "result must be a JSON document")
	}
	if req.WatchlistID != nil {
		if _, err := uuid.Parse(*req.WatchlistID); err != nil {
			return badRequest(c, "invalid watchlist id")
		}
	}

	res, err := s.analysis.Create(c.UserContext(), currentUserID(c), req.WatchlistID, req.Tool, req.Result)
	if err != nil {
		return s.serviceError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(analysisResponse(res))
}

func (s *Server) handleAnalysisList(c *fiber.Ctx) error {
	watchlistID := c.Query("watchlist_id")
	if watchlistID != "" {
		if _, err := uuid.Parse(watchlistID); err != nil {
			return badRequest(c, "invalid watchlist id")
		}
	}
	page, limit, ok := parsePagination(c)
	if !ok {
		return badRequest(c, "page must be >= 1 and limit between 1 and 100")
	}

	result, err := s.analysis.List(c.UserContext(), currentUserID(c), watchlistID, page, limit)
	if err != nil {
		return s.serviceError(c, err, "")
	}

	data := make([]AnalysisResponse, 0, len(result.Items))
	for _, res := range result.Items {
		data = append(data, analysisResponse(res))
	}
	return c.JSON(PageResponse{Data: data, Total: result.Total, Page: page, Limit: limit})
}
