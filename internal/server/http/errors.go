package http

import (
	"errors"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/gofiber/fiber/v2"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}

// serviceError maps the service sentinels onto HTTP statuses. Anything not
// recognized becomes a generic 500 so internals never leak to clients.
func (s *Server) serviceError(c *fiber.Ctx, err error, conflictMessage string) error {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: conflictMessage,
		})
	case errors.Is(err, common.ErrInvalidCredentials):
		return unauthorized(c, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrInvalidRefreshToken):
		return unauthorized(c, common.ErrInvalidRefreshToken.Error())
	case errors.Is(err, common.ErrInvalidTokenType):
		return unauthorized(c, common.ErrInvalidTokenType.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return unauthorized(c, "not authenticated")
	case errors.Is(err, common.ErrorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "not found",
		})
	case errors.Is(err, common.ErrorUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "unavailable",
			Message: "service temporarily unavailable",
		})
	default:
		s.log.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "an internal error occurred",
		})
	}
}
