// Package http exposes the REST API over Fiber: public auth endpoints plus
// bearer-protected watchlist and analysis endpoints under /api/v1.
package http

import (
	"context"

	"github.com/finbuddy/finbuddy/internal/logging"
	"github.com/finbuddy/finbuddy/internal/server/auth"
	"github.com/finbuddy/finbuddy/internal/server/config"
	"github.com/finbuddy/finbuddy/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server owns the Fiber app and routes requests into the service layer.
type Server struct {
	app       *fiber.App
	addr      string
	log       logging.Logger
	users     *services.UserService
	watchlist *services.WatchlistService
	analysis  *services.AnalysisService
}

func NewServer(cfg *config.Config, log logging.Logger, codec *auth.TokenCodec,
	users *services.UserService, watchlist *services.WatchlistService, analysis *services.AnalysisService) *Server {

	s := &Server{
		addr:      cfg.EndpointAddrHTTP,
		log:       log,
		users:     users,
		watchlist: watchlist,
		analysis:  analysis,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "finbuddy", "status": "ok"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	v1 := app.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/register", s.handleRegister)
	authRoutes.Post("/login", s.handleLogin)
	authRoutes.Post("/refresh", s.handleRefresh)
	authRoutes.Post("/logout", s.handleLogout)
	authRoutes.Get("/me", authMiddleware(codec), s.handleMe)

	watchlistRoutes := v1.Group("/watchlist", authMiddleware(codec))
	watchlistRoutes.Get("/", s.handleWatchlistList)
	watchlistRoutes.Post("/", s.handleWatchlistCreate)
	watchlistRoutes.Delete("/:id", s.handleWatchlistDelete)
	watchlistRoutes.Get("/:id/latest", s.handleWatchlistLatest)

	analysisRoutes := v1.Group("/analysis", authMiddleware(codec))
	analysisRoutes.Post("/", s.handleAnalysisCreate)
	analysisRoutes.Get("/", s.handleAnalysisList)

	s.app = app
	return s
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP until Shutdown is called.
func (s *Server) Listen(ctx context.Context) error {
	s.log.Info(ctx, "http server listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler converts Fiber-internal errors (bad routes, oversized
// bodies) into the standard error body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(ErrorResponse{Error: "server_error", Message: message})
}
