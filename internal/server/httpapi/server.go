// Package httpapi exposes the extension policy over HTTP/JSON.
//
// Identity is an unauthenticated, caller-chosen userId string that scopes
// all stored data; any caller presenting a userId reads and modifies that
// namespace.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/dmitrijs2005/fileblock/internal/logging"
	"github.com/dmitrijs2005/fileblock/internal/server/models"
	"github.com/dmitrijs2005/fileblock/internal/server/services"
)

// fixedSvc and customSvc are the service surfaces the handlers need.
// The concrete services in internal/server/services satisfy them.
type fixedSvc interface {
	List(ctx context.Context, userID string) ([]*models.FixedExtension, error)
	SetPolicy(ctx context.Context, userID string, entries []services.PolicyEntry) ([]*models.FixedExtension, error)
}

type customSvc interface {
	List(ctx context.Context, userID string) ([]*models.CustomExtension, error)
	Add(ctx context.Context, userID, rawName string) (*models.CustomExtension, error)
	Delete(ctx context.Context, userID, id string) error
}

type Server struct {
	address string
	app     *fiber.App
	fixed   fixedSvc
	custom  customSvc
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, fs fixedSvc, cs customSvc, corsOrigins string) *Server {
	s := &Server{
		address: address,
		fixed:   fs,
		custom:  cs,
		logger:  l.With("module", "http_server"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: s.errorHandler,
	})

	app.Use(cors.New(cors.Config{AllowOrigins: corsOrigins}))
	app.Use(s.requestLogger)

	app.Get("/ping", s.Ping)

	ext := app.Group("/extensions")
	ext.Get("/fixed", s.GetFixed)
	ext.Put("/fixed", s.PutFixed)
	ext.Get("/custom", s.GetCustom)
	ext.Post("/custom", s.PostCustom)
	ext.Delete("/custom/:id", s.DeleteCustom)

	s.app = app
	return s
}

// errorHandler maps errors that escape the handlers to the JSON envelope.
// fiber.Error carries its own status (404 on unknown routes, 405, etc.);
// anything else is a 500 with a generic fallback message.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		msg = e.Message
	}

	s.logger.Error(c.UserContext(), "unhandled error", "error", err.Error(), "path", c.Path())

	return fail(c, code, msg)
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Info(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start).String(),
	)
	return err
}

// Run starts the listener and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address)
}
