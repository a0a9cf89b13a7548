// Package server serves a read-only live preview of the stored profile.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/alexisbeaulieu97/linkforce/internal/logger"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/render"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

const shutdownTimeout = 5 * time.Second

// ProfileSource supplies the profile to show. Load is called on every
// request so edits saved by other processes appear on the next refresh.
// store.Store satisfies it.
type ProfileSource interface {
	Load(ctx context.Context) profile.UserProfile
}

// CardExporter produces the card PNG. export.Exporter satisfies it.
type CardExporter interface {
	Snapshot(ctx context.Context, p profile.UserProfile) ([]byte, error)
}

// Server is the preview HTTP server.
type Server struct {
	app      *fiber.App
	source   ProfileSource
	catalog  style.Catalog
	exporter CardExporter
	log      *logger.Logger
}

// New builds the server. exporter may be nil, in which case /card.png
// answers 503.
func New(source ProfileSource, catalog style.Catalog, exporter CardExporter, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	engine := html.NewFileSystem(http.FS(render.Templates()), ".html")
	s := &Server{
		source:   source,
		catalog:  catalog,
		exporter: exporter,
		log:      log.WithFields(map[string]any{"component": "server"}),
	}
	s.app = fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recoverMiddleware.New())
	s.app.Use(s.requestLogger)
	s.registerRoutes()
	return s
}

// App exposes the fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until ctx is cancelled.
func (s *Server) Listen(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()

	s.log.WithFields(map[string]any{"addr": addr}).Info("preview server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()
	s.log.WithFields(map[string]any{
		"method":  c.Method(),
		"path":    c.Path(),
		"status":  c.Response().StatusCode(),
		"elapsed": time.Since(started).String(),
	}).Debug("request")
	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error(err, "request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
