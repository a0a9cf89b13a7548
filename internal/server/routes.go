package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alexisbeaulieu97/linkforce/internal/busy"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/render"
)

func (s *Server) registerRoutes() {
	s.app.Get("/", s.handlePreview)
	s.app.Get("/card", s.handleCard)
	s.app.Get("/card.png", s.handleCardPNG)

	api := s.app.Group("/api")
	api.Get("/profile", s.handleProfile)
	api.Get("/presentation", s.handlePresentation)
}

func (s *Server) handlePreview(c *fiber.Ctx) error {
	return c.Render(render.PreviewTemplate, render.NewPreviewView(s.catalog, s.source.Load(c.UserContext())))
}

func (s *Server) handleCard(c *fiber.Ctx) error {
	return c.Render(render.CardTemplate, render.NewCardView(s.catalog, s.source.Load(c.UserContext())))
}

func (s *Server) handleCardPNG(c *fiber.Ctx) error {
	if s.exporter == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "card export is not configured")
	}

	png, err := s.exporter.Snapshot(c.UserContext(), s.source.Load(c.UserContext()))
	switch {
	case errors.Is(err, busy.ErrBusy):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case err != nil:
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(png)
}

func (s *Server) handleProfile(c *fiber.Ctx) error {
	data, err := profile.Encode(s.source.Load(c.UserContext()))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

func (s *Server) handlePresentation(c *fiber.Ctx) error {
	return c.JSON(newPresentationResponse(s.catalog, s.source.Load(c.UserContext())))
}
