package art

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

// Handler exposes pixel-art HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an art HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type saveRequest struct {
	ArtID   string          `json:"artId"`
	UserID  string          `json:"userId"`
	ArtName string          `json:"artName"`
	Pixels  json.RawMessage `json:"pixels"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
}

// Save creates a canvas or replaces the fields of an owned one.
func (h *Handler) Save(c *fiber.Ctx) error {
	var req saveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("malformed request body")
	}

	a, created, err := h.service.Upsert(c.UserContext(), UpsertInput{
		ID:      req.ArtID,
		OwnerID: req.UserID,
		Name:    req.ArtName,
		Pixels:  req.Pixels,
		Width:   req.Width,
		Height:  req.Height,
	})
	if err != nil {
		return err
	}

	message := "Pixel art updated successfully"
	if created {
		message = "Pixel art created successfully"
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"_id":     a.ID,
		"message": message,
	})
}

// ListByUser returns every canvas owned by the userId query parameter.
func (h *Handler) ListByUser(c *fiber.Ctx) error {
	arts, err := h.service.ListByOwner(c.UserContext(), c.Query("userId"))
	if err != nil {
		return err
	}

	docs := make([]Document, 0, len(arts))
	for _, a := range arts {
		docs = append(docs, a.Doc())
	}
	return c.Status(http.StatusOK).JSON(docs)
}

// GetData returns an array holding the canvas matching the artId query
// parameter, or an empty array when no canvas matches.
func (h *Handler) GetData(c *fiber.Ctx) error {
	a, err := h.service.Get(c.UserContext(), c.Query("artId"))
	if errors.Is(err, apperr.ErrNotFound) {
		return c.Status(http.StatusOK).JSON([]Document{})
	}
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON([]Document{a.Doc()})
}

// Delete removes the canvas matching the artId query parameter.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Query("artId")); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}
