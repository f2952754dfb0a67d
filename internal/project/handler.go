package project

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

// ownerLocal is the fiber locals key the owner middleware fills in.
const ownerLocal = "user_id"

// Handler exposes project HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a project HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type upsertRequest struct {
	ProjectID string `json:"projectId"`
	Content   string `json:"content"`
}

// CreateOrUpdate creates a project or replaces the content of an owned one.
func (h *Handler) CreateOrUpdate(c *fiber.Ctx) error {
	var req upsertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	ownerID, _ := c.Locals(ownerLocal).(string)

	p, created, err := h.service.Upsert(c.UserContext(), UpsertInput{
		ID:      req.ProjectID,
		OwnerID: ownerID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	message := "Project updated"
	if created {
		message = "Project created"
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":   message,
		"projectId": p.ID,
	})
}

// Get returns the content of an owned project.
func (h *Handler) Get(c *fiber.Ctx) error {
	ownerID, _ := c.Locals(ownerLocal).(string)

	p, err := h.service.Get(c.UserContext(), c.Params("projectId"), ownerID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Project retrieved",
		"content": p.Content,
	})
}
