package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sketchvault/sketchvault/internal/project"
)

// RegisterProjectRoutes wires the project endpoints.
func RegisterProjectRoutes(app *fiber.App, h *project.Handler) {
	app.Post("/createOrUpdateProject", h.CreateOrUpdate)
	app.Get("/getProject/:projectId", h.Get)
}
