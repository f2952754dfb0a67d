package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sketchvault/sketchvault/internal/art"
)

// RegisterArtRoutes wires the pixel-art endpoints.
func RegisterArtRoutes(app *fiber.App, h *art.Handler) {
	app.Post("/save", h.Save)
	app.Get("/userArts", h.ListByUser)
	app.Get("/getArtData", h.GetData)
	app.Delete("/deleteArt", h.Delete)
}
