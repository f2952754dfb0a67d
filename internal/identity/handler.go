package identity

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sketchvault/sketchvault/internal/apperr"
)

// Handler exposes the signin endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// SignIn handles the combined login/signup endpoint.
func (h *Handler) SignIn(c *fiber.Ctx) error {
	var req signinRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("malformed request body")
	}

	user, outcome, err := h.service.SignIn(c.UserContext(), Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	message := "Login successful"
	if outcome == OutcomeRegistered {
		message = "Signup successful"
	}
	return c.Status(http.StatusOK).JSON(signinResponse{Message: message, UserID: user.ID})
}
