package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the login endpoint.
type Handler struct {
	svc *Service
}

// NewHandler constructs an auth handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

// Login validates the request shape and issues a bearer token. Blank or
// whitespace-only credentials are rejected before the issuer is consulted.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(loginResponse{
			Success: false,
			Message: "Username and password are required",
		})
	}

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return c.Status(http.StatusBadRequest).JSON(loginResponse{
			Success: false,
			Message: "Username and password are required",
		})
	}

	result, err := h.svc.Login(c.UserContext(), Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "login failed")
	}

	return c.Status(http.StatusOK).JSON(loginResponse{
		Success: true,
		Token:   result.Token,
		Message: result.Message,
	})
}
