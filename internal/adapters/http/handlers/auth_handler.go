package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"loandesk/internal/core/domain"
	"loandesk/internal/core/services"
	"loandesk/internal/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
// @Summary Register new user
// @Description Register a new user with the default CUSTOMER role
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Username and password are required")
		case errors.Is(err, domain.ErrUsernameTaken):
			return response.Conflict(c, "Username already exists")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, "User registered successfully", user.ToResponse())
}

// Login handles user login
// @Summary Login user
// @Description Validate credentials and return a signed bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	result, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid username or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", result)
}
