package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"loandesk/internal/adapters/http/middleware"
	"loandesk/internal/core/domain"
	"loandesk/internal/core/services"
	"loandesk/internal/pkg/response"
)

// UserHandler handles user administration and profile endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles admin user listing
// @Summary List users
// @Description List users, optionally filtered by role
// @Tags Admin
// @Produce json
// @Param role query string false "ADMIN, ANALYST, or CUSTOMER"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.ListByRole(c.Context(), c.Query("role"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return response.BadRequest(c, "Invalid role filter")
		}
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "", users)
}

// UpdateRoleRequest represents role update request body
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateRole handles admin role changes
// @Summary Update user role
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body UpdateRoleRequest true "New role"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /admin/users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil || req.Role == "" {
		return response.BadRequest(c, "Role is required")
	}

	user, err := h.userService.UpdateRole(c.Context(), id, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Unknown role")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to update role")
		}
	}

	return response.Success(c, "Role updated", user)
}

// UpdateActiveRequest represents account enable/disable request body
type UpdateActiveRequest struct {
	Active *bool `json:"active"`
}

// UpdateActive handles admin account enable/disable
// @Summary Enable or disable a user
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body UpdateActiveRequest true "Active flag"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /admin/users/{id}/active [put]
func (h *UserHandler) UpdateActive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UpdateActiveRequest
	if err := c.BodyParser(&req); err != nil || req.Active == nil {
		return response.BadRequest(c, "Active flag required")
	}

	user, err := h.userService.UpdateActive(c.Context(), id, *req.Active)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update active flag")
	}

	return response.Success(c, "Active flag updated", user)
}

// GetProfile handles the caller's own profile lookup
// @Summary Get own profile
// @Tags Users
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "Access denied")
	}

	user, err := h.userService.GetProfile(c.Context(), principal.UserID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get profile")
	}

	return response.Success(c, "", user)
}

// UpdateProfile handles the caller's own profile update
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.UpdateProfileInput true "Profile fields"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "Access denied")
	}

	var req services.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Context(), principal.UserID, &req)
	if err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Success(c, "Profile updated", user)
}
