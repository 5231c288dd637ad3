package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/core/domain"
	"loandesk/internal/core/services"
	"loandesk/internal/pkg/pagination"
	"loandesk/internal/pkg/response"
)

// LoanHandler handles loan application endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Apply handles loan application submission
// @Summary Submit loan application
// @Description Score a new application and persist it in SUBMITTED state
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.ApplyInput true "Application data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /loans/apply [post]
func (h *LoanHandler) Apply(c *fiber.Ctx) error {
	var req services.ApplyInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loan, err := h.loanService.Apply(c.Context(), &req)
	if err != nil {
		return response.InternalServerError(c, "Failed to create loan application")
	}

	return response.Created(c, "Loan application submitted", loan)
}

// List handles loan listing with paging, sorting, and status filter
// @Summary List loan applications
// @Tags Loans
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param sortBy query string false "Sort column"
// @Param direction query string false "asc or desc"
// @Param status query string false "SUBMITTED, APPROVED, or REJECTED"
// @Success 200 {object} pagination.Response
// @Security BearerAuth
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	status := c.Query("status")

	loans, total, err := h.loanService.List(c.Context(), status, params)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLoanStatus) {
			return response.BadRequest(c, "Invalid status filter")
		}
		return response.InternalServerError(c, "Failed to list loan applications")
	}

	return c.JSON(pagination.NewResponse(loans, params, total))
}

// Get handles single loan lookup
// @Summary Get loan application
// @Tags Loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *LoanHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			return response.NotFound(c, "Loan not found")
		}
		return response.InternalServerError(c, "Failed to get loan application")
	}

	return response.Success(c, "", loan)
}

// Approve handles loan approval
// @Summary Approve loan application
// @Tags Loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /loans/{id}/approve [patch]
func (h *LoanHandler) Approve(c *fiber.Ctx) error {
	return h.transition(c, h.loanService.Approve, "Loan approved")
}

// Reject handles loan rejection
// @Summary Reject loan application
// @Tags Loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /loans/{id}/reject [patch]
func (h *LoanHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, h.loanService.Reject, "Loan rejected")
}

func (h *LoanHandler) transition(
	c *fiber.Ctx,
	action func(ctx context.Context, id uint) (*models.LoanApplication, error),
	message string,
) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := action(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.Is(err, domain.ErrLoanFinalized):
			return response.Conflict(c, "Loan application already finalized")
		default:
			return response.InternalServerError(c, "Failed to update loan application")
		}
	}

	return response.Success(c, message, loan)
}

// parseID extracts the numeric id path parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
