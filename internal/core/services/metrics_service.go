package services

import (
	"context"

	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/core/domain"
)

// MetricsService aggregates counts for admin dashboards
type MetricsService struct {
	userRepo repositories.UserRepository
	loanRepo repositories.LoanRepository
}

// NewMetricsService creates a new metrics service
func NewMetricsService(userRepo repositories.UserRepository, loanRepo repositories.LoanRepository) *MetricsService {
	return &MetricsService{
		userRepo: userRepo,
		loanRepo: loanRepo,
	}
}

// AdminMetrics represents aggregated system counts
type AdminMetrics struct {
	Customers int64 `json:"customers"`
	Analysts  int64 `json:"analysts"`
	Admins    int64 `json:"admins"`
	Loans     int64 `json:"loans"`
	Submitted int64 `json:"submitted"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
}

// GetAdminMetrics returns user counts by role and loan totals with a
// status breakdown
func (s *MetricsService) GetAdminMetrics(ctx context.Context) (*AdminMetrics, error) {
	metrics := &AdminMetrics{}

	var err error
	if metrics.Customers, err = s.userRepo.CountByRole(ctx, string(domain.RoleCustomer)); err != nil {
		return nil, err
	}
	if metrics.Analysts, err = s.userRepo.CountByRole(ctx, string(domain.RoleAnalyst)); err != nil {
		return nil, err
	}
	if metrics.Admins, err = s.userRepo.CountByRole(ctx, string(domain.RoleAdmin)); err != nil {
		return nil, err
	}
	if metrics.Loans, err = s.loanRepo.Count(ctx); err != nil {
		return nil, err
	}
	if metrics.Submitted, err = s.loanRepo.CountByStatus(ctx, string(domain.StatusSubmitted)); err != nil {
		return nil, err
	}
	if metrics.Approved, err = s.loanRepo.CountByStatus(ctx, string(domain.StatusApproved)); err != nil {
		return nil, err
	}
	if metrics.Rejected, err = s.loanRepo.CountByStatus(ctx, string(domain.StatusRejected)); err != nil {
		return nil, err
	}

	return metrics, nil
}
