package services

import (
	"context"
	"errors"
	"testing"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/core/domain"
)

func seededUserRepo() *stubUserRepo {
	repo := newStubUserRepo()
	repo.users["alice"] = &models.User{ID: 1, Username: "alice", Role: "CUSTOMER", IsActive: true}
	repo.users["bob"] = &models.User{ID: 2, Username: "bob", Role: "ANALYST", IsActive: true}
	repo.nextID = 3
	return repo
}

func TestUserService_UpdateRole(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo)

	updated, err := svc.UpdateRole(context.Background(), 1, "analyst")
	if err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	if updated.Role != string(domain.RoleAnalyst) {
		t.Fatalf("expected ANALYST, got %s", updated.Role)
	}

	stored, _ := repo.GetByUsername(context.Background(), "alice")
	if stored.Role != string(domain.RoleAnalyst) {
		t.Fatalf("role change not persisted, got %s", stored.Role)
	}
}

func TestUserService_UpdateRole_UnknownRoleRejected(t *testing.T) {
	svc := NewUserService(seededUserRepo())

	if _, err := svc.UpdateRole(context.Background(), 1, "SUPERUSER"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc := NewUserService(seededUserRepo())

	if _, err := svc.UpdateRole(context.Background(), 404, "ADMIN"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateActive(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo)

	updated, err := svc.UpdateActive(context.Background(), 2, false)
	if err != nil {
		t.Fatalf("UpdateActive returned error: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected user to be deactivated")
	}

	stored, _ := repo.GetByUsername(context.Background(), "bob")
	if stored.IsActive {
		t.Fatalf("active flag change not persisted")
	}
}

func TestUserService_ListByRole(t *testing.T) {
	svc := NewUserService(seededUserRepo())

	analysts, err := svc.ListByRole(context.Background(), "ANALYST")
	if err != nil {
		t.Fatalf("ListByRole returned error: %v", err)
	}
	if len(analysts) != 1 || analysts[0].Username != "bob" {
		t.Fatalf("unexpected analysts: %+v", analysts)
	}

	all, err := svc.ListByRole(context.Background(), "")
	if err != nil {
		t.Fatalf("ListByRole returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}

	if _, err := svc.ListByRole(context.Background(), "WIZARD"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for unknown filter, got %v", err)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := seededUserRepo()
	svc := NewUserService(repo)

	updated, err := svc.UpdateProfile(context.Background(), 1, &UpdateProfileInput{
		FullName: "  Alice Liddell ",
		Email:    "alice@example.com",
		Phone:    "555-0100",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.FullName != "Alice Liddell" {
		t.Fatalf("expected trimmed full name, got %q", updated.FullName)
	}
	if updated.Email != "alice@example.com" || updated.Phone != "555-0100" {
		t.Fatalf("unexpected profile: %+v", updated)
	}
}

func TestMetricsService_Counts(t *testing.T) {
	userRepo := seededUserRepo()
	loanRepo := newStubLoanRepo()
	loanSvc := NewLoanService(loanRepo, NewEligibilityService())

	first, _ := loanSvc.Apply(context.Background(), &ApplyInput{MonthlyIncome: 5000, MonthlyDebt: 500, CreditScore: 750})
	_, _ = loanSvc.Apply(context.Background(), &ApplyInput{MonthlyIncome: 5000, MonthlyDebt: 500, CreditScore: 750})
	_, _ = loanSvc.Approve(context.Background(), first.ID)

	metrics, err := NewMetricsService(userRepo, loanRepo).GetAdminMetrics(context.Background())
	if err != nil {
		t.Fatalf("GetAdminMetrics returned error: %v", err)
	}

	if metrics.Customers != 1 || metrics.Analysts != 1 || metrics.Admins != 0 {
		t.Fatalf("unexpected role counts: %+v", metrics)
	}
	if metrics.Loans != 2 || metrics.Approved != 1 || metrics.Submitted != 1 || metrics.Rejected != 0 {
		t.Fatalf("unexpected loan counts: %+v", metrics)
	}
}
