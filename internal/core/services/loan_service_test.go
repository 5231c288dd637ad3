package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/core/domain"
	"loandesk/internal/pkg/pagination"
)

type stubLoanRepo struct {
	loans  map[uint]*models.LoanApplication
	nextID uint
}

func newStubLoanRepo() *stubLoanRepo {
	return &stubLoanRepo{loans: make(map[uint]*models.LoanApplication), nextID: 1}
}

func cloneLoan(l *models.LoanApplication) *models.LoanApplication {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}

func (r *stubLoanRepo) Create(_ context.Context, loan *models.LoanApplication) error {
	loan.ID = r.nextID
	r.nextID++
	r.loans[loan.ID] = cloneLoan(loan)
	return nil
}

func (r *stubLoanRepo) GetByID(_ context.Context, id uint) (*models.LoanApplication, error) {
	if l, ok := r.loans[id]; ok {
		return cloneLoan(l), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLoanRepo) Update(_ context.Context, loan *models.LoanApplication) error {
	if _, ok := r.loans[loan.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.loans[loan.ID] = cloneLoan(loan)
	return nil
}

func (r *stubLoanRepo) List(_ context.Context, _ *pagination.Params) ([]*models.LoanApplication, int64, error) {
	var loans []*models.LoanApplication
	for _, l := range r.loans {
		loans = append(loans, cloneLoan(l))
	}
	return loans, int64(len(loans)), nil
}

func (r *stubLoanRepo) ListByStatus(_ context.Context, status string, _ *pagination.Params) ([]*models.LoanApplication, int64, error) {
	var loans []*models.LoanApplication
	for _, l := range r.loans {
		if l.Status == status {
			loans = append(loans, cloneLoan(l))
		}
	}
	return loans, int64(len(loans)), nil
}

func (r *stubLoanRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.loans)), nil
}

func (r *stubLoanRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, l := range r.loans {
		if l.Status == status {
			count++
		}
	}
	return count, nil
}

func newTestLoanService() (*LoanService, *stubLoanRepo) {
	repo := newStubLoanRepo()
	return NewLoanService(repo, NewEligibilityService()), repo
}

func TestLoanService_Apply_ScoresAndSubmits(t *testing.T) {
	svc, repo := newTestLoanService()

	loan, err := svc.Apply(context.Background(), &ApplyInput{
		FullName:       "Grace Field",
		Amount:         25000,
		Tenure:         36,
		MonthlyIncome:  5000,
		MonthlyDebt:    1500,
		CreditScore:    720,
		EmploymentType: "SALARIED",
		Purpose:        "home improvement",
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if loan.Status != string(domain.StatusSubmitted) {
		t.Fatalf("expected SUBMITTED status, got %s", loan.Status)
	}
	if loan.Decision != domain.DecisionEligible {
		t.Fatalf("expected ELIGIBLE decision, got %s", loan.Decision)
	}
	if loan.RiskScore != 45 {
		t.Fatalf("expected risk 45, got %d", loan.RiskScore)
	}
	if loan.Reference == "" {
		t.Fatalf("expected a reference to be assigned")
	}

	stored, err := repo.GetByID(context.Background(), loan.ID)
	if err != nil {
		t.Fatalf("loan not persisted: %v", err)
	}
	if stored.InterestRate != loan.InterestRate {
		t.Fatalf("persisted rate %v does not match %v", stored.InterestRate, loan.InterestRate)
	}
}

func TestLoanService_Approve_Once(t *testing.T) {
	svc, _ := newTestLoanService()

	loan, err := svc.Apply(context.Background(), &ApplyInput{MonthlyIncome: 5000, MonthlyDebt: 500, CreditScore: 750})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	approved, err := svc.Approve(context.Background(), loan.ID)
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.Status != string(domain.StatusApproved) {
		t.Fatalf("expected APPROVED, got %s", approved.Status)
	}

	// Scoring fields are untouched by the transition
	if approved.Decision != loan.Decision || approved.RiskScore != loan.RiskScore {
		t.Fatalf("transition must not re-score the application")
	}
}

func TestLoanService_Transition_TerminalStateIsImmutable(t *testing.T) {
	svc, repo := newTestLoanService()

	loan, err := svc.Apply(context.Background(), &ApplyInput{MonthlyIncome: 5000, MonthlyDebt: 500, CreditScore: 750})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if _, err := svc.Approve(context.Background(), loan.ID); err != nil {
		t.Fatalf("first approve failed: %v", err)
	}

	// A finalized application never flips state again, in either direction
	if _, err := svc.Reject(context.Background(), loan.ID); !errors.Is(err, domain.ErrLoanFinalized) {
		t.Fatalf("expected ErrLoanFinalized on reject after approve, got %v", err)
	}
	if _, err := svc.Approve(context.Background(), loan.ID); !errors.Is(err, domain.ErrLoanFinalized) {
		t.Fatalf("expected ErrLoanFinalized on second approve, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), loan.ID)
	if stored.Status != string(domain.StatusApproved) {
		t.Fatalf("terminal state must never revert, got %s", stored.Status)
	}
}

func TestLoanService_Transition_NotFound(t *testing.T) {
	svc, _ := newTestLoanService()

	if _, err := svc.Approve(context.Background(), 404); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), 404); !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound, got %v", err)
	}
}

func TestLoanService_List_InvalidStatus(t *testing.T) {
	svc, _ := newTestLoanService()

	if _, _, err := svc.List(context.Background(), "PENDING", &pagination.Params{Page: 1, Size: 10}); !errors.Is(err, domain.ErrInvalidLoanStatus) {
		t.Fatalf("expected ErrInvalidLoanStatus, got %v", err)
	}
}

func TestLoanService_List_StatusFilter(t *testing.T) {
	svc, _ := newTestLoanService()

	first, _ := svc.Apply(context.Background(), &ApplyInput{MonthlyIncome: 5000, MonthlyDebt: 500, CreditScore: 750})
	if _, err := svc.Apply(context.Background(), &ApplyInput{MonthlyIncome: 5000, MonthlyDebt: 500, CreditScore: 750}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if _, err := svc.Approve(context.Background(), first.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	approved, total, err := svc.List(context.Background(), "approved", &pagination.Params{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(approved) != 1 {
		t.Fatalf("expected one approved loan, got %d", total)
	}
}
