package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/core/domain"
	"loandesk/internal/pkg/pagination"
)

// LoanService handles loan application business logic
type LoanService struct {
	loanRepo    repositories.LoanRepository
	eligibility *EligibilityService
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repositories.LoanRepository, eligibility *EligibilityService) *LoanService {
	return &LoanService{
		loanRepo:    loanRepo,
		eligibility: eligibility,
	}
}

// ApplyInput represents a loan application submission
type ApplyInput struct {
	FullName       string  `json:"full_name"`
	Amount         float64 `json:"amount"`
	Tenure         int     `json:"tenure"`
	MonthlyIncome  float64 `json:"monthly_income"`
	MonthlyDebt    float64 `json:"monthly_debt"`
	CreditScore    int     `json:"credit_score"`
	EmploymentType string  `json:"employment_type"`
	Purpose        string  `json:"purpose"`
}

// Apply scores a new application and persists it in SUBMITTED state.
// Eligibility fields are computed exactly once, here.
func (s *LoanService) Apply(ctx context.Context, input *ApplyInput) (*models.LoanApplication, error) {
	eval := s.eligibility.Evaluate(&EligibilityInput{
		Amount:         input.Amount,
		Tenure:         input.Tenure,
		MonthlyIncome:  input.MonthlyIncome,
		MonthlyDebt:    input.MonthlyDebt,
		CreditScore:    input.CreditScore,
		EmploymentType: input.EmploymentType,
		Purpose:        input.Purpose,
	})

	loan := &models.LoanApplication{
		Reference:      "APP-" + uuid.New().String(),
		FullName:       input.FullName,
		Amount:         input.Amount,
		Tenure:         input.Tenure,
		MonthlyIncome:  input.MonthlyIncome,
		MonthlyDebt:    input.MonthlyDebt,
		CreditScore:    input.CreditScore,
		EmploymentType: input.EmploymentType,
		Purpose:        input.Purpose,
		DTI:            eval.DTI,
		RiskScore:      eval.RiskScore,
		Decision:       eval.Decision,
		InterestRate:   eval.RecommendedRate,
		Status:         string(domain.StatusSubmitted),
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("✅ Loan application created: %s [decision=%s risk=%d]", loan.Reference, loan.Decision, loan.RiskScore)
	return loan, nil
}

// GetByID returns a single loan application
func (s *LoanService) GetByID(ctx context.Context, id uint) (*models.LoanApplication, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	return loan, nil
}

// List returns loan applications with paging, sorting, and an optional
// status filter
func (s *LoanService) List(ctx context.Context, status string, params *pagination.Params) ([]*models.LoanApplication, int64, error) {
	if status == "" {
		return s.loanRepo.List(ctx, params)
	}

	parsed, err := domain.ParseLoanStatus(status)
	if err != nil {
		return nil, 0, err
	}
	return s.loanRepo.ListByStatus(ctx, string(parsed), params)
}

// Approve transitions an application to APPROVED
func (s *LoanService) Approve(ctx context.Context, id uint) (*models.LoanApplication, error) {
	return s.transition(ctx, id, domain.StatusApproved)
}

// Reject transitions an application to REJECTED
func (s *LoanService) Reject(ctx context.Context, id uint) (*models.LoanApplication, error) {
	return s.transition(ctx, id, domain.StatusRejected)
}

// transition flips the lifecycle state without re-scoring. Terminal states
// are immutable: a second approve/reject on the same application fails.
func (s *LoanService) transition(ctx context.Context, id uint, target domain.LoanStatus) (*models.LoanApplication, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}

	current, err := domain.ParseLoanStatus(loan.Status)
	if err == nil && current.IsFinal() {
		return nil, domain.ErrLoanFinalized
	}

	loan.Status = string(target)
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	log.Printf("✅ Loan %s status changed to %s", loan.Reference, target)
	return loan, nil
}
