package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/pkg/pagination"
)

// sortableLoanColumns whitelists columns accepted from the sortBy query
// parameter. Anything else falls back to created_at.
var sortableLoanColumns = map[string]bool{
	"id":            true,
	"created_at":    true,
	"amount":        true,
	"credit_score":  true,
	"risk_score":    true,
	"interest_rate": true,
	"status":        true,
}

// loanRepository implements LoanRepository interface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create creates a new loan application
func (r *loanRepository) Create(ctx context.Context, loan *models.LoanApplication) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByID gets a loan application by ID
func (r *loanRepository) GetByID(ctx context.Context, id uint) (*models.LoanApplication, error) {
	var loan models.LoanApplication
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// Update updates a loan application
func (r *loanRepository) Update(ctx context.Context, loan *models.LoanApplication) error {
	return r.db.WithContext(ctx).Save(loan).Error
}

// List lists loan applications with pagination and sorting
func (r *loanRepository) List(ctx context.Context, params *pagination.Params) ([]*models.LoanApplication, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&models.LoanApplication{}), params)
}

// ListByStatus lists loan applications filtered by status
func (r *loanRepository) ListByStatus(ctx context.Context, status string, params *pagination.Params) ([]*models.LoanApplication, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.LoanApplication{}).Where("status = ?", status)
	return r.list(ctx, query, params)
}

func (r *loanRepository) list(ctx context.Context, query *gorm.DB, params *pagination.Params) ([]*models.LoanApplication, int64, error) {
	var loans []*models.LoanApplication
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := params.SortBy
	if !sortableLoanColumns[column] {
		column = "created_at"
	}
	direction := "desc"
	if params.Direction == "asc" {
		direction = "asc"
	}
	order := fmt.Sprintf("%s %s", column, direction)

	if err := query.Order(order).Offset(params.Offset).Limit(params.Size).Find(&loans).Error; err != nil {
		return nil, 0, err
	}

	return loans, total, nil
}

// Count counts all loan applications
func (r *loanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LoanApplication{}).Count(&count).Error
	return count, err
}

// CountByStatus counts loan applications with the given status
func (r *loanRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LoanApplication{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
