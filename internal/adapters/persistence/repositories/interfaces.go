package repositories

import (
	"context"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/pkg/pagination"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	FindByRole(ctx context.Context, role string) ([]*models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// LoanRepository defines loan application repository interface
type LoanRepository interface {
	Create(ctx context.Context, loan *models.LoanApplication) error
	GetByID(ctx context.Context, id uint) (*models.LoanApplication, error)
	Update(ctx context.Context, loan *models.LoanApplication) error
	List(ctx context.Context, params *pagination.Params) ([]*models.LoanApplication, int64, error)
	ListByStatus(ctx context.Context, status string, params *pagination.Params) ([]*models.LoanApplication, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
