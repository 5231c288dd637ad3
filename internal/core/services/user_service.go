package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/core/domain"
)

// UserService handles user administration and profile business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListByRole returns users, optionally filtered by role
func (s *UserService) ListByRole(ctx context.Context, role string) ([]*models.UserResponse, error) {
	var users []*models.User
	var err error

	if role == "" {
		users, _, err = s.userRepo.List(ctx, 0, 1000)
	} else {
		parsed, perr := domain.ParseRole(role)
		if perr != nil {
			return nil, perr
		}
		users, err = s.userRepo.FindByRole(ctx, string(parsed))
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}
	return responses, nil
}

// UpdateRole changes a user's role. Takes effect on the user's next
// request since roles are re-resolved from the store, not from tokens.
func (s *UserService) UpdateRole(ctx context.Context, id uint, role string) (*models.UserResponse, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = string(parsed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Role updated: %s is now %s", user.Username, parsed)
	return user.ToResponse(), nil
}

// UpdateActive enables or disables an account without deleting it.
// Deactivation locks out existing tokens on their next use.
func (s *UserService) UpdateActive(ctx context.Context, id uint, active bool) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Active flag updated: %s active=%v", user.Username, active)
	return user.ToResponse(), nil
}

// GetProfile returns the profile for the given user
func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateProfileInput represents profile update input
type UpdateProfileInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UpdateProfile updates the caller's own display fields
func (s *UserService) UpdateProfile(ctx context.Context, id uint, input *UpdateProfileInput) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(input.FullName)
	user.Email = strings.TrimSpace(input.Email)
	user.Phone = strings.TrimSpace(input.Phone)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *UserService) getUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
