package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/config"
	"loandesk/internal/core/domain"
	"loandesk/internal/pkg/jwt"
	"loandesk/internal/pkg/password"
)

// AuthService handles registration, credential verification, and token
// issuance
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult represents a successful authentication
type LoginResult struct {
	Token string               `json:"token"`
	User  *models.UserResponse `json:"user"`
}

// Register creates a new user with the default CUSTOMER role
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || strings.TrimSpace(input.Password) == "" {
		return nil, domain.ErrInvalidInput
	}

	// Advisory pre-check; the unique index on username is the final authority
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUsernameTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     string(domain.RoleCustomer),
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Concurrent registration can slip past the pre-check and hit the
		// unique index instead
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Username)
	return user, nil
}

// Login validates credentials and issues a signed token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(
		user.Username,
		string(user.DomainRole()),
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpirationMs,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Username)

	return &LoginResult{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
