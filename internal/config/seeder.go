package config

import (
	"log"

	"gorm.io/gorm"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/core/domain"
	"loandesk/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run seeds the default accounts used for local development and demos
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	seeds := []struct {
		username string
		rawPass  string
		role     domain.Role
	}{
		{"admin", "admin123", domain.RoleAdmin},
		{"analyst", "analyst123", domain.RoleAnalyst},
		{"customer", "customer123", domain.RoleCustomer},
	}

	for _, seed := range seeds {
		if err := s.createUserIfMissing(seed.username, seed.rawPass, seed.role); err != nil {
			log.Printf("⚠️ Seeder skipped for %s: %v", seed.username, err)
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// createUserIfMissing creates a user only when the username is not present
func (s *Seeder) createUserIfMissing(username, rawPassword string, role domain.Role) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     string(role),
		IsActive: true,
	}

	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded user: %s [%s]", username, role)
	return nil
}
