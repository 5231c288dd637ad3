package models

import (
	"time"

	"gorm.io/gorm"

	"loandesk/internal/core/domain"
)

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'CUSTOMER'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	FullName  string         `gorm:"size:100" json:"full_name"`
	Email     string         `gorm:"size:100" json:"email"`
	Phone     string         `gorm:"size:30" json:"phone"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// DomainRole returns the user's role as a closed domain value.
// Records loaded with an empty or unknown role fall back to CUSTOMER.
func (u *User) DomainRole() domain.Role {
	role, err := domain.ParseRole(u.Role)
	if err != nil {
		return domain.RoleCustomer
	}
	return role
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.DomainRole()),
		IsActive:  u.IsActive,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// LoanApplication represents loan_applications table.
// Eligibility fields (DTI, RiskScore, Decision, InterestRate) are computed
// once at submission and never recomputed.
type LoanApplication struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Reference      string         `gorm:"uniqueIndex;size:50;not null" json:"reference"`
	FullName       string         `gorm:"size:100" json:"full_name"`
	Amount         float64        `gorm:"type:decimal(14,2)" json:"amount"`
	Tenure         int            `json:"tenure"`
	MonthlyIncome  float64        `gorm:"type:decimal(14,2)" json:"monthly_income"`
	MonthlyDebt    float64        `gorm:"type:decimal(14,2)" json:"monthly_debt"`
	CreditScore    int            `json:"credit_score"`
	EmploymentType string         `gorm:"size:30" json:"employment_type"`
	Purpose        string         `gorm:"size:255" json:"purpose"`
	DTI            float64        `gorm:"column:dti" json:"dti"`
	RiskScore      int            `json:"risk_score"`
	Decision       string         `gorm:"size:20" json:"decision"`
	InterestRate   float64        `gorm:"type:decimal(5,2)" json:"interest_rate"`
	Status         string         `gorm:"size:20;index;default:'SUBMITTED'" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanApplication) TableName() string {
	return "loan_applications"
}

// AutoMigrate creates/updates database tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&LoanApplication{},
	)
}
