package domain

import (
	"strings"
	"time"
)

// Role represents user role in the system
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleAnalyst  Role = "ANALYST"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole maps a wire string to a known role.
// Unknown values are rejected so a tampered or stale claim never widens
// into a valid role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleAnalyst:
		return RoleAnalyst, nil
	case RoleCustomer:
		return RoleCustomer, nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string {
	return string(r)
}

// LoanStatus represents lifecycle state of a loan application
type LoanStatus string

const (
	StatusSubmitted LoanStatus = "SUBMITTED"
	StatusApproved  LoanStatus = "APPROVED"
	StatusRejected  LoanStatus = "REJECTED"
)

// ParseLoanStatus maps a wire string to a known status
func ParseLoanStatus(s string) (LoanStatus, error) {
	switch LoanStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusSubmitted:
		return StatusSubmitted, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	}
	return "", ErrInvalidLoanStatus
}

// IsFinal reports whether the status is terminal
func (s LoanStatus) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Eligibility decisions
const (
	DecisionEligible = "ELIGIBLE"
	DecisionReview   = "REVIEW"
	DecisionReject   = "REJECT"
)

// Principal represents the authenticated identity resolved for one request.
// Role and active status come from the user store at request time, never
// from the token claims.
type Principal struct {
	UserID   uint
	Username string
	Role     Role
}

// HasRole reports whether the principal holds one of the given roles
func (p *Principal) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// User represents a user in the domain layer
type User struct {
	ID        uint
	Username  string
	Password  string // Hashed
	Role      Role
	IsActive  bool
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
