package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrInvalidRole        = errors.New("invalid role")
)

// User errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserInactive  = errors.New("user account is inactive")
)

// Loan errors
var (
	ErrLoanNotFound      = errors.New("loan application not found")
	ErrLoanFinalized     = errors.New("loan application already finalized")
	ErrInvalidLoanStatus = errors.New("invalid loan status")
)
