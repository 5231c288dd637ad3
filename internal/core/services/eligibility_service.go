package services

import (
	"math"
	"strings"

	"loandesk/internal/core/domain"
)

// EligibilityInput carries the applicant attributes used for scoring.
// Missing numeric values are taken as zero; a missing employment type
// falls into the least favorable band.
type EligibilityInput struct {
	Amount         float64
	Tenure         int
	MonthlyIncome  float64
	MonthlyDebt    float64
	CreditScore    int
	EmploymentType string
	Purpose        string
}

// EligibilityResult holds the computed scoring output
type EligibilityResult struct {
	DTI             float64
	RiskScore       int
	Decision        string
	RecommendedRate float64
}

// EligibilityService performs rule-based eligibility scoring using credit
// score, DTI, and employment type. Evaluate has no side effects and is
// deterministic: identical inputs always yield identical outputs.
type EligibilityService struct{}

// NewEligibilityService creates a new eligibility service
func NewEligibilityService() *EligibilityService {
	return &EligibilityService{}
}

// Evaluate computes DTI, risk score, decision, and an interest rate estimate
func (s *EligibilityService) Evaluate(input *EligibilityInput) *EligibilityResult {
	dti := 1.0
	if input.MonthlyIncome > 0 {
		dti = input.MonthlyDebt / input.MonthlyIncome
	}

	risk := 0

	// Credit score impact
	switch {
	case input.CreditScore >= 760:
		risk += 10
	case input.CreditScore >= 700:
		risk += 25
	case input.CreditScore >= 650:
		risk += 45
	default:
		risk += 70
	}

	// DTI impact
	switch {
	case dti <= 0.25:
		risk += 5
	case dti <= 0.35:
		risk += 15
	case dti <= 0.50:
		risk += 35
	default:
		risk += 55
	}

	// Employment impact
	switch strings.ToUpper(strings.TrimSpace(input.EmploymentType)) {
	case "SALARIED":
		risk += 5
	case "SELF_EMPLOYED":
		risk += 15
	case "STUDENT":
		risk += 25
	default:
		risk += 35
	}

	if risk > 100 {
		risk = 100
	}
	if risk < 0 {
		risk = 0
	}

	// The decision is derived from the raw credit score and DTI thresholds,
	// not from the accumulated risk score.
	var decision string
	switch {
	case input.CreditScore < 600 || dti > 0.60:
		decision = domain.DecisionReject
	case input.CreditScore < 680 || dti > 0.45:
		decision = domain.DecisionReview
	default:
		decision = domain.DecisionEligible
	}

	// Base rate plus a risk premium, rounded half-up to one decimal place
	rate := math.Round((8.5+float64(risk)*0.05)*10.0) / 10.0

	return &EligibilityResult{
		DTI:             dti,
		RiskScore:       risk,
		Decision:        decision,
		RecommendedRate: rate,
	}
}
