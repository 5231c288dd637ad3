package services

import (
	"math"
	"testing"

	"loandesk/internal/core/domain"
)

func TestEligibility_Evaluate_Nominal(t *testing.T) {
	svc := NewEligibilityService()

	result := svc.Evaluate(&EligibilityInput{
		MonthlyIncome:  5000,
		MonthlyDebt:    1500,
		CreditScore:    720,
		EmploymentType: "SALARIED",
	})

	if math.Abs(result.DTI-0.30) > 1e-9 {
		t.Fatalf("expected dti 0.30, got %v", result.DTI)
	}
	// credit 720 gives 25, dti 0.30 gives 15, salaried gives 5
	if result.RiskScore != 45 {
		t.Fatalf("expected risk score 45, got %d", result.RiskScore)
	}
	if result.Decision != domain.DecisionEligible {
		t.Fatalf("expected ELIGIBLE, got %s", result.Decision)
	}
	// 8.5 + 45*0.05 = 10.75, rounded half-up to 10.8
	if result.RecommendedRate != 10.8 {
		t.Fatalf("expected rate 10.8, got %v", result.RecommendedRate)
	}
}

func TestEligibility_Evaluate_Deterministic(t *testing.T) {
	svc := NewEligibilityService()
	input := &EligibilityInput{
		MonthlyIncome:  4200,
		MonthlyDebt:    2100,
		CreditScore:    655,
		EmploymentType: " self_employed ",
	}

	first := svc.Evaluate(input)
	second := svc.Evaluate(input)

	if *first != *second {
		t.Fatalf("identical inputs produced different outputs: %+v vs %+v", first, second)
	}
}

func TestEligibility_Evaluate_ZeroIncome(t *testing.T) {
	svc := NewEligibilityService()

	result := svc.Evaluate(&EligibilityInput{
		MonthlyIncome: 0,
		MonthlyDebt:   500,
		CreditScore:   800,
	})

	if result.DTI != 1.0 {
		t.Fatalf("expected dti 1.0 for zero income, got %v", result.DTI)
	}
	if result.Decision != domain.DecisionReject {
		t.Fatalf("expected REJECT for dti 1.0, got %s", result.Decision)
	}
}

func TestEligibility_Evaluate_LowCreditAlwaysRejects(t *testing.T) {
	svc := NewEligibilityService()

	// Credit 599 rejects regardless of a perfect DTI
	result := svc.Evaluate(&EligibilityInput{
		MonthlyIncome:  10000,
		MonthlyDebt:    100,
		CreditScore:    599,
		EmploymentType: "SALARIED",
	})

	if result.Decision != domain.DecisionReject {
		t.Fatalf("expected REJECT for credit 599, got %s", result.Decision)
	}
}

func TestEligibility_Evaluate_HighDTIAlwaysRejects(t *testing.T) {
	svc := NewEligibilityService()

	// DTI 0.61 rejects even with an excellent credit score
	result := svc.Evaluate(&EligibilityInput{
		MonthlyIncome:  10000,
		MonthlyDebt:    6100,
		CreditScore:    800,
		EmploymentType: "SALARIED",
	})

	if result.Decision != domain.DecisionReject {
		t.Fatalf("expected REJECT for dti 0.61, got %s", result.Decision)
	}
}

func TestEligibility_Evaluate_ReviewBand(t *testing.T) {
	svc := NewEligibilityService()

	result := svc.Evaluate(&EligibilityInput{
		MonthlyIncome:  5000,
		MonthlyDebt:    1000,
		CreditScore:    660,
		EmploymentType: "SALARIED",
	})

	if result.Decision != domain.DecisionReview {
		t.Fatalf("expected REVIEW for credit 660, got %s", result.Decision)
	}
}

func TestEligibility_Evaluate_RiskBands(t *testing.T) {
	svc := NewEligibilityService()

	tests := []struct {
		name     string
		input    EligibilityInput
		expected int
	}{
		{
			name:     "best case",
			input:    EligibilityInput{MonthlyIncome: 10000, MonthlyDebt: 1000, CreditScore: 780, EmploymentType: "SALARIED"},
			expected: 10 + 5 + 5,
		},
		{
			name:     "unknown employment",
			input:    EligibilityInput{MonthlyIncome: 10000, MonthlyDebt: 1000, CreditScore: 780, EmploymentType: "FREELANCE"},
			expected: 10 + 5 + 35,
		},
		{
			name:     "student with mid credit",
			input:    EligibilityInput{MonthlyIncome: 2000, MonthlyDebt: 900, CreditScore: 650, EmploymentType: "student"},
			expected: 45 + 35 + 25,
		},
		{
			name:     "worst case clamped to 100",
			input:    EligibilityInput{MonthlyIncome: 0, MonthlyDebt: 0, CreditScore: 0, EmploymentType: ""},
			expected: 100,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.Evaluate(&tc.input)
			if result.RiskScore != tc.expected {
				t.Fatalf("expected risk %d, got %d", tc.expected, result.RiskScore)
			}
		})
	}
}
