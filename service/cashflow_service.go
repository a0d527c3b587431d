package service

import (
	"fmt"
	"math"

	"realestate-api/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals, halves away from zero.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// CashFlowService validates calculation requests and runs the cash-flow
// pipeline. It holds no state; every call is independent.
type CashFlowService struct{}

// NewCashFlowService creates a new CashFlowService.
func NewCashFlowService() *CashFlowService {
	return &CashFlowService{}
}

// Calculate validates the raw request and computes the cash-flow figures.
// On invalid input it returns a *domain.ValidationError listing every
// violated field.
func (s *CashFlowService) Calculate(req domain.CashFlowRequest) (domain.CashFlowResult, error) {
	input, err := s.Validate(req)
	if err != nil {
		return domain.CashFlowResult{}, err
	}
	return s.Compute(input), nil
}

// Validate checks every declared constraint and collects all violations
// instead of stopping at the first one.
func (s *CashFlowService) Validate(req domain.CashFlowRequest) (domain.CashFlowInput, error) {
	verr := &domain.ValidationError{}

	var input domain.CashFlowInput

	if req.PropertyPrice == nil {
		verr.Add("property_price", "field is required")
	} else if *req.PropertyPrice <= 0 {
		verr.Add("property_price", "must be greater than 0")
	} else {
		input.PropertyPrice = *req.PropertyPrice
	}

	if req.LoanAmount == nil {
		verr.Add("loan_amount", "field is required")
	} else if *req.LoanAmount < 0 {
		verr.Add("loan_amount", "must not be negative")
	} else {
		input.LoanAmount = *req.LoanAmount
	}

	if req.LoanTermYears == nil {
		verr.Add("loan_term_years", "field is required")
	} else if *req.LoanTermYears < MinLoanTermYears || *req.LoanTermYears > MaxLoanTermYears {
		verr.Add("loan_term_years", fmt.Sprintf("must be between %d and %d", MinLoanTermYears, MaxLoanTermYears))
	} else {
		input.LoanTermYears = *req.LoanTermYears
	}

	if req.InterestRate == nil {
		verr.Add("interest_rate", "field is required")
	} else if *req.InterestRate <= 0 || *req.InterestRate > MaxInterestRate {
		verr.Add("interest_rate", fmt.Sprintf("must be greater than 0 and at most %.0f", MaxInterestRate))
	} else {
		input.InterestRate = *req.InterestRate
	}

	if req.MonthlyRent == nil {
		verr.Add("monthly_rent", "field is required")
	} else if *req.MonthlyRent < 0 {
		verr.Add("monthly_rent", "must not be negative")
	} else {
		input.MonthlyRent = *req.MonthlyRent
	}

	if req.UnitCount == nil {
		verr.Add("unit_count", "field is required")
	} else if *req.UnitCount <= 0 {
		verr.Add("unit_count", "must be greater than 0")
	} else {
		input.UnitCount = *req.UnitCount
	}

	if req.VacancyRate == nil {
		verr.Add("vacancy_rate", "field is required")
	} else if *req.VacancyRate < 0 || *req.VacancyRate > MaxVacancyRate {
		verr.Add("vacancy_rate", fmt.Sprintf("must be between 0 and %.0f", MaxVacancyRate))
	} else {
		input.VacancyRate = *req.VacancyRate
	}

	input.ManagementFeeRate = DefaultManagementFeeRate
	if req.ManagementFeeRate != nil {
		if *req.ManagementFeeRate < 0 || *req.ManagementFeeRate > MaxManagementFeeRate {
			verr.Add("management_fee_rate", fmt.Sprintf("must be between 0 and %.0f", MaxManagementFeeRate))
		} else {
			input.ManagementFeeRate = *req.ManagementFeeRate
		}
	}

	if req.InsuranceMonthly != nil {
		if *req.InsuranceMonthly < 0 {
			verr.Add("insurance_monthly", "must not be negative")
		} else {
			input.InsuranceMonthly = *req.InsuranceMonthly
		}
	}

	if req.MaintenanceMonthly != nil {
		if *req.MaintenanceMonthly < 0 {
			verr.Add("maintenance_monthly", "must not be negative")
		} else {
			input.MaintenanceMonthly = *req.MaintenanceMonthly
		}
	}

	if req.CommonAreaUtilitiesMonthly != nil {
		if *req.CommonAreaUtilitiesMonthly < 0 {
			verr.Add("common_area_utilities_monthly", "must not be negative")
		} else {
			input.CommonAreaUtilitiesMonthly = *req.CommonAreaUtilitiesMonthly
		}
	}

	if req.TaxRate != nil {
		if *req.TaxRate < 0 || *req.TaxRate > MaxTaxRate {
			verr.Add("tax_rate", fmt.Sprintf("must be between 0 and %.0f", MaxTaxRate))
		} else {
			input.TaxRate = *req.TaxRate
		}
	}

	if verr.HasErrors() {
		return domain.CashFlowInput{}, verr
	}
	return input, nil
}

// Compute runs the cash-flow pipeline over validated input. Pure and
// deterministic; the same input always yields the same output.
func (s *CashFlowService) Compute(input domain.CashFlowInput) domain.CashFlowResult {

	// Net operating income
	totalMonthlyRent := input.MonthlyRent * float64(input.UnitCount)
	effectiveMonthlyRent := totalMonthlyRent * (1 - input.VacancyRate/100)
	vacancyLoss := totalMonthlyRent - effectiveMonthlyRent

	monthlyManagementFee := effectiveMonthlyRent * (input.ManagementFeeRate / 100)

	monthlyNOI := effectiveMonthlyRent -
		monthlyManagementFee -
		input.InsuranceMonthly -
		input.MaintenanceMonthly -
		input.CommonAreaUtilitiesMonthly
	annualNOI := monthlyNOI * 12

	// Loan payment via the standard annuity formula. A zero loan amount or
	// a zero monthly rate collapses the payment to 0; the zero-rate case is
	// kept as-is even though it undercounts principal-only repayment.
	monthlyInterestRate := (input.InterestRate / 100) / 12
	numPayments := float64(input.LoanTermYears * 12)

	var monthlyLoanPayment float64
	if input.LoanAmount > 0 && monthlyInterestRate > 0 {
		growth := math.Pow(1+monthlyInterestRate, numPayments)
		monthlyLoanPayment = input.LoanAmount * (monthlyInterestRate * growth) / (growth - 1)
	}
	annualLoanPayment := monthlyLoanPayment * 12

	// Before-tax cash flow
	annualBTCF := annualNOI - annualLoanPayment
	monthlyBTCF := annualBTCF / 12

	// After-tax cash flow; tax is not clamped, so a negative BTCF yields a
	// negative tax
	annualTax := annualBTCF * (input.TaxRate / 100)
	annualATCF := annualBTCF - annualTax
	monthlyATCF := annualATCF / 12

	breakdown := map[string]float64{
		"total_monthly_rent":     totalMonthlyRent,
		"vacancy_loss":           vacancyLoss,
		"effective_monthly_rent": effectiveMonthlyRent,
		"management_fee":         monthlyManagementFee,
		"insurance":              input.InsuranceMonthly,
		"maintenance":            input.MaintenanceMonthly,
		"common_area_utilities":  input.CommonAreaUtilitiesMonthly,
		"monthly_noi":            monthlyNOI,
		"annual_noi":             annualNOI,
		"monthly_loan_payment":   monthlyLoanPayment,
		"annual_loan_payment":    annualLoanPayment,
		"monthly_btcf":           monthlyBTCF,
		"annual_btcf":            annualBTCF,
		"annual_tax":             annualTax,
		"monthly_atcf":           monthlyATCF,
		"annual_atcf":            annualATCF,
	}
	for k, v := range breakdown {
		breakdown[k] = roundTo2Decimals(v)
	}

	return domain.CashFlowResult{
		NOI:                roundTo2Decimals(annualNOI),
		BTCF:               roundTo2Decimals(annualBTCF),
		ATCF:               roundTo2Decimals(annualATCF),
		MonthlyNOI:         roundTo2Decimals(monthlyNOI),
		MonthlyBTCF:        roundTo2Decimals(monthlyBTCF),
		MonthlyATCF:        roundTo2Decimals(monthlyATCF),
		AnnualLoanPayment:  roundTo2Decimals(annualLoanPayment),
		MonthlyLoanPayment: roundTo2Decimals(monthlyLoanPayment),
		AnnualTax:          roundTo2Decimals(annualTax),
		Breakdown:          breakdown,
	}
}
