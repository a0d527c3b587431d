package service

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"realestate-api/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// scenarioRequest is the reference multi-unit building case.
func scenarioRequest() domain.CashFlowRequest {
	return domain.CashFlowRequest{
		PropertyPrice:              fptr(50_000_000),
		LoanAmount:                 fptr(40_000_000),
		LoanTermYears:              iptr(30),
		InterestRate:               fptr(2.5),
		MonthlyRent:                fptr(150_000),
		UnitCount:                  iptr(10),
		VacancyRate:                fptr(5),
		ManagementFeeRate:          fptr(6),
		InsuranceMonthly:           fptr(50_000),
		MaintenanceMonthly:         fptr(100_000),
		CommonAreaUtilitiesMonthly: fptr(30_000),
		TaxRate:                    fptr(20),
	}
}

func TestCalculate_ReferenceScenario(t *testing.T) {

	svc := NewCashFlowService()

	result, err := svc.Calculate(scenarioRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := map[string]float64{
		"total_monthly_rent":     1_500_000,
		"vacancy_loss":           75_000,
		"effective_monthly_rent": 1_425_000,
		"management_fee":         85_500,
		"monthly_noi":            1_159_500,
		"annual_noi":             13_914_000,
	}
	for key, expected := range checks {
		if got := result.Breakdown[key]; got != expected {
			t.Errorf("breakdown[%s]: expected %.2f, got %.2f", key, expected, got)
		}
	}

	if result.MonthlyLoanPayment <= 0 {
		t.Errorf("expected positive monthly loan payment, got %.2f", result.MonthlyLoanPayment)
	}

	// Cross-check the annuity formula independently
	r := 2.5 / 100 / 12
	growth := math.Pow(1+r, 360)
	expectedPayment := 40_000_000 * r * growth / (growth - 1)
	if diff := math.Abs(result.MonthlyLoanPayment - expectedPayment); diff > 0.01 {
		t.Errorf("monthly loan payment: expected %.2f, got %.2f", expectedPayment, result.MonthlyLoanPayment)
	}

	if diff := math.Abs(result.ATCF - (result.BTCF - result.AnnualTax)); diff > 0.01 {
		t.Errorf("atcf should equal btcf - annual tax, got %.2f vs %.2f", result.ATCF, result.BTCF-result.AnnualTax)
	}
	if diff := math.Abs(result.AnnualTax - result.BTCF*0.20); diff > 0.01 {
		t.Errorf("annual tax inconsistent with btcf: %.2f vs %.2f", result.AnnualTax, result.BTCF*0.20)
	}

	if len(result.Breakdown) != 16 {
		t.Errorf("expected 16 breakdown entries, got %d", len(result.Breakdown))
	}
}

func TestCalculate_NOIIdentity(t *testing.T) {

	svc := NewCashFlowService()

	result, err := svc.Calculate(scenarioRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := result.Breakdown
	expected := b["effective_monthly_rent"]*12 -
		b["management_fee"]*12 -
		b["insurance"]*12 -
		b["maintenance"]*12 -
		b["common_area_utilities"]*12

	if diff := math.Abs(result.NOI - expected); diff > 0.01 {
		t.Errorf("noi identity violated: expected %.2f, got %.2f", expected, result.NOI)
	}
}

func TestCalculate_ZeroLoan(t *testing.T) {

	svc := NewCashFlowService()

	req := scenarioRequest()
	req.LoanAmount = fptr(0)

	result, err := svc.Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyLoanPayment != 0 {
		t.Errorf("expected zero monthly loan payment, got %.2f", result.MonthlyLoanPayment)
	}
	if result.AnnualLoanPayment != 0 {
		t.Errorf("expected zero annual loan payment, got %.2f", result.AnnualLoanPayment)
	}
	if result.NOI != result.BTCF {
		t.Errorf("with no loan, noi should equal btcf: %.2f vs %.2f", result.NOI, result.BTCF)
	}
}

func TestCalculate_ZeroVacancy(t *testing.T) {

	svc := NewCashFlowService()

	req := scenarioRequest()
	req.VacancyRate = fptr(0)

	result, err := svc.Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Breakdown["vacancy_loss"] != 0 {
		t.Errorf("expected zero vacancy loss, got %.2f", result.Breakdown["vacancy_loss"])
	}
	if result.Breakdown["effective_monthly_rent"] != result.Breakdown["total_monthly_rent"] {
		t.Errorf("expected effective rent to equal total rent")
	}
}

func TestCalculate_BoundaryTerm(t *testing.T) {

	svc := NewCashFlowService()

	req := scenarioRequest()
	req.LoanTermYears = iptr(1)
	req.InterestRate = fptr(0.01)
	req.TaxRate = fptr(0)

	result, err := svc.Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.IsNaN(result.MonthlyLoanPayment) || math.IsInf(result.MonthlyLoanPayment, 0) {
		t.Fatalf("expected finite payment, got %v", result.MonthlyLoanPayment)
	}
	if result.MonthlyLoanPayment <= 0 {
		t.Errorf("expected positive payment, got %.2f", result.MonthlyLoanPayment)
	}
	if result.AnnualTax != 0 {
		t.Errorf("expected zero tax, got %.2f", result.AnnualTax)
	}
}

func TestCalculate_Idempotent(t *testing.T) {

	svc := NewCashFlowService()

	first, err := svc.Calculate(scenarioRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Calculate(scenarioRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results for identical input")
	}
}

func TestCalculate_NegativeTaxNotClamped(t *testing.T) {

	svc := NewCashFlowService()

	// Expenses far above rent force a negative BTCF
	req := scenarioRequest()
	req.MonthlyRent = fptr(10_000)
	req.UnitCount = iptr(1)

	result, err := svc.Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BTCF >= 0 {
		t.Fatalf("expected negative btcf, got %.2f", result.BTCF)
	}
	if result.AnnualTax >= 0 {
		t.Errorf("expected negative tax for negative btcf, got %.2f", result.AnnualTax)
	}
}

func TestValidate_Defaults(t *testing.T) {

	svc := NewCashFlowService()

	req := scenarioRequest()
	req.ManagementFeeRate = nil
	req.InsuranceMonthly = nil
	req.MaintenanceMonthly = nil
	req.CommonAreaUtilitiesMonthly = nil
	req.TaxRate = nil

	input, err := svc.Validate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.ManagementFeeRate != DefaultManagementFeeRate {
		t.Errorf("expected default management fee rate %.1f, got %.1f", DefaultManagementFeeRate, input.ManagementFeeRate)
	}
	if input.InsuranceMonthly != 0 || input.MaintenanceMonthly != 0 ||
		input.CommonAreaUtilitiesMonthly != 0 || input.TaxRate != 0 {
		t.Errorf("expected zero defaults for optional expense fields")
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {

	svc := NewCashFlowService()

	req := scenarioRequest()
	req.LoanTermYears = nil
	req.MonthlyRent = fptr(-1)
	req.VacancyRate = fptr(150)

	_, err := svc.Validate(req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}

	violated := make(map[string]bool)
	for _, f := range verr.Fields {
		violated[f.Field] = true
	}
	for _, field := range []string{"loan_term_years", "monthly_rent", "vacancy_rate"} {
		if !violated[field] {
			t.Errorf("expected violation for %s, got %v", field, verr.Fields)
		}
	}
	if len(verr.Fields) != 3 {
		t.Errorf("expected 3 violations, got %d", len(verr.Fields))
	}
}

func TestValidate_RejectsZeroInterestRate(t *testing.T) {

	svc := NewCashFlowService()

	req := scenarioRequest()
	req.InterestRate = fptr(0)

	_, err := svc.Validate(req)
	if err == nil {
		t.Fatal("expected validation error for zero interest rate")
	}
}
