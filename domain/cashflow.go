package domain

// CashFlowRequest is the raw JSON-decoded calculation request. Required
// fields are pointers so a missing field can be told apart from a zero.
type CashFlowRequest struct {
	PropertyPrice              *float64 `json:"property_price"`
	LoanAmount                 *float64 `json:"loan_amount"`
	LoanTermYears              *int     `json:"loan_term_years"`
	InterestRate               *float64 `json:"interest_rate"`
	MonthlyRent                *float64 `json:"monthly_rent"`
	UnitCount                  *int     `json:"unit_count"`
	VacancyRate                *float64 `json:"vacancy_rate"`
	ManagementFeeRate          *float64 `json:"management_fee_rate"`
	InsuranceMonthly           *float64 `json:"insurance_monthly"`
	MaintenanceMonthly         *float64 `json:"maintenance_monthly"`
	CommonAreaUtilitiesMonthly *float64 `json:"common_area_utilities_monthly"`
	TaxRate                    *float64 `json:"tax_rate"`
}

// CashFlowInput holds validated calculation inputs. Percent fields keep
// their raw percentage values; they are divided by 100 only inside the
// calculation.
type CashFlowInput struct {
	PropertyPrice              float64
	LoanAmount                 float64
	LoanTermYears              int
	InterestRate               float64
	MonthlyRent                float64
	UnitCount                  int
	VacancyRate                float64
	ManagementFeeRate          float64
	InsuranceMonthly           float64
	MaintenanceMonthly         float64
	CommonAreaUtilitiesMonthly float64
	TaxRate                    float64
}

// CashFlowResult carries the headline annualized figures plus the full
// per-item breakdown, all rounded to 2 decimals.
type CashFlowResult struct {
	NOI                float64            `json:"noi"`
	BTCF               float64            `json:"btcf"`
	ATCF               float64            `json:"atcf"`
	MonthlyNOI         float64            `json:"monthly_noi"`
	MonthlyBTCF        float64            `json:"monthly_btcf"`
	MonthlyATCF        float64            `json:"monthly_atcf"`
	AnnualLoanPayment  float64            `json:"annual_loan_payment"`
	MonthlyLoanPayment float64            `json:"monthly_loan_payment"`
	AnnualTax          float64            `json:"annual_tax"`
	Breakdown          map[string]float64 `json:"breakdown"`
}
