package service

const (
	MinLoanTermYears     = 1
	MaxLoanTermYears     = 50
	MaxInterestRate      = 100.0
	MaxVacancyRate       = 100.0
	MaxManagementFeeRate = 20.0 // share of income, typically 5-7%
	MaxTaxRate           = 50.0

	DefaultManagementFeeRate = 6.0

	MinAddressLen      = 5
	MaxAddressLen      = 500
	MinLocationLen     = 2
	MaxLocationLen     = 100
	MinPropertyTypeLen = 2
	MaxPropertyTypeLen = 50
	MaxBedrooms        = 20
	MaxBathrooms       = 10.0
	MaxDescriptionLen  = 2000

	DefaultListLimit = 50
	MaxListLimit     = 100
)
