package validators

import (
	"math"
	"testing"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProperty() *calculations.RealEstateProperty {
	return calculations.NewRealEstateProperty(
		calculations.PropertyInfo{PurchasePrice: 30000000, MonthlyRent: 120000, Structure: calculations.StructureRC},
		calculations.LoanInfo{
			LoanAmount:      27000000,
			InterestRate:    1.5,
			LoanTermYears:   35,
			RepaymentMethod: calculations.EqualInstallment,
		},
		calculations.InitialCosts{AgentFee: 1056000, RegistrationFee: 300000, StampDuty: 10000, AcquisitionTax: 400000},
		calculations.AnnualCosts{
			PropertyTax:               80000,
			ManagementFee:             10000,
			MaintenanceReserve:        8000,
			Insurance:                 20000,
			VacancyRate:               5,
			PropertyManagementFeeRate: 5,
		},
		calculations.SellingCostConfig{AgentFeeRate: 3, AgentFeeFixed: 60000},
	)
}

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name      string
		validator func(*config.Config, interface{}) error
		value     interface{}
		wantError bool
	}{
		{
			name:      "valid principal",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     1000000.0,
			wantError: false,
		},
		{
			name:      "invalid principal zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     0.0,
			wantError: true,
		},
		{
			name:      "valid rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     1.5,
			wantError: false,
		},
		{
			name:      "invalid rate negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "invalid rate NaN",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     math.NaN(),
			wantError: true,
		},
		{
			name:      "valid loan term",
			validator: func(cfg *config.Config, v interface{}) error { return CheckLoanTerm(cfg, v.(int)) },
			value:     35,
			wantError: false,
		},
		{
			name:      "invalid loan term zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckLoanTerm(cfg, v.(int)) },
			value:     0,
			wantError: true,
		},
		{
			name:      "valid months",
			validator: func(cfg *config.Config, v interface{}) error { return CheckMonths(cfg, v.(int)) },
			value:     420,
			wantError: false,
		},
		{
			name:      "invalid months too long",
			validator: func(cfg *config.Config, v interface{}) error { return CheckMonths(cfg, v.(int)) },
			value:     cfg.MaxLoanTermYears*12 + 1,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestCheckProperty(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name    string
		mutate  func(p *calculations.RealEstateProperty)
		wantErr string
	}{
		{name: "valid", mutate: func(p *calculations.RealEstateProperty) {}},
		{
			name:    "zero purchase price",
			mutate:  func(p *calculations.RealEstateProperty) { p.Property.PurchasePrice = 0 },
			wantErr: "purchase_price",
		},
		{
			name:    "loan above price",
			mutate:  func(p *calculations.RealEstateProperty) { p.Loan.LoanAmount = 31000000 },
			wantErr: "loan_amount",
		},
		{
			name:    "unknown method",
			mutate:  func(p *calculations.RealEstateProperty) { p.Loan.RepaymentMethod = "bullet" },
			wantErr: "repayment_method",
		},
		{
			name:    "unknown structure",
			mutate:  func(p *calculations.RealEstateProperty) { p.Property.Structure = "brick" },
			wantErr: "structure",
		},
		{
			name:    "negative stamp duty",
			mutate:  func(p *calculations.RealEstateProperty) { p.InitialCosts.StampDuty = -1 },
			wantErr: "stamp_duty",
		},
		{
			name:    "vacancy above 100",
			mutate:  func(p *calculations.RealEstateProperty) { p.AnnualCosts.VacancyRate = 101 },
			wantErr: "vacancy_rate",
		},
		{
			name:    "full agent commission",
			mutate:  func(p *calculations.RealEstateProperty) { p.SellingCosts.AgentFeeRate = 100 },
			wantErr: "agent_fee_rate",
		},
		{
			name:    "zero loan term",
			mutate:  func(p *calculations.RealEstateProperty) { p.Loan.LoanTermYears = 0 },
			wantErr: "loan_term_years",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProperty()
			tt.mutate(p)
			err := CheckProperty(cfg, p)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, CheckProperty(cfg, nil))
}

func TestSimulateStrict(t *testing.T) {
	cfg, _ := config.LoadConfig()

	result, err := SimulateStrict(cfg, validProperty())
	require.NoError(t, err)
	assert.Len(t, result.Rows, 35)
	assert.Equal(t, 3000000.0, result.DownPayment)

	p := validProperty()
	p.SellingCosts.AgentFeeRate = 100
	_, err = SimulateStrict(cfg, p)
	assert.Error(t, err)
}

func TestCheckResultFinite(t *testing.T) {
	result := &calculations.SimulationResult{
		Rows: []calculations.AnnualSimulationRow{{Year: 1, BreakEvenPrice: math.Inf(1)}},
	}
	err := CheckResultFinite(result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "год 1")

	result.Rows[0].BreakEvenPrice = 0
	assert.NoError(t, CheckResultFinite(result))
}
