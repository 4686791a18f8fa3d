package validators

import (
	"fmt"
	"math"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число положительное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %.0f", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%.0f)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// ValidatePercent проверяет процентную ставку в диапазоне [0; 100]
func ValidatePercent(name string, value float64) error {
	return ValidatePositiveNumber(name, value, 0.0, 100.0)
}

// CheckRate проверяет процентную ставку кредита
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("interest_rate", rate, 0.0, cfg.MaxRate)
}

// CheckLoanTerm проверяет срок кредита в годах
func CheckLoanTerm(cfg *config.Config, years int) error {
	return ValidateIntRange("loan_term_years", years, 1, cfg.MaxLoanTermYears)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 1, cfg.MaxLoanTermYears*12)
}

// CheckPrincipal проверяет сумму кредита для помесячного графика
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxPurchasePrice)
}

// CheckRepaymentMethod проверяет способ погашения
func CheckRepaymentMethod(method calculations.RepaymentMethod) error {
	if !method.Valid() {
		return fmt.Errorf("repayment_method: неизвестный способ погашения %q", method)
	}
	return nil
}

// CheckSellingCosts проверяет расходы на продажу. Ставка комиссии 100% делает
// цену безубыточности неопределенной.
func CheckSellingCosts(cfg *config.Config, s calculations.SellingCostConfig) error {
	if err := ValidatePercent("agent_fee_rate", s.AgentFeeRate); err != nil {
		return err
	}
	if s.AgentFeeRate >= 100 {
		return fmt.Errorf("agent_fee_rate: значение должно быть меньше 100")
	}
	if err := ValidatePositiveNumber("agent_fee_fixed", s.AgentFeeFixed, 0.0, cfg.MaxPurchasePrice); err != nil {
		return err
	}
	return ValidatePositiveNumber("other_costs", s.OtherCosts, 0.0, cfg.MaxPurchasePrice)
}

// CheckProperty проверяет все входные данные симуляции
func CheckProperty(cfg *config.Config, p *calculations.RealEstateProperty) error {
	if p == nil {
		return fmt.Errorf("property: данные объекта не заданы")
	}

	price := p.Property.PurchasePrice
	maxCost := cfg.MaxPurchasePrice
	checks := []func() error{
		func() error { return ValidatePositiveNumber("purchase_price", price, 1e-9, cfg.MaxPurchasePrice) },
		func() error { return ValidatePositiveNumber("monthly_rent", p.Property.MonthlyRent, 0.0, cfg.MaxMonthlyRent) },
		func() error { return ValidateIntRange("building_age", p.Property.BuildingAge, 0, math.MaxInt32) },
		func() error { return ValidatePositiveNumber("floor_area", p.Property.FloorArea, 0.0, math.MaxFloat64) },
		func() error {
			if p.Property.Structure != "" && !p.Property.Structure.Valid() {
				return fmt.Errorf("structure: неизвестный тип конструкции %q", p.Property.Structure)
			}
			return nil
		},
		func() error { return ValidatePositiveNumber("loan_amount", p.Loan.LoanAmount, 0.0, price) },
		func() error { return CheckRate(cfg, p.Loan.InterestRate) },
		func() error { return CheckLoanTerm(cfg, p.Loan.LoanTermYears) },
		func() error { return CheckRepaymentMethod(p.Loan.RepaymentMethod) },
		func() error { return ValidatePositiveNumber("agent_fee", p.InitialCosts.AgentFee, 0.0, maxCost) },
		func() error { return ValidatePositiveNumber("registration_fee", p.InitialCosts.RegistrationFee, 0.0, maxCost) },
		func() error { return ValidatePositiveNumber("stamp_duty", p.InitialCosts.StampDuty, 0.0, maxCost) },
		func() error { return ValidatePositiveNumber("acquisition_tax", p.InitialCosts.AcquisitionTax, 0.0, maxCost) },
		func() error { return ValidatePositiveNumber("other", p.InitialCosts.Other, 0.0, maxCost) },
		func() error { return ValidatePositiveNumber("property_tax", p.AnnualCosts.PropertyTax, 0.0, maxCost) },
		func() error { return ValidatePositiveNumber("management_fee", p.AnnualCosts.ManagementFee, 0.0, maxCost) },
		func() error {
			return ValidatePositiveNumber("maintenance_reserve", p.AnnualCosts.MaintenanceReserve, 0.0, maxCost)
		},
		func() error { return ValidatePositiveNumber("insurance", p.AnnualCosts.Insurance, 0.0, maxCost) },
		func() error { return ValidatePercent("vacancy_rate", p.AnnualCosts.VacancyRate) },
		func() error {
			return ValidatePercent("property_management_fee_rate", p.AnnualCosts.PropertyManagementFeeRate)
		},
		func() error { return CheckSellingCosts(cfg, p.SellingCosts) },
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// CheckResultFinite проверяет, что все числа результата конечны
func CheckResultFinite(result *calculations.SimulationResult) error {
	if !utils.AllFinite(result.DownPayment, result.TotalInitialCosts, result.MonthlyPayment,
		result.GrossYield, result.NetYield) {
		return fmt.Errorf("численная ошибка: сводные показатели не являются конечными числами")
	}
	for _, row := range result.Rows {
		if !utils.AllFinite(row.RentalIncome, row.LoanPayment, row.LoanPrincipal, row.LoanInterest,
			row.AnnualExpenses, row.NetCashFlow, row.CumulativeCashFlow, row.RemainingLoan,
			row.CumulativeInvestment, row.BreakEvenPrice, row.EstimatedProfit, row.SellingCosts,
			row.NetProceeds) {
			return fmt.Errorf("численная ошибка: год %d содержит неконечные значения", row.Year)
		}
	}
	return nil
}

// SimulateStrict проверяет входные данные, выполняет симуляцию и проверяет результат
func SimulateStrict(cfg *config.Config, p *calculations.RealEstateProperty) (*calculations.SimulationResult, error) {
	if err := CheckProperty(cfg, p); err != nil {
		return nil, fmt.Errorf("неверные параметры: %w", err)
	}
	result := calculations.Simulate(p)
	if err := CheckResultFinite(result); err != nil {
		return nil, err
	}
	return result, nil
}
