package calculations

import "time"

// RepaymentMethod способ погашения кредита
type RepaymentMethod string

const (
	// EqualInstallment аннуитетные платежи: ежемесячный платеж постоянен
	EqualInstallment RepaymentMethod = "equal_installment"
	// EqualPrincipal дифференцированные платежи: постоянная доля основного долга
	EqualPrincipal RepaymentMethod = "equal_principal"
)

// Valid сообщает, известен ли способ погашения
func (m RepaymentMethod) Valid() bool {
	return m == EqualInstallment || m == EqualPrincipal
}

// StructureType тип конструкции здания
type StructureType string

const (
	StructureRC    StructureType = "rc"
	StructureSRC   StructureType = "src"
	StructureSteel StructureType = "steel"
	StructureWood  StructureType = "wood"
)

// Valid сообщает, известен ли тип конструкции
func (s StructureType) Valid() bool {
	switch s {
	case StructureRC, StructureSRC, StructureSteel, StructureWood:
		return true
	}
	return false
}

// PropertyInfo описывает объект недвижимости
type PropertyInfo struct {
	PurchasePrice float64       `json:"purchase_price"`
	MonthlyRent   float64       `json:"monthly_rent"`
	BuildingAge   int           `json:"building_age"`
	Structure     StructureType `json:"structure"`
	FloorArea     float64       `json:"floor_area"`
	Location      string        `json:"location"`
}

// LoanInfo описывает ипотечный кредит
type LoanInfo struct {
	LoanAmount      float64         `json:"loan_amount"`
	InterestRate    float64         `json:"interest_rate"`
	LoanTermYears   int             `json:"loan_term_years"`
	RepaymentMethod RepaymentMethod `json:"repayment_method"`
}

// InitialCosts разовые расходы при покупке
type InitialCosts struct {
	AgentFee        float64 `json:"agent_fee"`
	RegistrationFee float64 `json:"registration_fee"`
	StampDuty       float64 `json:"stamp_duty"`
	AcquisitionTax  float64 `json:"acquisition_tax"`
	Other           float64 `json:"other"`
}

// Total возвращает сумму разовых расходов
func (c InitialCosts) Total() float64 {
	return c.AgentFee + c.RegistrationFee + c.StampDuty + c.AcquisitionTax + c.Other
}

// AnnualCosts регулярные расходы. ManagementFee и MaintenanceReserve задаются в месяц,
// ставки задаются в процентах.
type AnnualCosts struct {
	PropertyTax               float64 `json:"property_tax"`
	ManagementFee             float64 `json:"management_fee"`
	MaintenanceReserve        float64 `json:"maintenance_reserve"`
	Insurance                 float64 `json:"insurance"`
	VacancyRate               float64 `json:"vacancy_rate"`
	PropertyManagementFeeRate float64 `json:"property_management_fee_rate"`
}

// SellingCostConfig расходы при продаже. AgentFeeRate должна быть меньше 100.
type SellingCostConfig struct {
	AgentFeeRate  float64 `json:"agent_fee_rate"`
	AgentFeeFixed float64 `json:"agent_fee_fixed"`
	OtherCosts    float64 `json:"other_costs"`
}

// RealEstateProperty входные данные симуляции
type RealEstateProperty struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	Property     PropertyInfo      `json:"property"`
	Loan         LoanInfo          `json:"loan"`
	InitialCosts InitialCosts      `json:"initial_costs"`
	AnnualCosts  AnnualCosts       `json:"annual_costs"`
	SellingCosts SellingCostConfig `json:"selling_costs"`
}

// AnnualSimulationRow одна строка годовой симуляции. Денежные поля округлены до целого.
type AnnualSimulationRow struct {
	Year                 int     `json:"year"`
	RentalIncome         float64 `json:"rental_income"`
	LoanPayment          float64 `json:"loan_payment"`
	LoanPrincipal        float64 `json:"loan_principal"`
	LoanInterest         float64 `json:"loan_interest"`
	AnnualExpenses       float64 `json:"annual_expenses"`
	NetCashFlow          float64 `json:"net_cash_flow"`
	CumulativeCashFlow   float64 `json:"cumulative_cash_flow"`
	RemainingLoan        float64 `json:"remaining_loan"`
	CumulativeInvestment float64 `json:"cumulative_investment"`
	BreakEvenPrice       float64 `json:"break_even_price"`
	EstimatedProfit      float64 `json:"estimated_profit"`
	SellingCosts         float64 `json:"selling_costs"`
	NetProceeds          float64 `json:"net_proceeds"`
}

// SimulationResult результат симуляции
type SimulationResult struct {
	DownPayment       float64               `json:"down_payment"`
	TotalInitialCosts float64               `json:"total_initial_costs"`
	MonthlyPayment    float64               `json:"monthly_payment"`
	GrossYield        float64               `json:"gross_yield"`
	NetYield          float64               `json:"net_yield"`
	Rows              []AnnualSimulationRow `json:"rows"`
}

// MonthlyPayment платеж за один месяц
type MonthlyPayment struct {
	Total     float64 `json:"total"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// LoanYear суммы платежей по кредиту за год
type LoanYear struct {
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month               float64 `json:"month"`
	Payment             float64 `json:"payment,omitempty"`
	Interest            float64 `json:"interest,omitempty"`
	PrincipalComponent  float64 `json:"principal_component,omitempty"`
	RemainingPrincipal  float64 `json:"remaining_principal,omitempty"`
	CumulativeInterest  float64 `json:"cumulative_interest,omitempty"`
	CumulativePrincipal float64 `json:"cumulative_principal,omitempty"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Months            float64 `json:"months"`
	MonthlyPayment    float64 `json:"monthly_payment,omitempty"`
	FirstMonthPayment float64 `json:"first_month_payment,omitempty"`
	LastMonthPayment  float64 `json:"last_month_payment,omitempty"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// CalculationResult представляет результат расчета графика кредита
type CalculationResult struct {
	Summary  interface{}     `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// MethodSummary показатели симуляции при одном способе погашения
type MethodSummary struct {
	Method               RepaymentMethod `json:"method"`
	FirstMonthPayment    float64         `json:"first_month_payment"`
	TotalLoanPayment     float64         `json:"total_loan_payment"`
	TotalInterest        float64         `json:"total_interest"`
	FinalCumulativeCash  float64         `json:"final_cumulative_cash_flow"`
	FinalEstimatedProfit float64         `json:"final_estimated_profit"`
	CashPaybackYear      int             `json:"cash_payback_year"`
}

// MethodComparison результат сравнения способов погашения
type MethodComparison struct {
	EqualInstallment MethodSummary     `json:"equal_installment"`
	EqualPrincipal   MethodSummary     `json:"equal_principal"`
	InterestDiff     float64           `json:"interest_diff"`
	CheaperMethod    RepaymentMethod   `json:"cheaper_method,omitempty"`
	Savings          float64           `json:"savings"`
	Recommendation   string            `json:"recommendation"`
	Installment      *SimulationResult `json:"equal_installment_simulation"`
	Principal        *SimulationResult `json:"equal_principal_simulation"`
}

// HoldingMetrics доходность владения объектом на протяжении заданного числа лет
type HoldingMetrics struct {
	Years                   int     `json:"years"`
	EquityInvested          float64 `json:"equity_invested"`
	CumulativeCashFlow      float64 `json:"cumulative_cash_flow"`
	EstimatedProfit         float64 `json:"estimated_profit"`
	ROIPercent              float64 `json:"roi_percent"`
	AnnualizedReturnPercent float64 `json:"annualized_return_percent"`
	CashPaybackYear         int     `json:"cash_payback_year"`
	BreakEvenPrice          float64 `json:"break_even_price"`
}
