package calculations

import (
	"math"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// MinHorizonYears минимальный горизонт симуляции: график всегда показывает
// период после погашения кредита.
const MinHorizonYears = 35

// YearFigures показатели одного года без округления
type YearFigures struct {
	Year               int
	RentalIncome       float64
	Loan               LoanYear
	AnnualExpenses     float64
	NetCashFlow        float64
	CumulativeCashFlow float64
	RemainingLoan      float64
	NetCashInvested    float64
	BreakEvenPrice     float64
	SellingCosts       float64
	NetProceeds        float64
	EstimatedProfit    float64
}

// HorizonYears возвращает число лет симуляции
func HorizonYears(p *RealEstateProperty) int {
	if p.Loan.LoanTermYears > MinHorizonYears {
		return p.Loan.LoanTermYears
	}
	return MinHorizonYears
}

// DownPayment собственные средства в цене покупки
func DownPayment(p *RealEstateProperty) float64 {
	return p.Property.PurchasePrice - p.Loan.LoanAmount
}

// EffectiveRentalIncome годовой арендный доход с учетом простоя
func EffectiveRentalIncome(p *RealEstateProperty) float64 {
	return p.Property.MonthlyRent * 12 * (1 - p.AnnualCosts.VacancyRate/100.0)
}

// OperatingExpenses годовые расходы без учета платежей по кредиту.
// Вознаграждение управляющей компании берется с фактически собранной аренды.
func OperatingExpenses(p *RealEstateProperty, rentalIncome float64) float64 {
	c := p.AnnualCosts
	pmFee := rentalIncome * c.PropertyManagementFeeRate / 100.0
	return c.PropertyTax + (c.ManagementFee+c.MaintenanceReserve)*12 + c.Insurance + pmFee
}

// SimulateYear рассчитывает год year при накопленном денежном потоке cumulativeBefore
// и возвращает показатели года вместе с новым накопленным потоком.
func SimulateYear(p *RealEstateProperty, year int, cumulativeBefore float64) (YearFigures, float64) {
	loan := p.Loan
	totalMonths := loan.LoanTermYears * 12

	rental := EffectiveRentalIncome(p)
	loanYear := AnnualLoanTotals(loan.LoanAmount, loan.InterestRate, totalMonths, year, loan.RepaymentMethod)
	expenses := OperatingExpenses(p, rental)
	netCashFlow := rental - loanYear.Payment - expenses
	cumulative := cumulativeBefore + netCashFlow

	remaining := RemainingBalanceAtYearEnd(loan.LoanAmount, loan.InterestRate, totalMonths, year, loan.RepaymentMethod)
	invested := math.Max(0, -cumulative)

	price := p.Property.PurchasePrice
	sellingCosts := SellingCostsAt(price, p.SellingCosts)
	netProceeds := price - sellingCosts - remaining

	return YearFigures{
		Year:               year,
		RentalIncome:       rental,
		Loan:               loanYear,
		AnnualExpenses:     expenses,
		NetCashFlow:        netCashFlow,
		CumulativeCashFlow: cumulative,
		RemainingLoan:      remaining,
		NetCashInvested:    invested,
		BreakEvenPrice:     BreakEvenSalePrice(remaining, invested, p.SellingCosts),
		SellingCosts:       sellingCosts,
		NetProceeds:        netProceeds,
		EstimatedProfit:    netProceeds + cumulative,
	}, cumulative
}

// Row округляет каждое денежное поле до целого независимо от остальных
func (f YearFigures) Row() AnnualSimulationRow {
	return AnnualSimulationRow{
		Year:                 f.Year,
		RentalIncome:         utils.Round0(f.RentalIncome),
		LoanPayment:          utils.Round0(f.Loan.Payment),
		LoanPrincipal:        utils.Round0(f.Loan.Principal),
		LoanInterest:         utils.Round0(f.Loan.Interest),
		AnnualExpenses:       utils.Round0(f.AnnualExpenses),
		NetCashFlow:          utils.Round0(f.NetCashFlow),
		CumulativeCashFlow:   utils.Round0(f.CumulativeCashFlow),
		RemainingLoan:        utils.Round0(f.RemainingLoan),
		CumulativeInvestment: utils.Round0(f.NetCashInvested),
		BreakEvenPrice:       utils.Round0(f.BreakEvenPrice),
		EstimatedProfit:      utils.Round0(f.EstimatedProfit),
		SellingCosts:         utils.Round0(f.SellingCosts),
		NetProceeds:          utils.Round0(f.NetProceeds),
	}
}

// SimulateFigures выполняет годовую симуляцию без округления
func SimulateFigures(p *RealEstateProperty) []YearFigures {
	horizon := HorizonYears(p)
	figures := make([]YearFigures, 0, horizon)

	cumulative := -(DownPayment(p) + p.InitialCosts.Total())
	for year := 1; year <= horizon; year++ {
		var f YearFigures
		f, cumulative = SimulateYear(p, year, cumulative)
		figures = append(figures, f)
	}
	return figures
}

// Simulate рассчитывает денежные потоки, остаток кредита и цену безубыточности
// на каждый год владения.
//
// Входные данные не проверяются: нулевая цена покупки, ставка комиссии 100% или
// нулевой срок кредита дают NaN или ±Inf в результате. Для проверки входных
// данных используйте validators.SimulateStrict.
func Simulate(p *RealEstateProperty) *SimulationResult {
	price := p.Property.PurchasePrice
	loan := p.Loan

	figures := SimulateFigures(p)
	rows := make([]AnnualSimulationRow, len(figures))
	for i, f := range figures {
		rows[i] = f.Row()
	}

	rental := EffectiveRentalIncome(p)
	grossYield := p.Property.MonthlyRent * 12 / price * 100
	netYield := (rental - OperatingExpenses(p, rental)) / price * 100

	return &SimulationResult{
		DownPayment:       utils.Round0(DownPayment(p)),
		TotalInitialCosts: utils.Round0(p.InitialCosts.Total()),
		MonthlyPayment:    utils.Round0(FirstMonthPayment(loan.LoanAmount, loan.InterestRate, loan.LoanTermYears*12, loan.RepaymentMethod)),
		GrossYield:        utils.Round2(grossYield),
		NetYield:          utils.Round2(netYield),
		Rows:              rows,
	}
}
