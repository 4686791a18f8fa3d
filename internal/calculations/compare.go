package calculations

import (
	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// summarizeMethod сводит результат симуляции к ключевым показателям
func summarizeMethod(method RepaymentMethod, result *SimulationResult) MethodSummary {
	summary := MethodSummary{
		Method:            method,
		FirstMonthPayment: result.MonthlyPayment,
	}
	for _, row := range result.Rows {
		summary.TotalLoanPayment += row.LoanPayment
		summary.TotalInterest += row.LoanInterest
		if summary.CashPaybackYear == 0 && row.CumulativeCashFlow >= 0 {
			summary.CashPaybackYear = row.Year
		}
	}
	if n := len(result.Rows); n > 0 {
		last := result.Rows[n-1]
		summary.FinalCumulativeCash = last.CumulativeCashFlow
		summary.FinalEstimatedProfit = last.EstimatedProfit
	}
	return summary
}

// CompareRepaymentMethods сравнивает аннуитетную и дифференцированную схемы
// для одного и того же объекта
func CompareRepaymentMethods(p *RealEstateProperty) *MethodComparison {
	installment := *p
	installment.Loan.RepaymentMethod = EqualInstallment
	principal := *p
	principal.Loan.RepaymentMethod = EqualPrincipal

	installmentResult := Simulate(&installment)
	principalResult := Simulate(&principal)

	installmentSummary := summarizeMethod(EqualInstallment, installmentResult)
	principalSummary := summarizeMethod(EqualPrincipal, principalResult)

	interestDiff := utils.Round2(installmentSummary.TotalInterest - principalSummary.TotalInterest)

	var cheaper RepaymentMethod
	var savings float64
	var recommendation string

	if interestDiff > 0 {
		cheaper = EqualPrincipal
		savings = interestDiff
		recommendation = "Дифференцированная схема дает меньшую переплату по процентам, но первые годы денежный поток ниже из-за более высоких платежей."
	} else if interestDiff < 0 {
		cheaper = EqualInstallment
		savings = -interestDiff
		recommendation = "Аннуитетная схема дает меньшую переплату по процентам и ровный денежный поток."
	} else {
		recommendation = "Обе схемы дают одинаковую переплату по процентам."
	}

	return &MethodComparison{
		EqualInstallment: installmentSummary,
		EqualPrincipal:   principalSummary,
		InterestDiff:     interestDiff,
		CheaperMethod:    cheaper,
		Savings:          savings,
		Recommendation:   recommendation,
		Installment:      installmentResult,
		Principal:        principalResult,
	}
}
