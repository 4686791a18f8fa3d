package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// monthlyRate переводит годовую ставку в процентах в месячную долю
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100.0 / 12.0
}

// EqualInstallmentPayment рассчитывает ежемесячный аннуитетный платеж
func EqualInstallmentPayment(principal, annualRatePercent float64, months int) float64 {
	n := float64(months)
	if annualRatePercent == 0 {
		return principal / n
	}
	r := monthlyRate(annualRatePercent)
	growth := math.Pow(1.0+r, n)
	return principal * r * growth / (growth - 1.0)
}

// EqualInstallmentBalance возвращает остаток долга после paid внесенных аннуитетных платежей.
// Результат не ограничивается снизу: при paid = months он равен нулю с точностью до погрешности.
func EqualInstallmentBalance(principal, annualRatePercent float64, months, paid int) float64 {
	k := float64(paid)
	if annualRatePercent == 0 {
		return principal - principal/float64(months)*k
	}
	r := monthlyRate(annualRatePercent)
	payment := EqualInstallmentPayment(principal, annualRatePercent, months)
	growth := math.Pow(1.0+r, k)
	return principal*growth - payment*(growth-1.0)/r
}

// equalInstallmentMonth раскладывает платеж месяца month (с 1) на проценты и основной долг
func equalInstallmentMonth(principal, annualRatePercent float64, months, month int) MonthlyPayment {
	payment := EqualInstallmentPayment(principal, annualRatePercent, months)
	opening := EqualInstallmentBalance(principal, annualRatePercent, months, month-1)
	interest := opening * monthlyRate(annualRatePercent)
	return MonthlyPayment{
		Total:     payment,
		Principal: payment - interest,
		Interest:  interest,
	}
}

// AnnuitySchedule рассчитывает график аннуитетного кредита
func AnnuitySchedule(principal, annualRatePercent float64, months int) (*CalculationResult, error) {
	P := principal
	n := months
	r := monthlyRate(annualRatePercent)

	schedule := make([]ScheduleEntry, 0, n)
	remaining := P
	cumI := 0.0
	cumP := 0.0

	monthlyPayment := EqualInstallmentPayment(P, annualRatePercent, n)
	totalPaid := 0.0

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := monthlyPayment - interest
		monthly := monthlyPayment

		// последний платеж закрывает остаток, накопленный округлениями
		if m == n {
			principalComponent = remaining
			monthly = principalComponent + interest
		}

		interest = utils.Round2(interest)
		principalComponent = utils.Round2(principalComponent)
		monthly = utils.Round2(monthly)

		remaining = utils.Round2(remaining - principalComponent)
		cumI = utils.Round2(cumI + interest)
		cumP = utils.Round2(cumP + principalComponent)
		totalPaid = utils.Round2(totalPaid + monthly)

		if remaining < -0.01 {
			return nil, fmt.Errorf("численная ошибка: остаток кредита стал отрицательным")
		}

		schedule = append(schedule, ScheduleEntry{
			Month:               float64(m),
			Payment:             monthly,
			Interest:            interest,
			PrincipalComponent:  principalComponent,
			RemainingPrincipal:  math.Max(remaining, 0),
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})
	}

	summary := LoanSummary{
		Principal:         utils.Round2(P),
		AnnualRatePercent: utils.Round2(annualRatePercent),
		Months:            float64(n),
		MonthlyPayment:    utils.Round2(monthlyPayment),
		TotalPaid:         totalPaid,
		TotalInterest:     cumI,
	}

	return &CalculationResult{
		Summary:  summary,
		Schedule: schedule,
	}, nil
}
