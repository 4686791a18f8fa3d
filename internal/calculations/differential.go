package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// EqualPrincipalPayment рассчитывает платеж месяца month (с 1) при дифференцированной схеме.
// Доля основного долга постоянна и равна principal/months, проценты начисляются
// на остаток на начало месяца.
func EqualPrincipalPayment(principal, annualRatePercent float64, months, month int) MonthlyPayment {
	principalPart := principal / float64(months)
	opening := principal - principalPart*float64(month-1)
	interest := opening * monthlyRate(annualRatePercent)
	return MonthlyPayment{
		Total:     principalPart + interest,
		Principal: principalPart,
		Interest:  interest,
	}
}

// EqualPrincipalBalance возвращает остаток долга после paid платежей, не ниже нуля
func EqualPrincipalBalance(principal float64, months, paid int) float64 {
	return math.Max(0, principal-principal/float64(months)*float64(paid))
}

// FirstMonthPayment возвращает платеж первого месяца для выбранного способа погашения
func FirstMonthPayment(principal, annualRatePercent float64, months int, method RepaymentMethod) float64 {
	if method == EqualInstallment {
		return EqualInstallmentPayment(principal, annualRatePercent, months)
	}
	return EqualPrincipalPayment(principal, annualRatePercent, months, 1).Total
}

// DifferentialSchedule рассчитывает график дифференцированного кредита
func DifferentialSchedule(principal, annualRatePercent float64, months int) (*CalculationResult, error) {
	P := principal
	n := months

	remaining := P
	cumI := 0.0
	cumP := 0.0
	schedule := make([]ScheduleEntry, 0, n)

	totalPaid := 0.0
	var firstPayment, lastPayment float64

	for m := 1; m <= n; m++ {
		month := EqualPrincipalPayment(P, annualRatePercent, n, m)
		interest := month.Interest
		principalComponent := month.Principal
		if m == n {
			principalComponent = remaining
		}
		payment := principalComponent + interest

		interest = utils.Round2(interest)
		principalComponent = utils.Round2(principalComponent)
		payment = utils.Round2(payment)

		remaining = utils.Round2(remaining - principalComponent)
		cumI = utils.Round2(cumI + interest)
		cumP = utils.Round2(cumP + principalComponent)
		totalPaid = utils.Round2(totalPaid + payment)

		if m == 1 {
			firstPayment = payment
		}
		if m == n {
			lastPayment = payment
		}

		if remaining < -0.01 {
			return nil, fmt.Errorf("численная ошибка: остаток кредита стал отрицательным")
		}

		schedule = append(schedule, ScheduleEntry{
			Month:               float64(m),
			Payment:             payment,
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
		FirstMonthPayment: firstPayment,
		LastMonthPayment:  lastPayment,
		TotalPaid:         totalPaid,
		TotalInterest:     cumI,
	}

	return &CalculationResult{
		Summary:  summary,
		Schedule: schedule,
	}, nil
}

// LoanScheduleFor строит помесячный график для выбранного способа погашения
func LoanScheduleFor(principal, annualRatePercent float64, months int, method RepaymentMethod) (*CalculationResult, error) {
	switch method {
	case EqualInstallment:
		return AnnuitySchedule(principal, annualRatePercent, months)
	case EqualPrincipal:
		return DifferentialSchedule(principal, annualRatePercent, months)
	default:
		return nil, fmt.Errorf("неизвестный способ погашения: %q", method)
	}
}
