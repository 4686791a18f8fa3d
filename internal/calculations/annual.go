package calculations

import "math"

// yearMonths возвращает первый и последний месяц года year (с 1), обрезанные по сроку кредита
func yearMonths(totalMonths, year int) (first, last int) {
	first = (year-1)*12 + 1
	last = year * 12
	if last > totalMonths {
		last = totalMonths
	}
	return first, last
}

// AnnualLoanTotals суммирует платежи по кредиту за год year (с 1).
// Если кредит погашен до начала года, возвращаются нули.
func AnnualLoanTotals(principal, annualRatePercent float64, totalMonths, year int, method RepaymentMethod) LoanYear {
	first, last := yearMonths(totalMonths, year)
	if first > totalMonths {
		return LoanYear{}
	}

	var totals LoanYear
	if method == EqualInstallment {
		payment := EqualInstallmentPayment(principal, annualRatePercent, totalMonths)
		r := monthlyRate(annualRatePercent)
		for m := first; m <= last; m++ {
			interest := EqualInstallmentBalance(principal, annualRatePercent, totalMonths, m-1) * r
			totals.Payment += payment
			totals.Interest += interest
			totals.Principal += payment - interest
		}
		return totals
	}

	for m := first; m <= last; m++ {
		month := EqualPrincipalPayment(principal, annualRatePercent, totalMonths, m)
		totals.Payment += month.Total
		totals.Interest += month.Interest
		totals.Principal += month.Principal
	}
	return totals
}

// RemainingBalanceAtYearEnd возвращает остаток долга на конец года year, не ниже нуля
func RemainingBalanceAtYearEnd(principal, annualRatePercent float64, totalMonths, year int, method RepaymentMethod) float64 {
	paid := year * 12
	if paid > totalMonths {
		paid = totalMonths
	}
	if method == EqualInstallment {
		return math.Max(0, EqualInstallmentBalance(principal, annualRatePercent, totalMonths, paid))
	}
	return EqualPrincipalBalance(principal, totalMonths, paid)
}
