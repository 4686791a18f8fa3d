package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualLoanTotalsRepayPrincipal(t *testing.T) {
	const principal = 27000000.0
	for _, method := range []RepaymentMethod{EqualInstallment, EqualPrincipal} {
		var paid float64
		for year := 1; year <= 35; year++ {
			totals := AnnualLoanTotals(principal, 1.5, 420, year, method)
			assert.InDelta(t, totals.Payment, totals.Principal+totals.Interest, 1e-6)
			paid += totals.Principal
		}
		assert.InDelta(t, principal, paid, 0.01, "method=%s", method)
	}
}

func TestAnnualLoanTotalsAfterPayoff(t *testing.T) {
	for _, method := range []RepaymentMethod{EqualInstallment, EqualPrincipal} {
		assert.Equal(t, LoanYear{}, AnnualLoanTotals(10000000, 2, 120, 11, method))
		assert.Equal(t, LoanYear{}, AnnualLoanTotals(10000000, 2, 120, 35, method))
		assert.Equal(t, 0.0, RemainingBalanceAtYearEnd(10000000, 2, 120, 11, method))
	}
}

func TestAnnualLoanTotalsPartialYear(t *testing.T) {
	// срок 30 месяцев: третий год содержит 6 платежей
	payment := EqualInstallmentPayment(1000000, 3, 30)
	totals := AnnualLoanTotals(1000000, 3, 30, 3, EqualInstallment)
	assert.InDelta(t, 6*payment, totals.Payment, 1e-6)
	assert.InDelta(t, 0, RemainingBalanceAtYearEnd(1000000, 3, 30, 3, EqualInstallment), 0.01)

	totals = AnnualLoanTotals(1200000, 0, 30, 3, EqualPrincipal)
	assert.InDelta(t, 240000, totals.Principal, 1e-6)
	assert.Equal(t, 0.0, totals.Interest)
}

func TestAnnualLoanTotalsMatchStepSimulation(t *testing.T) {
	const (
		principal = 5000000.0
		rate      = 4.0
		months    = 240
	)
	r := rate / 100 / 12

	for _, method := range []RepaymentMethod{EqualInstallment, EqualPrincipal} {
		balance := principal
		payment := EqualInstallmentPayment(principal, rate, months)
		for year := 1; year <= 20; year++ {
			var want LoanYear
			for m := 1; m <= 12; m++ {
				interest := balance * r
				part := payment - interest
				if method == EqualPrincipal {
					part = principal / months
				}
				want.Interest += interest
				want.Principal += part
				want.Payment += part + interest
				balance -= part
			}

			got := AnnualLoanTotals(principal, rate, months, year, method)
			assert.InDelta(t, want.Payment, got.Payment, 0.01, "method=%s year=%d", method, year)
			assert.InDelta(t, want.Interest, got.Interest, 0.01, "method=%s year=%d", method, year)
			assert.InDelta(t, want.Principal, got.Principal, 0.01, "method=%s year=%d", method, year)
			assert.InDelta(t, balance, RemainingBalanceAtYearEnd(principal, rate, months, year, method), 0.01,
				"method=%s year=%d", method, year)
		}
	}
}

func TestRemainingBalanceAtYearEndZeroRate(t *testing.T) {
	for year := 1; year <= 10; year++ {
		want := 1200000 - 120000*float64(year)
		assert.InDelta(t, want, RemainingBalanceAtYearEnd(1200000, 0, 120, year, EqualInstallment), 1e-6)
		assert.InDelta(t, want, RemainingBalanceAtYearEnd(1200000, 0, 120, year, EqualPrincipal), 1e-6)
	}
}
