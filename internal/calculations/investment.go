package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// HoldingReturns рассчитывает доходность собственных средств при продаже
// по цене покупки после years лет владения
func HoldingReturns(result *SimulationResult, years int) (*HoldingMetrics, error) {
	if years < 1 || years > len(result.Rows) {
		return nil, fmt.Errorf("срок владения должен быть в диапазоне [1; %d]", len(result.Rows))
	}

	row := result.Rows[years-1]
	equity := result.DownPayment + result.TotalInitialCosts

	// ROI (Return on Investment) в процентах
	var roiPercent float64
	if equity > 0 {
		roiPercent = utils.Round2(row.EstimatedProfit / equity * 100)
	}

	// Средняя годовая доходность
	var annualizedReturn float64
	finalValue := equity + row.EstimatedProfit
	if equity > 0 && finalValue > 0 {
		annualizedReturn = utils.Round2((math.Pow(finalValue/equity, 1.0/float64(years)) - 1.0) * 100)
	}

	var payback int
	for _, r := range result.Rows[:years] {
		if r.CumulativeCashFlow >= 0 {
			payback = r.Year
			break
		}
	}

	return &HoldingMetrics{
		Years:                   years,
		EquityInvested:          equity,
		CumulativeCashFlow:      row.CumulativeCashFlow,
		EstimatedProfit:         row.EstimatedProfit,
		ROIPercent:              roiPercent,
		AnnualizedReturnPercent: annualizedReturn,
		CashPaybackYear:         payback,
		BreakEvenPrice:          row.BreakEvenPrice,
	}, nil
}
