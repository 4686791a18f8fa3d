package calculations

import "math"

// SellingCostsAt возвращает расходы на продажу по цене price
func SellingCostsAt(price float64, cfg SellingCostConfig) float64 {
	return price*cfg.AgentFeeRate/100.0 + cfg.AgentFeeFixed + cfg.OtherCosts
}

// BreakEvenSalePrice рассчитывает цену продажи, при которой выручка за вычетом
// расходов на продажу и погашения долга равна вложенным собственным средствам:
//
//	S·(1 − r/100) − F − O − L − N = 0
//
// Отрицательные вложения считаются нулевыми, отрицательная цена ограничивается нулем.
// При AgentFeeRate = 100 результат не определен (±Inf или NaN), проверка остается
// на стороне вызывающего кода.
func BreakEvenSalePrice(remainingLoan, netCashInvested float64, cfg SellingCostConfig) float64 {
	invested := math.Max(0, netCashInvested)
	price := (remainingLoan + invested + cfg.AgentFeeFixed + cfg.OtherCosts) / (1.0 - cfg.AgentFeeRate/100.0)
	return math.Max(0, price)
}
