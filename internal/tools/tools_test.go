package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

const propertyJSON = `{
	"property": {"purchase_price": 30000000, "monthly_rent": 120000, "structure": "rc"},
	"loan": {"loan_amount": 27000000, "interest_rate": 1.5, "loan_term_years": 35, "repayment_method": "equal_installment"},
	"initial_costs": {"agent_fee": 1056000, "registration_fee": 300000, "stamp_duty": 10000, "acquisition_tax": 400000},
	"annual_costs": {"property_tax": 80000, "management_fee": 10000, "maintenance_reserve": 8000, "insurance": 20000,
		"vacancy_rate": 5, "property_management_fee_rate": 5},
	"selling_costs": {"agent_fee_rate": 3, "agent_fee_fixed": 60000}
}`

func params(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func testRegistry(t *testing.T) map[string]ToolHandler {
	t.Helper()
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return Registry(cfg, noop.NewTracerProvider().Tracer("test"))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		ToolCompareRepaymentMethods,
		ToolHoldingReturns,
		ToolLoanSchedule,
		ToolSimulateRealEstate,
	}, Names(testRegistry(t)))
}

func TestSimulateRealEstateHandler(t *testing.T) {
	handler := testRegistry(t)[ToolSimulateRealEstate]

	out, err := handler(context.Background(), params(t, propertyJSON))
	require.NoError(t, err)

	result, ok := out.(*calculations.SimulationResult)
	require.True(t, ok)
	assert.Len(t, result.Rows, 35)
	assert.Equal(t, 82670.0, result.MonthlyPayment)
	assert.Equal(t, 4.8, result.GrossYield)
}

func TestSimulateRealEstateHandlerValidation(t *testing.T) {
	handler := testRegistry(t)[ToolSimulateRealEstate]

	p := params(t, propertyJSON)
	p["selling_costs"].(map[string]interface{})["agent_fee_rate"] = 100.0

	_, err := handler(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "неверные параметры")
	assert.Contains(t, err.Error(), "agent_fee_rate")
}

func TestSimulateRealEstateHandlerBadPayload(t *testing.T) {
	handler := testRegistry(t)[ToolSimulateRealEstate]

	_, err := handler(context.Background(), map[string]interface{}{"loan": "not an object"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameter")
}

func TestLoanScheduleHandler(t *testing.T) {
	handler := testRegistry(t)[ToolLoanSchedule]

	out, err := handler(context.Background(), map[string]interface{}{
		"principal":           1000000.0,
		"annual_rate_percent": 12.0,
		"months":              12.0,
		"repayment_method":    "equal_principal",
	})
	require.NoError(t, err)
	result := out.(*calculations.CalculationResult)
	assert.Len(t, result.Schedule, 12)
	summary := result.Summary.(calculations.LoanSummary)
	assert.Greater(t, summary.FirstMonthPayment, summary.LastMonthPayment)

	_, err = handler(context.Background(), map[string]interface{}{
		"principal":           1000000.0,
		"annual_rate_percent": 12.0,
		"months":              0.0,
	})
	assert.Error(t, err)

	_, err = handler(context.Background(), map[string]interface{}{"principal": "1000"})
	assert.Error(t, err)
}

func TestCompareRepaymentMethodsHandler(t *testing.T) {
	handler := testRegistry(t)[ToolCompareRepaymentMethods]

	out, err := handler(context.Background(), params(t, propertyJSON))
	require.NoError(t, err)
	result := out.(*calculations.MethodComparison)
	assert.Equal(t, calculations.EqualPrincipal, result.CheaperMethod)
}

func TestHoldingReturnsHandler(t *testing.T) {
	handler := testRegistry(t)[ToolHoldingReturns]

	out, err := handler(context.Background(), map[string]interface{}{
		"property": params(t, propertyJSON),
		"years":    10.0,
	})
	require.NoError(t, err)
	holding := out.(*calculations.HoldingMetrics)
	assert.Equal(t, 10, holding.Years)
	assert.Equal(t, 4766000.0, holding.EquityInvested)

	_, err = handler(context.Background(), map[string]interface{}{
		"property": params(t, propertyJSON),
		"years":    100.0,
	})
	assert.Error(t, err)
}

func TestDecodePropertyAssignsID(t *testing.T) {
	p, err := decodeProperty(params(t, propertyJSON))
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, calculations.EqualInstallment, p.Loan.RepaymentMethod)

	withID, err := decodeProperty(map[string]interface{}{"id": "apt-1"})
	require.NoError(t, err)
	assert.Equal(t, "apt-1", withID.ID)
}
