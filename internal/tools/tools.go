package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/internal/metrics"
	"github.com/cloud-ru/mcp-realestate-go/internal/validators"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ToolHandler представляет обработчик инструмента MCP
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

const (
	ToolSimulateRealEstate      = "simulate_real_estate"
	ToolLoanSchedule            = "loan_schedule"
	ToolCompareRepaymentMethods = "compare_repayment_methods"
	ToolHoldingReturns          = "holding_returns"
)

// Registry возвращает все инструменты сервера по имени
func Registry(cfg *config.Config, tracer trace.Tracer) map[string]ToolHandler {
	return map[string]ToolHandler{
		ToolSimulateRealEstate:      SimulateRealEstateHandler(cfg, tracer),
		ToolLoanSchedule:            LoanScheduleHandler(cfg, tracer),
		ToolCompareRepaymentMethods: CompareRepaymentMethodsHandler(cfg, tracer),
		ToolHoldingReturns:          HoldingReturnsHandler(cfg, tracer),
	}
}

// Names возвращает отсортированные имена инструментов
func Names(registry map[string]ToolHandler) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fail отмечает ошибку в спане и метриках
func fail(span trace.Span, toolName, kind string, err error) error {
	span.SetAttributes(attribute.String("error", kind+"_error"))
	span.RecordError(err)
	metrics.RecordFailure(toolName, kind+"_error", kind)
	if kind == "validation" {
		return fmt.Errorf("неверные параметры: %w", err)
	}
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

// decodeProperty разбирает параметры объекта. Если идентификатор не передан, он генерируется.
func decodeProperty(raw interface{}) (*calculations.RealEstateProperty, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid parameter: property: %w", err)
	}
	var p calculations.RealEstateProperty
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid parameter: property: %w", err)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return &p, nil
}

func propertyAttributes(p *calculations.RealEstateProperty) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("property_id", p.ID),
		attribute.Float64("purchase_price", p.Property.PurchasePrice),
		attribute.Float64("loan_amount", p.Loan.LoanAmount),
		attribute.Float64("interest_rate", p.Loan.InterestRate),
		attribute.Int("loan_term_years", p.Loan.LoanTermYears),
		attribute.String("repayment_method", string(p.Loan.RepaymentMethod)),
	}
}

// SimulateRealEstateHandler обрабатывает запрос на симуляцию владения объектом
func SimulateRealEstateHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolSimulateRealEstate

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		p, err := decodeProperty(params)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(propertyAttributes(p)...)

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		if err := validators.CheckProperty(cfg, p); err != nil {
			return nil, fail(span, toolName, "validation", err)
		}

		result := calculations.Simulate(p)
		if err := validators.CheckResultFinite(result); err != nil {
			return nil, fail(span, toolName, "calculation", err)
		}

		metrics.SimulationHorizon.Observe(float64(len(result.Rows)))
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("monthly_payment", result.MonthlyPayment),
			attribute.Float64("gross_yield", result.GrossYield),
			attribute.Int("rows", len(result.Rows)),
		)
		metrics.RecordSuccess(toolName)

		return result, nil
	}
}

// LoanScheduleHandler обрабатывает запрос на помесячный график кредита
func LoanScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolLoanSchedule

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, ok := params["principal"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid parameter: principal")
		}
		annualRatePercent, ok := params["annual_rate_percent"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid parameter: annual_rate_percent")
		}
		monthsFloat, ok := params["months"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid parameter: months")
		}
		months := int(monthsFloat)
		method := calculations.EqualInstallment
		if raw, exists := params["repayment_method"]; exists {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("invalid parameter: repayment_method")
			}
			method = calculations.RepaymentMethod(s)
		}

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("annual_rate_percent", annualRatePercent),
			attribute.Int("months", months),
			attribute.String("repayment_method", string(method)),
		)

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		if err := validators.CheckPrincipal(cfg, principal); err != nil {
			return nil, fail(span, toolName, "validation", err)
		}
		if err := validators.CheckRate(cfg, annualRatePercent); err != nil {
			return nil, fail(span, toolName, "validation", err)
		}
		if err := validators.CheckMonths(cfg, months); err != nil {
			return nil, fail(span, toolName, "validation", err)
		}
		if err := validators.CheckRepaymentMethod(method); err != nil {
			return nil, fail(span, toolName, "validation", err)
		}

		result, err := calculations.LoanScheduleFor(principal, annualRatePercent, months, method)
		if err != nil {
			return nil, fail(span, toolName, "calculation", err)
		}

		span.SetAttributes(attribute.Bool("success", true))
		metrics.RecordSuccess(toolName)

		return result, nil
	}
}

// CompareRepaymentMethodsHandler обрабатывает запрос на сравнение способов погашения
func CompareRepaymentMethodsHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolCompareRepaymentMethods

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		p, err := decodeProperty(params)
		if err != nil {
			return nil, err
		}
		// способ погашения подставляется при сравнении
		if p.Loan.RepaymentMethod == "" {
			p.Loan.RepaymentMethod = calculations.EqualInstallment
		}
		span.SetAttributes(propertyAttributes(p)...)

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		if err := validators.CheckProperty(cfg, p); err != nil {
			return nil, fail(span, toolName, "validation", err)
		}

		result := calculations.CompareRepaymentMethods(p)
		for _, sim := range []*calculations.SimulationResult{result.Installment, result.Principal} {
			if err := validators.CheckResultFinite(sim); err != nil {
				return nil, fail(span, toolName, "calculation", err)
			}
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("cheaper_method", string(result.CheaperMethod)),
			attribute.Float64("savings", result.Savings),
		)
		metrics.RecordSuccess(toolName)

		return result, nil
	}
}

// HoldingReturnsHandler обрабатывает запрос на доходность при продаже через years лет
func HoldingReturnsHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolHoldingReturns

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		rawProperty, ok := params["property"].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid parameter: property")
		}
		yearsFloat, ok := params["years"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid parameter: years")
		}
		years := int(yearsFloat)

		p, err := decodeProperty(rawProperty)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(propertyAttributes(p)...)
		span.SetAttributes(attribute.Int("years", years))

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		if err := validators.CheckProperty(cfg, p); err != nil {
			return nil, fail(span, toolName, "validation", err)
		}
		result := calculations.Simulate(p)
		if err := validators.CheckResultFinite(result); err != nil {
			return nil, fail(span, toolName, "calculation", err)
		}

		holding, err := calculations.HoldingReturns(result, years)
		if err != nil {
			return nil, fail(span, toolName, "validation", err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("roi_percent", holding.ROIPercent),
		)
		metrics.RecordSuccess(toolName)

		return holding, nil
	}
}
