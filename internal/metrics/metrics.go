package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls счетчик вызовов API
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Вызовы API инструментов",
		},
		[]string{"service", "endpoint", "status"},
	)

	// SimulationHorizon распределение горизонта симуляции в годах
	SimulationHorizon = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "simulation_horizon_years",
			Help:    "Горизонт симуляции в годах",
			Buckets: []float64{35, 40, 45, 50},
		},
	)
)

// RecordFailure учитывает неуспешный вызов инструмента
func RecordFailure(toolName, status, errorType string) {
	ToolCalls.WithLabelValues(toolName, status).Inc()
	CalculationErrors.WithLabelValues(toolName, errorType).Inc()
	APICalls.WithLabelValues("mcp", toolName, "error").Inc()
}

// RecordSuccess учитывает успешный вызов инструмента
func RecordSuccess(toolName string) {
	ToolCalls.WithLabelValues(toolName, "success").Inc()
	APICalls.WithLabelValues("mcp", toolName, "success").Inc()
}
