package bootstrap

import (
	"swiss-virtual-airline/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const metricsNamespace = "swiss_va"

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		prometheus.NewRegistry,
		NewMetrics,
	),
)

func NewMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.New(metricsNamespace, registry)
}
