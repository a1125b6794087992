package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// NewRegistry создаёт отдельный реестр метрик для одного запуска CLI.
// Глобальный prometheus.DefaultRegisterer не используется, чтобы
// счётчики не смешивались с go_* и process_* метриками.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// WriteMetrics печатает все метрики реестра в text exposition format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
