package notion

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics — счётчики шлюза. Nil-значение допустимо и ничего не считает.
type Metrics struct {
	requests *prometheus.CounterVec
	retries  *prometheus.CounterVec
	dryRuns  *prometheus.CounterVec
}

// NewMetrics регистрирует счётчики шлюза в reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notion_http_requests_total",
			Help: "HTTP requests sent to the Notion API, by method and status code",
		}, []string{"method", "code"}),
		retries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notion_http_retries_total",
			Help: "Retries performed after HTTP 429 responses",
		}, []string{"method"}),
		dryRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notion_dry_run_requests_total",
			Help: "Mutating requests intercepted by dry-run",
		}, []string{"method"}),
	}
}

func (m *Metrics) observeResponse(method string, status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) observeRetry(method string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(method).Inc()
}

func (m *Metrics) observeDryRun(method string) {
	if m == nil {
		return
	}
	m.dryRuns.WithLabelValues(method).Inc()
}
