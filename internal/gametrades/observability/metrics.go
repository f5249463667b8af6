// Package observability содержит метрики Prometheus сервиса.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы регистрации.
const (
	SignupCreated   = "created"
	SignupInvalid   = "invalid"
	SignupDuplicate = "duplicate"
	SignupConflict  = "conflict"
	SignupError     = "error"
)

// Результаты поиска обложек.
const (
	ImageHit           = "hit"
	ImageMiss          = "miss"
	ImageNotFound      = "not_found"
	ImageUpstreamError = "upstream_error"
	ImageError         = "error"
)

// Metrics содержит счетчики сервиса и собственный реестр.
type Metrics struct {
	SignupsTotal      *prometheus.CounterVec
	ImageLookupsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics создает реестр со стандартными метриками Go и процесса
// и регистрирует в нем счетчики сервиса.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		SignupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gametrades_signups_total",
				Help: "Total number of signup attempts by outcome",
			},
			[]string{"outcome"},
		),
		ImageLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gametrades_image_lookups_total",
				Help: "Total number of game image lookups by result",
			},
			[]string{"result"},
		),
		registry: registry,
	}

	registry.MustRegister(m.SignupsTotal)
	registry.MustRegister(m.ImageLookupsTotal)

	return m
}

// RecordSignup увеличивает счетчик регистраций. Безопасен для nil.
func (m *Metrics) RecordSignup(outcome string) {
	if m == nil {
		return
	}
	m.SignupsTotal.WithLabelValues(outcome).Inc()
}

// RecordImageLookup увеличивает счетчик поиска обложек. Безопасен для nil.
func (m *Metrics) RecordImageLookup(result string) {
	if m == nil {
		return
	}
	m.ImageLookupsTotal.WithLabelValues(result).Inc()
}

// Handler возвращает HTTP-обработчик для выдачи метрик.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
