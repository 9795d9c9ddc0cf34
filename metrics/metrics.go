package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultadoOK    = "ok"
	ResultadoError = "error"
)

// Collector agrupa las métricas de sentencias SQL ejecutadas por los resolvers
type Collector struct {
	registry   *prometheus.Registry
	sentencias *prometheus.CounterVec
	duracion   *prometheus.HistogramVec
}

// NewCollector crea y registra las métricas en un registro propio
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		sentencias: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cita_medica_sql_statements_total",
				Help: "Total de sentencias SQL ejecutadas",
			},
			[]string{"consulta", "resultado"},
		),
		duracion: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cita_medica_sql_statement_duration_seconds",
				Help:    "Duración de las sentencias SQL en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"consulta"},
		),
	}
	c.registry.MustRegister(c.sentencias, c.duracion)
	return c
}

// ObserveStatement registra una sentencia terminada
func (c *Collector) ObserveStatement(consulta string, inicio time.Time, err error) {
	if c == nil {
		return
	}
	resultado := ResultadoOK
	if err != nil {
		resultado = ResultadoError
	}
	c.sentencias.WithLabelValues(consulta, resultado).Inc()
	c.duracion.WithLabelValues(consulta).Observe(time.Since(inicio).Seconds())
}

// Registry expone el registro para pruebas y para el handler
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler sirve las métricas en formato Prometheus
func (c *Collector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}
