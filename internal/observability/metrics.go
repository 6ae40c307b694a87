package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the dashboard service.
type Metrics struct {
	WeatherFetches *prometheus.CounterVec // labels: outcome={success,error,not_found}
	ToggleOps      *prometheus.CounterVec // labels: action={added,removed,noop}
	SensorDeletes  prometheus.Counter
	SensorsTracked prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		WeatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "envboard",
			Name:      "weather_fetches_total",
			Help:      "Outbound weather lookups by outcome.",
		}, []string{"outcome"}),
		ToggleOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "envboard",
			Name:      "sensor_toggle_ops_total",
			Help:      "Sensor toggle operations by action.",
		}, []string{"action"}),
		SensorDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "envboard",
			Name:      "sensor_deletes_total",
			Help:      "Per-row sensor deletions.",
		}),
		SensorsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "envboard",
			Name:      "sensors_tracked",
			Help:      "Number of sensor readings currently persisted.",
		}),
	}

	prometheus.MustRegister(
		m.WeatherFetches,
		m.ToggleOps,
		m.SensorDeletes,
		m.SensorsTracked,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		WeatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "envboard", Name: "weather_fetches_total"}, []string{"outcome"}),
		ToggleOps:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "envboard", Name: "sensor_toggle_ops_total"}, []string{"action"}),
		SensorDeletes:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "envboard", Name: "sensor_deletes_total"}),
		SensorsTracked: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "envboard", Name: "sensors_tracked"}),
	}
}
