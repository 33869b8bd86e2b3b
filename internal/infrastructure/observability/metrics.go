package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los contadores Prometheus de la aplicación.
type Metrics struct {
	// Registry propio para evitar pánicos de "duplicate collector" cuando
	// NewMetrics se llama más de una vez (p. ej. en tests).
	Registry *prometheus.Registry

	checkouts            prometheus.Counter
	returns              prometheus.Counter
	alerts               prometheus.Counter
	notifications        *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
}

// NewMetrics crea un registro Prometheus dedicado y registra los contadores.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		checkouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "fleet_checkouts_total",
			Help: "Retiros de vehículo completados.",
		}),
		returns: factory.NewCounter(prometheus.CounterOpts{
			Name: "fleet_returns_total",
			Help: "Devoluciones de vehículo completadas.",
		}),
		alerts: factory.NewCounter(prometheus.CounterOpts{
			Name: "fleet_accident_alerts_total",
			Help: "Alertas de accidente registradas.",
		}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fleet_notifications_total",
			Help: "Notificaciones agregadas al feed, por tipo.",
		}, []string{"type"}),
		notificationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fleet_notification_failures_total",
			Help: "Notificaciones descartadas por fallo de escritura, por tipo.",
		}, []string{"type"}),
	}
}

// IncCheckout registra un retiro exitoso.
func (m *Metrics) IncCheckout() { m.checkouts.Inc() }

// IncReturn registra una devolución exitosa.
func (m *Metrics) IncReturn() { m.returns.Inc() }

// IncAlert registra una alerta de accidente.
func (m *Metrics) IncAlert() { m.alerts.Inc() }

// IncNotification registra una notificación persistida.
func (m *Metrics) IncNotification(typ string) { m.notifications.WithLabelValues(typ).Inc() }

// IncNotificationFailure registra una notificación perdida.
func (m *Metrics) IncNotificationFailure(typ string) {
	m.notificationFailures.WithLabelValues(typ).Inc()
}
