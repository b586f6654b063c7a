package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "drivein"

// Metrics holds the business counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	ordersCreated    prometheus.Counter
	orderTransitions *prometheus.CounterVec
	otpIssued        *prometheus.CounterVec
	otpVerifications *prometheus.CounterVec
	pointsAwarded    prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders placed.",
		}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Order status changes by target status.",
		}, []string{"status"}),
		otpIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_issued_total",
			Help:      "One-time codes sent by purpose.",
		}, []string{"purpose"}),
		otpVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_verifications_total",
			Help:      "One-time code checks by outcome.",
		}, []string{"outcome"}),
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Loyalty points granted.",
		}),
	}
	reg.MustRegister(
		m.ordersCreated,
		m.orderTransitions,
		m.otpIssued,
		m.otpVerifications,
		m.pointsAwarded,
	)
	return m
}

func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

func (m *Metrics) OrderTransitioned(status string) {
	if m == nil {
		return
	}
	m.orderTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) OTPIssued(purpose string) {
	if m == nil {
		return
	}
	m.otpIssued.WithLabelValues(purpose).Inc()
}

// OTPVerified records one check; outcome is "ok", "invalid" or "expired".
func (m *Metrics) OTPVerified(outcome string) {
	if m == nil {
		return
	}
	m.otpVerifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PointsAwarded(points int) {
	if m == nil {
		return
	}
	m.pointsAwarded.Add(float64(points))
}
