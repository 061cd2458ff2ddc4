package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CertificatesIssued  *prometheus.CounterVec
	CertificatesDeleted prometheus.Counter
	NumberCollisions    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		CertificatesIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "brgy_certificates_issued_total",
			Help: "Total number of certificates issued, by certificate type",
		}, []string{"type"}),
		CertificatesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "brgy_certificates_deleted_total",
			Help: "Total number of certificates hard-deleted",
		}),
		NumberCollisions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "brgy_certificate_number_collisions_total",
			Help: "Certificate number collisions that triggered a regeneration",
		}),
	}
}

func (m *Metrics) IncIssued(certType string) {
	if m == nil {
		return
	}
	m.CertificatesIssued.WithLabelValues(certType).Inc()
}

func (m *Metrics) IncDeleted() {
	if m == nil {
		return
	}
	m.CertificatesDeleted.Inc()
}

func (m *Metrics) IncCollision() {
	if m == nil {
		return
	}
	m.NumberCollisions.Inc()
}
