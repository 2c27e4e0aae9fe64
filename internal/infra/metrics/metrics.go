package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics. A single instance is created at
// bootstrap and shared via DI.
type Metrics struct {
	HTTPRequestTotal    *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BatchIssuanceTotal *prometheus.CounterVec
	CodesIssuedTotal   prometheus.Counter
	RedemptionTotal    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "veritag_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "veritag_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),

		BatchIssuanceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "veritag_batch_issuance_total",
			Help: "Batch issuance attempts by outcome",
		}, []string{"outcome"}),

		CodesIssuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "veritag_codes_issued_total",
			Help: "Total number of codes minted",
		}),

		RedemptionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "veritag_redemption_total",
			Help: "Redemption attempts by outcome",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestTotal,
		m.HTTPRequestDuration,
		m.BatchIssuanceTotal,
		m.CodesIssuedTotal,
		m.RedemptionTotal,
	)

	return m
}

// Issuance / redemption outcome labels.
const (
	OutcomeIssued        = "issued"
	OutcomeAlreadyIssued = "already_issued"
	OutcomeFailed        = "failed"
	OutcomeRedeemed      = "redeemed"
	OutcomeReplayed      = "replayed"
	OutcomeInvalid       = "invalid"
)
