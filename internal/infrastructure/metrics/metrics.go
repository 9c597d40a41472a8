package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the funds-movement core.
type Metrics struct {
	// Transfer metrics
	TransfersCompleted prometheus.Counter
	TransfersFailed    *prometheus.CounterVec
	TransferAmount     prometheus.Histogram
	TransferDuration   prometheus.Histogram

	// E-transfer metrics
	ETransfersSent   prometheus.Counter
	ETransfersFailed *prometheus.CounterVec
	ETransferAmount  prometheus.Histogram

	// Account metrics
	AccountsOpened  *prometheus.CounterVec
	InterestApplied prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransfersCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundsmove_transfers_completed_total",
			Help: "Total number of completed account-to-account transfers",
		}),
		TransfersFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundsmove_transfers_failed_total",
				Help: "Total number of failed transfers by reason",
			},
			[]string{"reason"},
		),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fundsmove_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fundsmove_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),

		ETransfersSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundsmove_etransfers_sent_total",
			Help: "Total number of sent e-transfers",
		}),
		ETransfersFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundsmove_etransfers_failed_total",
				Help: "Total number of failed e-transfers by reason",
			},
			[]string{"reason"},
		),
		ETransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fundsmove_etransfer_amount",
			Help:    "E-transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 5000},
		}),

		AccountsOpened: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundsmove_accounts_opened_total",
				Help: "Total number of accounts opened by kind",
			},
			[]string{"kind"},
		),
		InterestApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundsmove_interest_applied_total",
			Help: "Total number of monthly interest applications",
		}),
	}
}
