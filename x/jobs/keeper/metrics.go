package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// JobsMetrics holds all Prometheus metrics for the jobs module
type JobsMetrics struct {
	JobsPosted   prometheus.Counter
	JobsAccepted prometheus.Counter
	JobsPaid     prometheus.Counter

	EscrowLocked  prometheus.Gauge
	PayoutAmounts prometheus.Histogram
}

var (
	jobsMetricsOnce sync.Once
	jobsMetrics     *JobsMetrics
)

// NewJobsMetrics creates and registers jobs metrics (singleton pattern)
func NewJobsMetrics() *JobsMetrics {
	jobsMetricsOnce.Do(func() {
		jobsMetrics = &JobsMetrics{
			JobsPosted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "loom",
				Subsystem: "jobs",
				Name:      "posted_total",
				Help:      "Total jobs posted",
			}),
			JobsAccepted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "loom",
				Subsystem: "jobs",
				Name:      "accepted_total",
				Help:      "Total jobs accepted by providers",
			}),
			JobsPaid: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "loom",
				Subsystem: "jobs",
				Name:      "paid_total",
				Help:      "Total jobs approved and paid out",
			}),
			EscrowLocked: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "loom",
				Subsystem: "jobs",
				Name:      "escrow_locked_uloom",
				Help:      "Native amount currently locked in the jobs escrow account",
			}),
			PayoutAmounts: promauto.NewHistogram(prometheus.HistogramOpts{
				Namespace: "loom",
				Subsystem: "jobs",
				Name:      "payout_uloom",
				Help:      "Distribution of job payout amounts",
				Buckets:   prometheus.ExponentialBuckets(1_000, 10, 8),
			}),
		}
	})

	return jobsMetrics
}

// gaugeValue converts an Int to float64 without overflowing: amounts past
// int64 range lose precision but never panic.
func gaugeValue(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
