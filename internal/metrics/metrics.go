package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion Metrics
var (
	ItemsConverted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsConverted,
			Help: HelpTextItemsConverted,
		},
		[]string{LabelDirection, LabelOutcome},
	)

	ItemFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemFailures,
			Help: HelpTextItemFailures,
		},
		[]string{LabelReason},
	)
)

// Batch Metrics
var (
	BatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBatchDuration,
			Help:    HelpTextBatchDuration,
			Buckets: BatchLatencyBuckets,
		},
		[]string{LabelCommand},
	)

	BatchesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBatchesInFlight,
			Help: HelpTextBatchesInFlight,
		},
	)

	FilesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFilesProcessed,
			Help: HelpTextFilesProcessed,
		},
		[]string{LabelCommand, LabelOutcome},
	)
)

// Pool Cache Metrics
var (
	PoolCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePoolCacheHits,
			Help: HelpTextPoolCacheHits,
		},
	)

	PoolCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePoolCacheMisses,
			Help: HelpTextPoolCacheMisses,
		},
	)
)
