package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// EventsPublished counts every event seen by the collector
var EventsPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: MetricNameEventsPublished,
		Help: HelpTextEventsPublished,
	},
	[]string{LabelType},
)

// Lottery Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelPrize},
	)

	DrawsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsRejected,
			Help: HelpTextDrawsRejected,
		},
		[]string{LabelReason},
	)

	RatingsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRatingsSubmitted,
			Help: HelpTextRatingsSubmitted,
		},
		[]string{LabelRating},
	)

	Redemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRedemptions,
			Help: HelpTextRedemptions,
		},
		[]string{LabelOutcome},
	)

	ClaimsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClaimsExpired,
			Help: HelpTextClaimsExpired,
		},
	)

	CampaignScans = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCampaignScans,
			Help: HelpTextCampaignScans,
		},
	)

	Anomalies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnomalies,
			Help: HelpTextAnomalies,
		},
		[]string{LabelKind},
	)
)
