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

// Business Metrics
var (
	SchedineSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSchedineSubmitted,
			Help: HelpTextSchedineSubmitted,
		},
	)

	SchedineScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSchedineScored,
			Help: HelpTextSchedineScored,
		},
	)

	RoundsSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsSettled,
			Help: HelpTextRoundsSettled,
		},
	)

	PayoutsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayoutsAwarded,
			Help: HelpTextPayoutsAwarded,
		},
		[]string{LabelPrizeType},
	)

	PokerJackpot = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePokerJackpot,
			Help: HelpTextPokerJackpot,
		},
	)

	HighestOddsJackpot = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHighestOddsJackpot,
			Help: HelpTextHighestOddsJackpot,
		},
	)
)
