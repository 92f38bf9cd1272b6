package commands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_commands_published_total",
			Help: "Total number of order commands accepted by the command channel",
		},
		[]string{"command", "outcome"},
	)

	CommandPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_command_publish_duration_seconds",
			Help:    "Duration of enqueueing an order command to the broker",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"command"},
	)
)
