package stale_orders

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StaleOrdersGauge = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "stale_orders",
		Help: "Number of orders stuck in a non-terminal status longer than the configured threshold",
	},
	[]string{"status"},
)
