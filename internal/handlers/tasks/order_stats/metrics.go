package order_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrdersByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orders_by_status",
		Help: "Current number of orders per workflow status",
	},
	[]string{"status"},
)
