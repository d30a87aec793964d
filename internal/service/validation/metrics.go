package validation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ValidationCompletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_validation_completed_total",
		Help: "Total number of finished background validation tasks by outcome",
	},
	[]string{"outcome"},
)

const (
	outcomeValidated = "validated"
	outcomeRejected  = "rejected"
	outcomeConflict  = "conflict"
	outcomeError     = "error"
	outcomePanic     = "panic"
)
