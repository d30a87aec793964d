package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Requests rejected by the token bucket limiter",
	},
	[]string{"method", "route"},
)
