package order_stats

import (
	"context"
	"time"

	"github.com/vidyarathna/order-workflow-api/internal/entities"
	"github.com/vidyarathna/order-workflow-api/pkg/logger"
)

type Service interface {
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type OrderStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderStats(log logger.Logger, service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// статусы без заказов обнуляем явно, иначе gauge застревает на старом значении
	for _, status := range []entities.OrderStatusType{
		entities.OrderCreated,
		entities.OrderValidated,
		entities.OrderApproved,
		entities.OrderRejected,
	} {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
