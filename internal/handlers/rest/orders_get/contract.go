//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_get_test
package orders_get

import (
	"context"

	"github.com/vidyarathna/order-workflow-api/internal/entities"
	"github.com/vidyarathna/order-workflow-api/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListOrders(ctx context.Context, limit, offset int64) ([]entities.Order, error)
}
