//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_post_test
package order_post

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
	CreateOrder(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
}
