//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_validate_post_test
package order_validate_post

import (
	"context"

	"github.com/vidyarathna/order-workflow-api/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Start(ctx context.Context, orderID int64) error
}
