//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/vidyarathna/order-workflow-api/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, id int64, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, expected, next entities.OrderStatusType) (*entities.Order, error)
	List(ctx context.Context, limit, offset int64) ([]entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
