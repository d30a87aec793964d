//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=validation_test
package validation

import (
	"context"

	"github.com/vidyarathna/order-workflow-api/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, expected, next entities.OrderStatusType) (*entities.Order, error)
}

// Executor абстрагирует механизм запуска фоновой работы,
// чтобы логику координатора можно было тестировать синхронно.
type Executor interface {
	Execute(fn func())
}
