package order

import (
	"context"
	"fmt"

	"github.com/vidyarathna/order-workflow-api/internal/entities"
	"github.com/vidyarathna/order-workflow-api/internal/workflow"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

type Order struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ProductID == nil ||
		orderModify.Quantity == nil ||
		orderModify.Price == nil {
		return nil, ErrMissingRequiredFields
	}

	// product_id здесь не проверяем, некорректный product_id отбрасывает
	// асинхронная валидация переводом в REJECTED
	if !isValidQuantity(*orderModify.Quantity) {
		return nil, ErrInvalidQuantity
	}
	if !isValidPrice(*orderModify.Price) {
		return nil, ErrInvalidPrice
	}

	order, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// UpdateOrder меняет только поля заказа, статус трогают Approve/Reject и валидация.
// Правки терминальных заказов отклоняются.
func (s *Order) UpdateOrder(ctx context.Context, id int64, orderModify entities.OrderModify) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	if orderModify.ProductID == nil &&
		orderModify.Quantity == nil &&
		orderModify.Price == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if orderModify.Quantity != nil && !isValidQuantity(*orderModify.Quantity) {
		return nil, ErrInvalidQuantity
	}
	if orderModify.Price != nil && !isValidPrice(*orderModify.Price) {
		return nil, ErrInvalidPrice
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status.IsTerminal() {
			return ErrOrderTerminal
		}

		updated, err = s.repository.Update(ctx, id, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Order) ListOrders(ctx context.Context, limit, offset int64) ([]entities.Order, error) {
	if limit < 1 || limit > MaxListLimit {
		return nil, ErrInvalidLimit
	}
	if offset < 0 {
		return nil, ErrInvalidOffset
	}

	orders, err := s.repository.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *Order) Approve(ctx context.Context, id int64) (*entities.Order, error) {
	return s.applyEvent(ctx, id, workflow.EventApprove)
}

func (s *Order) Reject(ctx context.Context, id int64) (*entities.Order, error) {
	return s.applyEvent(ctx, id, workflow.EventReject)
}

func (s *Order) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	return counts, nil
}

// applyEvent читает заказ и выполняет условный переход в одной транзакции.
// Гонку на одном id разрешает предикат по ожидаемому статусу в репозитории:
// проигравший получает ErrStatusConflict.
func (s *Order) applyEvent(ctx context.Context, id int64, event workflow.Event) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		next, err := workflow.Next(order.Status, event)
		if err != nil {
			return err
		}

		updated, err = s.repository.UpdateStatus(ctx, id, order.Status, next)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
