package validation

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/vidyarathna/order-workflow-api/internal/entities"
	"github.com/vidyarathna/order-workflow-api/internal/service/order"
	"github.com/vidyarathna/order-workflow-api/internal/workflow"
	"github.com/vidyarathna/order-workflow-api/pkg/logger"
)

type Coordinator struct {
	log        logger.Logger
	repository Repository
	executor   Executor
	registry   *registry
	checkDelay time.Duration
}

func New(log logger.Logger, repository Repository, executor Executor, checkDelay time.Duration) *Coordinator {
	return &Coordinator{
		log:        log,
		repository: repository,
		executor:   executor,
		registry:   newRegistry(),
		checkDelay: checkDelay,
	}
}

// Start синхронно проверяет предусловия, регистрирует заказ как "в работе"
// и возвращается, не дожидаясь результата. На один заказ одновременно
// может выполняться не больше одной валидации.
func (c *Coordinator) Start(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return order.ErrInvalidOrderID
	}

	orderEntity, err := c.repository.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if !workflow.CanTransition(orderEntity.Status, workflow.EventValidateSucceeded) {
		return &workflow.InvalidTransitionError{
			Status: orderEntity.Status,
			Event:  workflow.EventValidateSucceeded,
		}
	}

	if !c.registry.tryAdd(orderID) {
		return ErrValidationInProgress
	}

	c.executor.Execute(func() {
		c.runValidation(orderID)
	})

	return nil
}

// InProgress для хелсчеков и тестов, другие компоненты реестр не читают.
func (c *Coordinator) InProgress(orderID int64) bool {
	return c.registry.contains(orderID)
}

// runValidation выполняется вне жизненного цикла запроса и проверяет
// свежее состояние заказа: правка payload между запуском и проверкой меняет
// исход. Слот в реестре освобождается на любом пути выхода, включая панику.
// Ошибки не ретраятся: заказ остается в последнем закоммиченном статусе.
func (c *Coordinator) runValidation(orderID int64) {
	defer c.registry.remove(orderID)
	defer func() {
		if r := recover(); r != nil {
			ValidationCompletedTotal.WithLabelValues(outcomePanic).Inc()
			c.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			).Error("validation task panic")
		}
	}()

	if c.checkDelay > 0 {
		time.Sleep(c.checkDelay)
	}

	ctx := context.Background()

	orderEntity, err := c.repository.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			// заказ исчез, делать нечего
			return
		}
		ValidationCompletedTotal.WithLabelValues(outcomeError).Inc()
		c.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Error("read order for validation")
		return
	}

	event := workflow.EventValidateSucceeded
	if !isValidPayload(orderEntity) {
		event = workflow.EventValidateFailed
	}

	next, err := workflow.Next(entities.OrderCreated, event)
	if err != nil {
		ValidationCompletedTotal.WithLabelValues(outcomeError).Inc()
		c.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Error("validation transition rejected")
		return
	}

	_, err = c.repository.UpdateStatus(ctx, orderID, entities.OrderCreated, next)
	if err != nil {
		outcome := outcomeError
		if errors.Is(err, order.ErrStatusConflict) || errors.Is(err, order.ErrOrderNotFound) {
			// заказ успели отклонить параллельным запросом
			outcome = outcomeConflict
		}
		ValidationCompletedTotal.WithLabelValues(outcome).Inc()
		c.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("next_status", next.String()),
			logger.NewField("error", err),
		).Error("validation result not persisted")
		return
	}

	outcome := outcomeValidated
	if next == entities.OrderRejected {
		outcome = outcomeRejected
	}
	ValidationCompletedTotal.WithLabelValues(outcome).Inc()

	c.log.With(
		logger.NewField("order_id", orderID),
		logger.NewField("status", next.String()),
	).Info("validation completed")
}

func isValidPayload(orderEntity *entities.Order) bool {
	return orderEntity.ProductID > 0 && orderEntity.Quantity > 0 && orderEntity.Price > 0
}
