package workflow

import (
	"errors"
	"fmt"

	"github.com/vidyarathna/order-workflow-api/internal/entities"
)

// ErrInvalidTransition для проверок через errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError несет текущий статус и событие для диагностики на границе API.
type InvalidTransitionError struct {
	Status entities.OrderStatusType
	Event  Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: event %q is not allowed in status %q", e.Event, e.Status)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
