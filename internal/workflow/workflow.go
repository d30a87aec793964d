package workflow

import (
	"github.com/vidyarathna/order-workflow-api/internal/entities"
)

// Event это внешнее намерение сменить статус заказа.
type Event string

const (
	EventValidateSucceeded Event = "validate-succeeded"
	EventValidateFailed    Event = "validate-failed"
	EventApprove           Event = "approve"
	EventReject            Event = "reject"
)

func (e Event) String() string {
	return string(e)
}

type edge struct {
	status entities.OrderStatusType
	event  Event
}

// Полный граф переходов. Пары вне таблицы запрещены,
// у APPROVED и REJECTED исходящих рёбер нет.
var transitions = map[edge]entities.OrderStatusType{
	{entities.OrderCreated, EventValidateSucceeded}: entities.OrderValidated,
	{entities.OrderCreated, EventValidateFailed}:    entities.OrderRejected,
	{entities.OrderCreated, EventReject}:            entities.OrderRejected,
	{entities.OrderValidated, EventApprove}:         entities.OrderApproved,
	{entities.OrderValidated, EventReject}:          entities.OrderRejected,
}

func CanTransition(status entities.OrderStatusType, event Event) bool {
	_, ok := transitions[edge{status: status, event: event}]
	return ok
}

// Next возвращает статус, в который переводит event из status.
// Никаких побочных эффектов: сохранение результата лежит на вызывающем.
func Next(status entities.OrderStatusType, event Event) (entities.OrderStatusType, error) {
	next, ok := transitions[edge{status: status, event: event}]
	if !ok {
		return "", &InvalidTransitionError{Status: status, Event: event}
	}
	return next, nil
}
