package entities

import "time"

type Order struct {
	ID        int64
	ProductID int64
	Quantity  int64
	Price     float64
	Status    OrderStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "CREATED"
	OrderValidated OrderStatusType = "VALIDATED"
	OrderApproved  OrderStatusType = "APPROVED"
	OrderRejected  OrderStatusType = "REJECTED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, что у статуса нет исходящих переходов.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderApproved || s == OrderRejected
}

type OrderModify struct {
	ProductID *int64
	Quantity  *int64
	Price     *float64
}
