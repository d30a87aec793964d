package order

import (
	"github.com/vidyarathna/order-workflow-api/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:        o.ID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Price:     o.Price,
		Status:    entities.OrderStatusType(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ProductID != nil {
		orderDB.ProductID = orderModify.ProductID
	}
	if orderModify.Quantity != nil {
		orderDB.Quantity = orderModify.Quantity
	}
	if orderModify.Price != nil {
		orderDB.Price = orderModify.Price
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
