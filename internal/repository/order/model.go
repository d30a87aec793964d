package order

import "time"

type OrderDB struct {
	ID        int64
	ProductID int64
	Quantity  int64
	Price     float64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderModifyDB struct {
	ProductID *int64
	Quantity  *int64
	Price     *float64
}

type StatusCountDB struct {
	Status string
	Count  int64
}
