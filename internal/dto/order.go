package dto

import "time"

type OrderCreate struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderUpdate struct {
	ProductID *int64   `json:"product_id,omitempty"`
	Quantity  *int64   `json:"quantity,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

type Order struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ValidationAccepted struct {
	Message string `json:"message"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
