package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vidyarathna/order-workflow-api/internal/dto"
	"github.com/vidyarathna/order-workflow-api/internal/entities"
	"github.com/vidyarathna/order-workflow-api/internal/service/order"
	"github.com/vidyarathna/order-workflow-api/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		ProductID: &orderCreateDTO.ProductID,
		Quantity:  &orderCreateDTO.Quantity,
		Price:     &orderCreateDTO.Price,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:        orderEntity.ID,
		ProductID: orderEntity.ProductID,
		Quantity:  orderEntity.Quantity,
		Price:     orderEntity.Price,
		Status:    orderEntity.Status.String(),
		CreatedAt: orderEntity.CreatedAt,
		UpdatedAt: orderEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
