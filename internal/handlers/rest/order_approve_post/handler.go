package order_approve_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/vidyarathna/order-workflow-api/internal/dto"
	"github.com/vidyarathna/order-workflow-api/internal/service/order"
	"github.com/vidyarathna/order-workflow-api/internal/workflow"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.Approve(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, workflow.ErrInvalidTransition):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:        orderEntity.ID,
		ProductID: orderEntity.ProductID,
		Quantity:  orderEntity.Quantity,
		Price:     orderEntity.Price,
		Status:    orderEntity.Status.String(),
		CreatedAt: orderEntity.CreatedAt,
		UpdatedAt: orderEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
