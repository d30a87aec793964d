package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vidyarathna/order-workflow-api/internal/dto"
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
	// отсутствующий limit означает дефолт, невалидное число - 400
	limit, present, ok := parseQueryInt(r, "limit")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if !present {
		limit = order.DefaultListLimit
	}
	offset, _, ok := parseQueryInt(r, "offset")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntities, err := h.service.ListOrders(r.Context(), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidLimit),
			errors.Is(err, order.ErrInvalidOffset):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i].ID = orderEntity.ID
		orderDTOs[i].ProductID = orderEntity.ProductID
		orderDTOs[i].Quantity = orderEntity.Quantity
		orderDTOs[i].Price = orderEntity.Price
		orderDTOs[i].Status = orderEntity.Status.String()
		orderDTOs[i].CreatedAt = orderEntity.CreatedAt
		orderDTOs[i].UpdatedAt = orderEntity.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseQueryInt(r *http.Request, name string) (value int64, present, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, true
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, false
	}
	return value, true, true
}
