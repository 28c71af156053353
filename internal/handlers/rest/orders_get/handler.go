package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"geleverd/internal/dto"
	"geleverd/internal/entities"
	"geleverd/internal/service/order"
	"geleverd/pkg/logger"
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
	filter, err := filterFromQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.OrdersFromEntities(orders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func filterFromQuery(r *http.Request) (entities.OrderFilter, error) {
	var filter entities.OrderFilter
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.Skip = skip
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.Limit = limit
	}

	if raw := query.Get("status"); raw != "" {
		status := entities.OrderStatusType(raw)
		filter.Status = &status
	}

	if raw := query.Get("search"); raw != "" {
		filter.Search = &raw
	}

	return filter, nil
}
