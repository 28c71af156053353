package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.Order{
		CustomerName:        orderCreateDTO.CustomerName,
		CustomerEmail:       orderCreateDTO.CustomerEmail,
		CustomerPhone:       orderCreateDTO.CustomerPhone,
		PickupAddress:       dto.AddressToEntity(orderCreateDTO.PickupAddress),
		DeliveryAddress:     dto.AddressToEntity(orderCreateDTO.DeliveryAddress),
		VehicleType:         entities.VehicleType(orderCreateDTO.VehicleType),
		SpecialInstructions: orderCreateDTO.SpecialInstructions,
	}

	created, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidEmail),
			errors.Is(err, order.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.OrderFromEntity(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
