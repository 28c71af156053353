package price_calculate_post

import (
	"encoding/json"
	"net/http"

	"geleverd/internal/dto"
	"geleverd/internal/entities"
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
	var requestDTO dto.PriceCalculationRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	calculation, err := h.service.CalculatePrice(
		r.Context(),
		entities.VehicleType(requestDTO.VehicleType),
		requestDTO.PickupAddress.PostalCode,
		requestDTO.DeliveryAddress.PostalCode,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.PriceCalculationResponse{
		BasePrice:     calculation.BasePrice,
		DistancePrice: calculation.DistancePrice,
		TotalPrice:    calculation.TotalPrice,
		EstimatedTime: calculation.EstimatedTime,
		Distance:      calculation.Distance,
		VehicleType:   calculation.VehicleType.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
