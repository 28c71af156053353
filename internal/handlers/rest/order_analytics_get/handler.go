package order_analytics_get

import (
	"encoding/json"
	"net/http"

	"geleverd/internal/dto"
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
	period := r.URL.Query().Get("period")

	analytics, err := h.service.OrderAnalytics(r.Context(), period)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	vehicleTypes := make([]dto.VehicleTypeCount, len(analytics.PopularVehicleTypes))
	for i, vt := range analytics.PopularVehicleTypes {
		vehicleTypes[i] = dto.VehicleTypeCount{
			VehicleType: string(vt.VehicleType),
			Count:       vt.Count,
		}
	}

	response := dto.OrderAnalytics{
		Period:              analytics.Period,
		TotalOrders:         analytics.TotalOrders,
		CompletedOrders:     analytics.CompletedOrders,
		CancelledOrders:     analytics.CancelledOrders,
		AveragePrice:        analytics.AveragePrice,
		PopularVehicleTypes: vehicleTypes,
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
