package performance_get

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
	metrics, err := h.service.PerformanceMetrics(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	topCouriers := make([]dto.CourierPerformance, len(metrics.TopCouriers))
	for i, courier := range metrics.TopCouriers {
		topCouriers[i] = dto.CourierPerformance{
			ID:              courier.ID,
			Name:            courier.Name,
			TotalDeliveries: courier.TotalDeliveries,
			Rating:          courier.Rating,
			Status:          string(courier.Status),
		}
	}

	response := dto.PerformanceMetrics{
		DeliveryTimes: dto.DeliveryTimes{
			AveragePickupTime:   metrics.DeliveryTimes.AveragePickupTime,
			AverageDeliveryTime: metrics.DeliveryTimes.AverageDeliveryTime,
			OnTimeDeliveryRate:  metrics.DeliveryTimes.OnTimeDeliveryRate,
		},
		TopCouriers:          topCouriers,
		CompletionRate:       metrics.CompletionRate,
		TotalOrdersProcessed: metrics.TotalOrdersProcessed,
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
