package dashboard_get

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
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.DashboardStats{
		TotalOrders:     stats.TotalOrders,
		OrdersToday:     stats.OrdersToday,
		RevenueToday:    stats.RevenueToday,
		RevenueMonth:    stats.RevenueMonth,
		ActiveCouriers:  stats.ActiveCouriers,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		AvgDeliveryTime: stats.AvgDeliveryTime,
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
