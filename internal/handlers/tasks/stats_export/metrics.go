package stats_export

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_orders_total",
			Help: "Total number of orders in the system",
		},
	)

	OrdersPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_orders_pending",
			Help: "Number of orders waiting for a courier",
		},
	)

	OrdersDelivered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_orders_delivered",
			Help: "Number of orders delivered",
		},
	)

	CouriersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_couriers_active",
			Help: "Number of couriers currently available or busy",
		},
	)

	RevenueToday = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_revenue_today_euros",
			Help: "Revenue of orders created since midnight UTC",
		},
	)
)
