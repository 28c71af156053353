package stats_export

import (
	"context"
	"time"

	"geleverd/internal/entities"
	"geleverd/pkg/logger"
)

type OrderRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entities.OrderStatusType) (int64, error)
	SumRevenueSince(ctx context.Context, since time.Time) (float64, error)
}

type CourierRepository interface {
	CountActive(ctx context.Context) (int64, error)
}

// StatsExport periodically publishes order and courier counts as
// Prometheus gauges.
type StatsExport struct {
	log      logger.Logger
	orders   OrderRepository
	couriers CourierRepository
	interval time.Duration
}

func NewStatsExport(
	log logger.Logger,
	orders OrderRepository,
	couriers CourierRepository,
	interval time.Duration,
) *StatsExport {
	return &StatsExport{
		log:      log,
		orders:   orders,
		couriers: couriers,
		interval: interval,
	}
}

func (s *StatsExport) TTL() time.Duration {
	return s.interval
}

func (s *StatsExport) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	total, err := s.orders.CountAll(ctxWithTimeout)
	if err != nil {
		return err
	}
	OrdersTotal.Set(float64(total))

	pending, err := s.orders.CountByStatus(ctxWithTimeout, entities.OrderPending)
	if err != nil {
		return err
	}
	OrdersPending.Set(float64(pending))

	delivered, err := s.orders.CountByStatus(ctxWithTimeout, entities.OrderDelivered)
	if err != nil {
		return err
	}
	OrdersDelivered.Set(float64(delivered))

	active, err := s.couriers.CountActive(ctxWithTimeout)
	if err != nil {
		return err
	}
	CouriersActive.Set(float64(active))

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	revenue, err := s.orders.SumRevenueSince(ctxWithTimeout, todayStart)
	if err != nil {
		return err
	}
	RevenueToday.Set(revenue)

	return nil
}

func (s *StatsExport) Info() string {
	return "stats export"
}
