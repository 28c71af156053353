//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=analytics_test
package analytics

import (
	"context"
	"time"

	"geleverd/internal/entities"
)

type OrderRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByStatus(ctx context.Context, status entities.OrderStatusType) (int64, error)
	CountByStatusSince(ctx context.Context, status entities.OrderStatusType, since time.Time) (int64, error)
	SumRevenueSince(ctx context.Context, since time.Time) (float64, error)
	AveragePriceSince(ctx context.Context, since time.Time) (float64, error)
	RevenueByDay(ctx context.Context, since time.Time) ([]entities.RevenueReport, error)
	VehicleTypeCountsSince(ctx context.Context, since time.Time) ([]entities.VehicleTypeCount, error)
}

type CourierRepository interface {
	CountActive(ctx context.Context) (int64, error)
	TopByDeliveries(ctx context.Context, limit uint64) ([]entities.CourierPerformance, error)
}
