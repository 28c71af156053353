package order

import (
	"context"
	"fmt"
	"time"

	"geleverd/internal/entities"
)

// Aggregate queries for the analytics service. Revenue and average
// price exclude cancelled orders.

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository countall error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE created_at >= $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository countsince error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status entities.OrderStatusType) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status = $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, status.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountByStatusSince(ctx context.Context, status entities.OrderStatusType, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status = $1 AND created_at >= $2`

	var count int64
	err := r.querier.QueryRow(ctx, query, status.String(), since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository countbystatussince error: %w", err)
	}

	return count, nil
}

func (r *Repository) SumRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(price), 0)
		FROM orders
		WHERE created_at >= $1 AND status != 'cancelled'`

	var revenue float64
	err := r.querier.QueryRow(ctx, query, since).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository sumrevenue error: %w", err)
	}

	return revenue, nil
}

func (r *Repository) AveragePriceSince(ctx context.Context, since time.Time) (float64, error) {
	query := `SELECT COALESCE(AVG(price), 0)
		FROM orders
		WHERE created_at >= $1 AND status != 'cancelled'`

	var average float64
	err := r.querier.QueryRow(ctx, query, since).Scan(&average)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository averageprice error: %w", err)
	}

	return average, nil
}

// RevenueByDay returns one row per calendar day that has at least one
// non-cancelled order; days without orders are absent and the caller
// zero-fills them. Days are bucketed in UTC regardless of the session
// time zone so they line up with the caller's UTC date keys.
func (r *Repository) RevenueByDay(ctx context.Context, since time.Time) ([]entities.RevenueReport, error) {
	query := `SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day,
			COALESCE(SUM(price), 0),
			COUNT(*)
		FROM orders
		WHERE created_at >= $1 AND status != 'cancelled'
		GROUP BY day
		ORDER BY day`

	rows, err := r.querier.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository revenuebyday error: %w", err)
	}
	defer rows.Close()

	reports := make([]entities.RevenueReport, 0, 8)
	for rows.Next() {
		var dayModel RevenueDayDB
		err := rows.Scan(&dayModel.Day, &dayModel.Revenue, &dayModel.OrdersCount)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository revenuebyday error: %w", err)
		}
		reports = append(reports, entities.RevenueReport{
			Date:        dayModel.Day.UTC().Format("2006-01-02"),
			Revenue:     dayModel.Revenue,
			OrdersCount: dayModel.OrdersCount,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository revenuebyday error: %w", err)
	}

	return reports, nil
}

func (r *Repository) VehicleTypeCountsSince(ctx context.Context, since time.Time) ([]entities.VehicleTypeCount, error) {
	query := `SELECT vehicle_type, COUNT(*)
		FROM orders
		WHERE created_at >= $1
		GROUP BY vehicle_type
		ORDER BY COUNT(*) DESC`

	rows, err := r.querier.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository vehicletypecounts error: %w", err)
	}
	defer rows.Close()

	counts := make([]VehicleTypeCountDB, 0, 4)
	for rows.Next() {
		var countModel VehicleTypeCountDB
		err := rows.Scan(&countModel.VehicleType, &countModel.Count)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository vehicletypecounts error: %w", err)
		}
		counts = append(counts, countModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository vehicletypecounts error: %w", err)
	}

	return ToDomainVehicleTypeCounts(counts), nil
}
