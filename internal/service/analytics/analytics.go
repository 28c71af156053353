package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"geleverd/internal/entities"
)

const (
	defaultReportDays = 30
	maxReportDays     = 365

	topCouriersLimit = 10
)

// Static delivery-time figures for the dashboard. Real measurements
// need pickup and delivery timestamps, which are rarely filled in yet.
var staticDeliveryTimes = entities.DeliveryTimes{
	AveragePickupTime:   25.3,
	AverageDeliveryTime: 45.7,
	OnTimeDeliveryRate:  94.2,
}

var periodDays = map[string]int{
	"week":  7,
	"month": 30,
	"year":  365,
}

type Analytics struct {
	orders   OrderRepository
	couriers CourierRepository
}

func New(orders OrderRepository, couriers CourierRepository) *Analytics {
	return &Analytics{
		orders:   orders,
		couriers: couriers,
	}
}

// DashboardStats aggregates the admin dashboard counters. "Today" and
// "this month" are UTC calendar windows, not rolling ones.
func (s *Analytics) DashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	totalOrders, err := s.orders.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	ordersToday, err := s.orders.CountSince(ctx, todayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's orders: %w", err)
	}

	revenueToday, err := s.orders.SumRevenueSince(ctx, todayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's revenue: %w", err)
	}

	revenueMonth, err := s.orders.SumRevenueSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to sum month revenue: %w", err)
	}

	activeCouriers, err := s.couriers.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active couriers: %w", err)
	}

	pendingOrders, err := s.orders.CountByStatus(ctx, entities.OrderPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	completedOrders, err := s.orders.CountByStatus(ctx, entities.OrderDelivered)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed orders: %w", err)
	}

	return &entities.DashboardStats{
		TotalOrders:     totalOrders,
		OrdersToday:     ordersToday,
		RevenueToday:    round2(revenueToday),
		RevenueMonth:    round2(revenueMonth),
		ActiveCouriers:  activeCouriers,
		PendingOrders:   pendingOrders,
		CompletedOrders: completedOrders,
		AvgDeliveryTime: staticDeliveryTimes.AverageDeliveryTime,
	}, nil
}

// RevenueReports returns one entry per calendar day for the last
// `days` days, oldest first. Days without orders are zero-filled so
// the chart never has holes.
func (s *Analytics) RevenueReports(ctx context.Context, days int) ([]entities.RevenueReport, error) {
	if days <= 0 {
		days = defaultReportDays
	}
	if days > maxReportDays {
		days = maxReportDays
	}

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := todayStart.AddDate(0, 0, -(days - 1))

	rows, err := s.orders.RevenueByDay(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue by day: %w", err)
	}

	byDate := make(map[string]entities.RevenueReport, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row
	}

	reports := make([]entities.RevenueReport, 0, days)
	for i := 0; i < days; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		if row, ok := byDate[date]; ok {
			row.Revenue = round2(row.Revenue)
			reports = append(reports, row)
			continue
		}
		reports = append(reports, entities.RevenueReport{Date: date})
	}

	return reports, nil
}

// OrderAnalytics summarizes a rolling window. Unknown period names
// fall back to a month rather than failing.
func (s *Analytics) OrderAnalytics(ctx context.Context, period string) (*entities.OrderAnalytics, error) {
	days, ok := periodDays[period]
	if !ok {
		period = "month"
		days = periodDays[period]
	}

	since := time.Now().UTC().AddDate(0, 0, -days)

	totalOrders, err := s.orders.CountSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	completedOrders, err := s.orders.CountByStatusSince(ctx, entities.OrderDelivered, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed orders: %w", err)
	}

	cancelledOrders, err := s.orders.CountByStatusSince(ctx, entities.OrderCancelled, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count cancelled orders: %w", err)
	}

	averagePrice, err := s.orders.AveragePriceSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to average order price: %w", err)
	}

	popularVehicleTypes, err := s.orders.VehicleTypeCountsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicle types: %w", err)
	}

	return &entities.OrderAnalytics{
		Period:              period,
		TotalOrders:         totalOrders,
		CompletedOrders:     completedOrders,
		CancelledOrders:     cancelledOrders,
		AveragePrice:        round2(averagePrice),
		PopularVehicleTypes: popularVehicleTypes,
	}, nil
}

// PerformanceMetrics ranks couriers and computes the all-time
// completion rate. An empty order table yields a zero rate, not a
// division error.
func (s *Analytics) PerformanceMetrics(ctx context.Context) (*entities.PerformanceMetrics, error) {
	topCouriers, err := s.couriers.TopByDeliveries(ctx, topCouriersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank couriers: %w", err)
	}

	totalOrders, err := s.orders.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	deliveredOrders, err := s.orders.CountByStatus(ctx, entities.OrderDelivered)
	if err != nil {
		return nil, fmt.Errorf("failed to count delivered orders: %w", err)
	}

	var completionRate float64
	if totalOrders > 0 {
		completionRate = round2(float64(deliveredOrders) / float64(totalOrders) * 100)
	}

	return &entities.PerformanceMetrics{
		DeliveryTimes:        staticDeliveryTimes,
		TopCouriers:          topCouriers,
		CompletionRate:       completionRate,
		TotalOrdersProcessed: totalOrders,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
