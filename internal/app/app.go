package app

import (
	"context"
	"time"

	"geleverd/internal/handlers/rest/admin_login_post"
	"geleverd/internal/handlers/rest/courier_get"
	"geleverd/internal/handlers/rest/courier_post"
	"geleverd/internal/handlers/rest/courier_put"
	"geleverd/internal/handlers/rest/couriers_get"
	"geleverd/internal/handlers/rest/dashboard_get"
	"geleverd/internal/handlers/rest/order_analytics_get"
	"geleverd/internal/handlers/rest/order_delete"
	"geleverd/internal/handlers/rest/order_get"
	"geleverd/internal/handlers/rest/order_post"
	"geleverd/internal/handlers/rest/order_put"
	"geleverd/internal/handlers/rest/order_track_get"
	"geleverd/internal/handlers/rest/orders_get"
	"geleverd/internal/handlers/rest/performance_get"
	"geleverd/internal/handlers/rest/price_calculate_post"
	"geleverd/internal/handlers/rest/revenue_reports_get"
	"geleverd/internal/handlers/tasks/stats_export"
	"geleverd/internal/pkg/config"
	"geleverd/internal/pkg/distance"
	authmw "geleverd/internal/pkg/middlewares/auth"
	"geleverd/internal/pkg/seed"

	adminRepo "geleverd/internal/repository/admin"
	courierRepo "geleverd/internal/repository/courier"
	customerRepo "geleverd/internal/repository/customer"
	orderRepo "geleverd/internal/repository/order"
	pricingRuleRepo "geleverd/internal/repository/pricingrule"
	analyticsService "geleverd/internal/service/analytics"
	authService "geleverd/internal/service/auth"
	courierService "geleverd/internal/service/courier"
	orderService "geleverd/internal/service/order"
	pricingService "geleverd/internal/service/pricing"

	"geleverd/pkg/background"
	"geleverd/pkg/logger"
	"geleverd/pkg/querier"
	"geleverd/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatsExportInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServicePricing    ServicePricing
	ServiceCourier    ServiceCourier
	ServiceAnalytics  ServiceAnalytics
	ServiceAuth       ServiceAuth
	Seeder            *seed.Seeder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_track_get.Service
	orders_get.Service
	order_put.Service
	order_delete.Service
}

type ServicePricing interface {
	price_calculate_post.Service
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
}

type ServiceAnalytics interface {
	dashboard_get.Service
	revenue_reports_get.Service
	order_analytics_get.Service
	performance_get.Service
}

type ServiceAuth interface {
	admin_login_post.Service
	authmw.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func providePricingRuleRepository(querier *querier.Querier) *pricingRuleRepo.Repository {
	return pricingRuleRepo.New(querier)
}

func provideAdminRepository(querier *querier.Querier) *adminRepo.Repository {
	return adminRepo.New(querier)
}

// provideEstimator prefers the Google Maps estimator when an API key is
// configured and keeps the postal estimator as its fallback.
func provideEstimator(cfg *config.Config) (distance.Estimator, error) {
	postal := distance.NewPostalEstimator()
	if cfg.Maps.APIKey == "" {
		return postal, nil
	}
	return distance.NewMapsEstimator(cfg.Maps.APIKey, postal)
}

func provideServicePricing(
	rules pricingService.RuleRepository,
	estimator distance.Estimator,
) *pricingService.Pricing {
	return pricingService.New(rules, estimator)
}

func provideServiceOrder(
	orders orderService.OrderRepository,
	customers orderService.CustomerRepository,
	couriers orderService.CourierRepository,
	pricing orderService.PricingService,
) *orderService.Order {
	return orderService.New(orders, customers, couriers, pricing)
}

func provideServiceCourier(
	repository courierService.Repository,
) *courierService.Courier {
	return courierService.New(repository)
}

func provideServiceAnalytics(
	orders analyticsService.OrderRepository,
	couriers analyticsService.CourierRepository,
) *analyticsService.Analytics {
	return analyticsService.New(orders, couriers)
}

func provideServiceAuth(
	admins authService.AdminRepository,
	cfg *config.Config,
) *authService.Auth {
	return authService.New(admins, cfg.Auth.Secret, cfg.Auth.TokenTTL)
}

func provideSeeder(
	log logger.Logger,
	admins seed.AdminRepository,
	rules seed.RuleRepository,
	txManager seed.TxManager,
	cfg *config.Config,
) *seed.Seeder {
	return seed.New(log, admins, rules, txManager, cfg.Seed)
}

func provideStatsExportInterval(cfg *config.Config) StatsExportInterval {
	return StatsExportInterval(cfg.Tasks.StatsExportInterval)
}

func provideStatsExportTask(
	log logger.Logger,
	orders stats_export.OrderRepository,
	couriers stats_export.CourierRepository,
	interval StatsExportInterval,
) *stats_export.StatsExport {
	return stats_export.NewStatsExport(log, orders, couriers, time.Duration(interval))
}

func provideTaskList(
	statsExportTask *stats_export.StatsExport,
) []background.Task {
	return []background.Task{
		statsExportTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
