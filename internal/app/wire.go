//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"geleverd/internal/handlers/tasks/stats_export"
	"geleverd/internal/pkg/config"
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

	"geleverd/pkg/logger"
	"geleverd/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsExportInterval,
		provideEstimator,

		provideOrderRepository,
		provideCustomerRepository,
		provideCourierRepository,
		providePricingRuleRepository,
		provideAdminRepository,

		provideServicePricing,
		provideServiceOrder,
		provideServiceCourier,
		provideServiceAnalytics,
		provideServiceAuth,
		provideSeeder,

		provideStatsExportTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServicePricing), new(*pricingService.Pricing)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceAnalytics), new(*analyticsService.Analytics)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),

		wire.Bind(new(orderService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CustomerRepository), new(*customerRepo.Repository)),
		wire.Bind(new(orderService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.PricingService), new(*pricingService.Pricing)),
		wire.Bind(new(pricingService.RuleRepository), new(*pricingRuleRepo.Repository)),
		wire.Bind(new(analyticsService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(analyticsService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(authService.AdminRepository), new(*adminRepo.Repository)),

		wire.Bind(new(seed.AdminRepository), new(*adminRepo.Repository)),
		wire.Bind(new(seed.RuleRepository), new(*pricingRuleRepo.Repository)),
		wire.Bind(new(seed.TxManager), new(*tx.Manager)),

		wire.Bind(new(stats_export.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(stats_export.CourierRepository), new(*courierRepo.Repository)),
	)
	return &Application{}, nil
}
