//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seed_test
package seed

import (
	"context"

	"geleverd/internal/entities"
	"geleverd/pkg/logger"
)

type seedLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type AdminRepository interface {
	Create(ctx context.Context, adminEntity entities.Admin) error
	GetByUsername(ctx context.Context, username string) (*entities.Admin, error)
}

type RuleRepository interface {
	Create(ctx context.Context, ruleEntity entities.PricingRule) error
	Count(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
