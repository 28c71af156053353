//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=performance_get_test
package performance_get

import (
	"context"

	"geleverd/internal/entities"
	"geleverd/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PerformanceMetrics(ctx context.Context) (*entities.PerformanceMetrics, error)
}
