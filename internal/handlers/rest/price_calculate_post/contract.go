//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=price_calculate_post_test
package price_calculate_post

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
	CalculatePrice(ctx context.Context, vehicleType entities.VehicleType, pickupPostalCode, deliveryPostalCode string) (*entities.PriceCalculation, error)
}
