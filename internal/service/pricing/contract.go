//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
package pricing

import (
	"context"

	"geleverd/internal/entities"
)

type RuleRepository interface {
	GetActiveByVehicleType(ctx context.Context, vehicleType entities.VehicleType) (*entities.PricingRule, error)
}

type Estimator interface {
	Estimate(ctx context.Context, pickupPostalCode, deliveryPostalCode string) (float64, error)
}
