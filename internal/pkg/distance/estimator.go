package distance

import (
	"context"
)

// Estimator computes the driving distance in kilometers between two
// Dutch postal codes.
type Estimator interface {
	Estimate(ctx context.Context, pickupPostalCode, deliveryPostalCode string) (float64, error)
}
