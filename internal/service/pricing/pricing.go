package pricing

import (
	"context"
	"fmt"
	"math"

	"geleverd/internal/entities"
)

const (
	// Quotes assume an average speed of 30 km/h in urban traffic plus
	// a fixed 15 minutes of handling time.
	averageSpeedKmh   = 30.0
	handlingTimeMin   = 15.0
	defaultMultiplier = 1.0
)

type defaultRate struct {
	basePrice  float64
	pricePerKm float64
}

// defaultRates back every quote when no active pricing rule exists for
// the vehicle type, so a quote can always be produced.
var defaultRates = map[entities.VehicleType]defaultRate{
	entities.Bestelauto: {basePrice: 25.0, pricePerKm: 1.2},
	entities.Bestelbus:  {basePrice: 35.0, pricePerKm: 1.5},
	entities.Bakwagen:   {basePrice: 45.0, pricePerKm: 1.8},
}

type Pricing struct {
	rules     RuleRepository
	estimator Estimator
}

func New(rules RuleRepository, estimator Estimator) *Pricing {
	return &Pricing{
		rules:     rules,
		estimator: estimator,
	}
}

// CalculatePrice quotes a delivery. An unknown vehicle type is priced
// as the default type rather than rejected, a missing or broken
// pricing rule falls back to the built-in rates, and an absent postal
// code is estimated from a default region. The only hard failure is
// the estimator itself erroring (a routing backend outage).
func (s *Pricing) CalculatePrice(ctx context.Context, vehicleType entities.VehicleType, pickupPostalCode, deliveryPostalCode string) (*entities.PriceCalculation, error) {
	if !vehicleType.Valid() {
		vehicleType = entities.DefaultVehicleType
	}

	distanceKm, err := s.estimator.Estimate(ctx, pickupPostalCode, deliveryPostalCode)
	if err != nil {
		return nil, fmt.Errorf("estimate distance: %w", err)
	}

	rate := defaultRates[vehicleType]
	basePrice := rate.basePrice
	pricePerKm := rate.pricePerKm
	timeMultiplier := defaultMultiplier
	areaMultiplier := defaultMultiplier

	rule, err := s.rules.GetActiveByVehicleType(ctx, vehicleType)
	if err == nil {
		basePrice = rule.BasePrice
		pricePerKm = rule.PricePerKm
		timeMultiplier = rule.TimeMultiplier
		areaMultiplier = rule.AreaMultiplier
	}

	distancePrice := distanceKm * pricePerKm
	totalPrice := round2((basePrice + distancePrice) * timeMultiplier * areaMultiplier)

	return &entities.PriceCalculation{
		BasePrice:     basePrice,
		DistancePrice: round2(distancePrice),
		TotalPrice:    totalPrice,
		EstimatedTime: estimatedTime(distanceKm),
		Distance:      distanceKm,
		VehicleType:   vehicleType,
	}, nil
}

func estimatedTime(distanceKm float64) string {
	minutes := int(distanceKm/averageSpeedKmh*60.0 + handlingTimeMin)
	return fmt.Sprintf("%d minuten", minutes)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
