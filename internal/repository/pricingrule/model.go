package pricingrule

import "time"

type PricingRuleDB struct {
	ID             string
	Name           string
	VehicleType    string
	BasePrice      float64
	PricePerKm     float64
	TimeMultiplier float64
	AreaMultiplier float64
	IsActive       bool
	CreatedAt      time.Time
}
