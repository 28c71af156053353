package entities

import "time"

type PricingRule struct {
	ID             string
	Name           string
	VehicleType    VehicleType
	BasePrice      float64
	PricePerKm     float64
	TimeMultiplier float64
	AreaMultiplier float64
	IsActive       bool
	CreatedAt      time.Time
}

// PriceCalculation is a quote. It is never persisted and its
// EstimatedTime is informational only (the order itself carries a
// separate estimated delivery timestamp).
type PriceCalculation struct {
	BasePrice     float64
	DistancePrice float64
	TotalPrice    float64
	EstimatedTime string
	Distance      float64
	VehicleType   VehicleType
}
