package pricingrule

import (
	"geleverd/internal/entities"
)

func ToDomain(p *PricingRuleDB) *entities.PricingRule {
	if p == nil {
		return nil
	}

	return &entities.PricingRule{
		ID:             p.ID,
		Name:           p.Name,
		VehicleType:    entities.VehicleType(p.VehicleType),
		BasePrice:      p.BasePrice,
		PricePerKm:     p.PricePerKm,
		TimeMultiplier: p.TimeMultiplier,
		AreaMultiplier: p.AreaMultiplier,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}
