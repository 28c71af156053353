package courier

import (
	"geleverd/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		VehicleType:     entities.VehicleType(c.VehicleType),
		LicensePlate:    c.LicensePlate,
		Status:          entities.CourierStatusType(c.Status),
		Rating:          c.Rating,
		TotalDeliveries: c.TotalDeliveries,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}

	courierDB := &CourierModifyDB{
		ID:           courierModify.ID,
		Name:         courierModify.Name,
		Email:        courierModify.Email,
		Phone:        courierModify.Phone,
		LicensePlate: courierModify.LicensePlate,
		IsActive:     courierModify.IsActive,
	}

	if courierModify.VehicleType != nil {
		vehicleType := courierModify.VehicleType.String()
		courierDB.VehicleType = &vehicleType
	}
	if courierModify.Status != nil {
		status := courierModify.Status.String()
		courierDB.Status = &status
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}

func ToDomainPerformanceList(performanceDB []CourierPerformanceDB) []entities.CourierPerformance {
	if len(performanceDB) == 0 {
		return []entities.CourierPerformance{}
	}

	result := make([]entities.CourierPerformance, len(performanceDB))
	for i, p := range performanceDB {
		result[i] = entities.CourierPerformance{
			ID:              p.ID,
			Name:            p.Name,
			TotalDeliveries: p.TotalDeliveries,
			Rating:          p.Rating,
			Status:          entities.CourierStatusType(p.Status),
		}
	}
	return result
}
