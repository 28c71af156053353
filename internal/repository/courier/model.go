package courier

import "time"

type CourierDB struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	VehicleType     string
	LicensePlate    string
	Status          string
	Rating          float64
	TotalDeliveries int64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CourierModifyDB struct {
	ID           *string
	Name         *string
	Email        *string
	Phone        *string
	VehicleType  *string
	LicensePlate *string
	Status       *string
	IsActive     *bool
}

type CourierPerformanceDB struct {
	ID              string
	Name            string
	TotalDeliveries int64
	Rating          float64
	Status          string
}
