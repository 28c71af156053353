package entities

import "time"

type Courier struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	VehicleType     VehicleType
	LicensePlate    string
	Status          CourierStatusType
	Rating          float64
	TotalDeliveries int64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CourierStatusType string

const (
	CourierAvailable CourierStatusType = "available"
	CourierBusy      CourierStatusType = "busy"
	CourierOffline   CourierStatusType = "offline"
)

const DefaultCourierStatus = CourierOffline

func (t CourierStatusType) String() string {
	return string(t)
}

type CourierModify struct {
	ID           *string
	Name         *string
	Email        *string
	Phone        *string
	VehicleType  *VehicleType
	LicensePlate *string
	Status       *CourierStatusType
	IsActive     *bool
}
