package order

import "time"

type OrderDB struct {
	ID                  string
	TrackingNumber      string
	CustomerID          string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	PickupStreet        string
	PickupCity          string
	PickupPostalCode    string
	PickupCountry       string
	DeliveryStreet      string
	DeliveryCity        string
	DeliveryPostalCode  string
	DeliveryCountry     string
	VehicleType         string
	Status              string
	Price               float64
	Distance            float64
	CourierID           *string
	CourierName         *string
	PickupTime          *time.Time
	DeliveryTime        *time.Time
	EstimatedDelivery   *time.Time
	SpecialInstructions *string
	Notes               *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type OrderModifyDB struct {
	ID                *string
	Status            *string
	CourierID         *string
	CourierName       *string
	PickupTime        *time.Time
	DeliveryTime      *time.Time
	EstimatedDelivery *time.Time
	Notes             *string
}

type RevenueDayDB struct {
	Day         time.Time
	Revenue     float64
	OrdersCount int64
}

type VehicleTypeCountDB struct {
	VehicleType string
	Count       int64
}
