package entities

import "time"

type Order struct {
	ID                  string
	TrackingNumber      string
	CustomerID          string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	PickupAddress       Address
	DeliveryAddress     Address
	VehicleType         VehicleType
	Status              OrderStatusType
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

// Address is snapshotted onto the order at creation time so later
// customer edits do not rewrite order history.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

const DefaultCountry = "Nederland"

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderConfirmed OrderStatusType = "confirmed"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID                *string
	Status            *OrderStatusType
	CourierID         *string
	CourierName       *string
	PickupTime        *time.Time
	DeliveryTime      *time.Time
	EstimatedDelivery *time.Time
	Notes             *string
}

// OrderFilter narrows ListOrders. Nil fields mean "no filter".
type OrderFilter struct {
	Status *OrderStatusType
	Search *string
	Skip   uint64
	Limit  uint64
}
