package entities

// DashboardStats is recomputed from the order and courier tables on
// every request; nothing here is cached.
type DashboardStats struct {
	TotalOrders     int64
	OrdersToday     int64
	RevenueToday    float64
	RevenueMonth    float64
	ActiveCouriers  int64
	PendingOrders   int64
	CompletedOrders int64
	AvgDeliveryTime float64
}

// RevenueReport is one calendar day of a revenue time series.
// Date is formatted YYYY-MM-DD.
type RevenueReport struct {
	Date        string
	Revenue     float64
	OrdersCount int64
}

type OrderAnalytics struct {
	Period          string
	TotalOrders     int64
	CompletedOrders int64
	CancelledOrders int64
	AveragePrice    float64
	// PopularVehicleTypes is ordered by descending count.
	PopularVehicleTypes []VehicleTypeCount
}

type VehicleTypeCount struct {
	VehicleType VehicleType
	Count       int64
}

type CourierPerformance struct {
	ID              string
	Name            string
	TotalDeliveries int64
	Rating          float64
	Status          CourierStatusType
}

type PerformanceMetrics struct {
	DeliveryTimes        DeliveryTimes
	TopCouriers          []CourierPerformance
	CompletionRate       float64
	TotalOrdersProcessed int64
}

// DeliveryTimes are static placeholders carried over from the legacy
// dashboard; real measurements need pickup/delivery timestamps that
// are rarely filled in yet.
type DeliveryTimes struct {
	AveragePickupTime   float64
	AverageDeliveryTime float64
	OnTimeDeliveryRate  float64
}
