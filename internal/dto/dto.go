// Package dto holds the JSON request and response bodies of the REST
// API. The wire format uses snake_case field names throughout.
package dto

import "time"

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country,omitempty"`
}

type PriceCalculationRequest struct {
	PickupAddress   Address `json:"pickup_address"`
	DeliveryAddress Address `json:"delivery_address"`
	VehicleType     string  `json:"vehicle_type"`
}

type PriceCalculationResponse struct {
	BasePrice     float64 `json:"base_price"`
	DistancePrice float64 `json:"distance_price"`
	TotalPrice    float64 `json:"total_price"`
	EstimatedTime string  `json:"estimated_time"`
	Distance      float64 `json:"distance"`
	VehicleType   string  `json:"vehicle_type"`
}

type OrderCreate struct {
	CustomerName        string  `json:"customer_name"`
	CustomerEmail       string  `json:"customer_email"`
	CustomerPhone       string  `json:"customer_phone"`
	PickupAddress       Address `json:"pickup_address"`
	DeliveryAddress     Address `json:"delivery_address"`
	VehicleType         string  `json:"vehicle_type"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

type OrderUpdate struct {
	Status            *string    `json:"status,omitempty"`
	CourierID         *string    `json:"courier_id,omitempty"`
	PickupTime        *time.Time `json:"pickup_time,omitempty"`
	DeliveryTime      *time.Time `json:"delivery_time,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

type Order struct {
	ID                  string     `json:"id"`
	TrackingNumber      string     `json:"tracking_number"`
	CustomerName        string     `json:"customer_name"`
	CustomerEmail       string     `json:"customer_email"`
	CustomerPhone       string     `json:"customer_phone"`
	PickupAddress       Address    `json:"pickup_address"`
	DeliveryAddress     Address    `json:"delivery_address"`
	VehicleType         string     `json:"vehicle_type"`
	Status              string     `json:"status"`
	Price               float64    `json:"price"`
	Distance            float64    `json:"distance"`
	CourierID           *string    `json:"courier_id,omitempty"`
	CourierName         *string    `json:"courier_name,omitempty"`
	PickupTime          *time.Time `json:"pickup_time,omitempty"`
	DeliveryTime        *time.Time `json:"delivery_time,omitempty"`
	EstimatedDelivery   *time.Time `json:"estimated_delivery,omitempty"`
	SpecialInstructions *string    `json:"special_instructions,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type OrderDeleteResponse struct {
	Message string `json:"message"`
}

type AdminLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Admin struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Admin       Admin  `json:"admin"`
}

type DashboardStats struct {
	TotalOrders     int64   `json:"total_orders"`
	OrdersToday     int64   `json:"orders_today"`
	RevenueToday    float64 `json:"revenue_today"`
	RevenueMonth    float64 `json:"revenue_month"`
	ActiveCouriers  int64   `json:"active_couriers"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	AvgDeliveryTime float64 `json:"avg_delivery_time"`
}

type RevenueReport struct {
	Date        string  `json:"date"`
	Revenue     float64 `json:"revenue"`
	OrdersCount int64   `json:"orders_count"`
}

type VehicleTypeCount struct {
	VehicleType string `json:"vehicle_type"`
	Count       int64  `json:"count"`
}

type OrderAnalytics struct {
	Period              string             `json:"period"`
	TotalOrders         int64              `json:"total_orders"`
	CompletedOrders     int64              `json:"completed_orders"`
	CancelledOrders     int64              `json:"cancelled_orders"`
	AveragePrice        float64            `json:"average_price"`
	PopularVehicleTypes []VehicleTypeCount `json:"popular_vehicle_types"`
}

type DeliveryTimes struct {
	AveragePickupTime   float64 `json:"average_pickup_time"`
	AverageDeliveryTime float64 `json:"average_delivery_time"`
	OnTimeDeliveryRate  float64 `json:"on_time_delivery_rate"`
}

type CourierPerformance struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	TotalDeliveries int64   `json:"total_deliveries"`
	Rating          float64 `json:"rating"`
	Status          string  `json:"status"`
}

type PerformanceMetrics struct {
	DeliveryTimes        DeliveryTimes        `json:"delivery_times"`
	TopCouriers          []CourierPerformance `json:"top_couriers"`
	CompletionRate       float64              `json:"completion_rate"`
	TotalOrdersProcessed int64                `json:"total_orders_processed"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type CourierCreate struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	VehicleType  string  `json:"vehicle_type"`
	LicensePlate *string `json:"license_plate,omitempty"`
	Status       *string `json:"status,omitempty"`
}

type CourierUpdate struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	VehicleType  *string `json:"vehicle_type,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
	Status       *string `json:"status,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type Courier struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	VehicleType     string    `json:"vehicle_type"`
	LicensePlate    string    `json:"license_plate"`
	Status          string    `json:"status"`
	Rating          float64   `json:"rating"`
	TotalDeliveries int64     `json:"total_deliveries"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
