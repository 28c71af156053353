//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"geleverd/internal/entities"
)

type OrderRepository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customerEntity entities.Customer) (*entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entities.Customer, error)
	IncrementTotalOrders(ctx context.Context, id string) error
}

type CourierRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Courier, error)
}

type PricingService interface {
	CalculatePrice(ctx context.Context, vehicleType entities.VehicleType, pickupPostalCode, deliveryPostalCode string) (*entities.PriceCalculation, error)
}
