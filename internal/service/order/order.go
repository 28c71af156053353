package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"geleverd/internal/entities"
	"geleverd/internal/service/courier"
)

const (
	defaultListLimit = 50
	maxListLimit     = 1000

	trackingNumberPrefix = "TR"

	// estimatedDeliveryWindow is promised to the customer at creation
	// time; couriers refine it later via updates.
	estimatedDeliveryWindow = 2 * time.Hour
)

type Order struct {
	orders    OrderRepository
	customers CustomerRepository
	couriers  CourierRepository
	pricing   PricingService
}

func New(orders OrderRepository, customers CustomerRepository, couriers CourierRepository, pricing PricingService) *Order {
	return &Order{
		orders:    orders,
		customers: customers,
		couriers:  couriers,
		pricing:   pricing,
	}
}

// CreateOrder prices the draft, upserts the customer by email and
// stores the order. The customer upsert and the order insert are
// deliberately not transactional: a lost counter bump is acceptable,
// a lost order is not.
func (s *Order) CreateOrder(ctx context.Context, draft entities.Order) (*entities.Order, error) {
	if strings.TrimSpace(draft.CustomerName) == "" ||
		strings.TrimSpace(draft.CustomerEmail) == "" ||
		strings.TrimSpace(draft.CustomerPhone) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(draft.CustomerEmail) {
		return nil, ErrInvalidEmail
	}
	if !isValidAddress(draft.PickupAddress) || !isValidAddress(draft.DeliveryAddress) {
		return nil, ErrInvalidAddress
	}

	if !draft.VehicleType.Valid() {
		draft.VehicleType = entities.DefaultVehicleType
	}
	if draft.PickupAddress.Country == "" {
		draft.PickupAddress.Country = entities.DefaultCountry
	}
	if draft.DeliveryAddress.Country == "" {
		draft.DeliveryAddress.Country = entities.DefaultCountry
	}

	quote, err := s.pricing.CalculatePrice(ctx, draft.VehicleType, draft.PickupAddress.PostalCode, draft.DeliveryAddress.PostalCode)
	if err != nil {
		return nil, fmt.Errorf("price order: %w", err)
	}

	customerID, err := s.upsertCustomer(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	estimatedDelivery := time.Now().UTC().Add(estimatedDeliveryWindow)

	draft.ID = uuid.NewString()
	draft.TrackingNumber = newTrackingNumber()
	draft.CustomerID = customerID
	draft.Status = entities.OrderPending
	draft.Price = quote.TotalPrice
	draft.Distance = quote.Distance
	draft.EstimatedDelivery = &estimatedDelivery

	created, err := s.orders.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	orderEntity, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) GetOrderByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Order, error) {
	orderEntity, err := s.orders.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get order by tracking number: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Status != nil && !isValidStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateOrder applies a partial update. An update that names no fields
// matches nothing and reports not found, mirroring the delete of a
// missing order.
func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}

	if orderModify.Status == nil &&
		orderModify.CourierID == nil &&
		orderModify.PickupTime == nil &&
		orderModify.DeliveryTime == nil &&
		orderModify.EstimatedDelivery == nil &&
		orderModify.Notes == nil {
		return nil, ErrOrderNotFound
	}

	if orderModify.Status != nil && !isValidStatus(orderModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	if orderModify.CourierID != nil {
		assigned, err := s.couriers.GetByID(ctx, *orderModify.CourierID)
		switch {
		case err == nil:
			orderModify.CourierName = &assigned.Name
		case errors.Is(err, courier.ErrCourierNotFound):
			// Keep the raw id, the courier may be registered later.
		default:
			return nil, fmt.Errorf("resolve courier: %w", err)
		}
	}

	updated, err := s.orders.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return updated, nil
}

func (s *Order) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

func (s *Order) upsertCustomer(ctx context.Context, draft entities.Order) (string, error) {
	existing, err := s.customers.GetByEmail(ctx, draft.CustomerEmail)
	if err == nil {
		if err := s.customers.IncrementTotalOrders(ctx, existing.ID); err != nil {
			return "", err
		}
		return existing.ID, nil
	}
	if !errors.Is(err, ErrCustomerNotFound) {
		return "", err
	}

	created, err := s.customers.Create(ctx, entities.Customer{
		ID:          uuid.NewString(),
		Name:        draft.CustomerName,
		Email:       draft.CustomerEmail,
		Phone:       draft.CustomerPhone,
		TotalOrders: 1,
		IsActive:    true,
	})
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

// newTrackingNumber builds codes like TR3F9A1C from the hex form of a
// fresh UUID.
func newTrackingNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return trackingNumberPrefix + strings.ToUpper(hex[:6])
}
