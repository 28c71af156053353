package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidAddress        = errors.New("invalid address")

	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrConflict         = errors.New("resource already exists")
)
