package courier

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"geleverd/internal/entities"
)

type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

// CreateCourier registers a courier. New couriers start offline so the
// dispatcher never assigns work to someone who has not checked in.
func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.Name == nil ||
		courierModify.Email == nil ||
		courierModify.Phone == nil ||
		courierModify.VehicleType == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidEmail(*courierModify.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if !courierModify.VehicleType.Valid() {
		return nil, ErrInvalidVehicleType
	}

	status := entities.DefaultCourierStatus
	if courierModify.Status != nil {
		if !isValidStatus(courierModify.Status.String()) {
			return nil, ErrInvalidStatus
		}
		status = *courierModify.Status
	}

	licensePlate := ""
	if courierModify.LicensePlate != nil {
		licensePlate = *courierModify.LicensePlate
	}

	created, err := s.repository.Create(ctx, entities.Courier{
		ID:           uuid.NewString(),
		Name:         *courierModify.Name,
		Email:        *courierModify.Email,
		Phone:        *courierModify.Phone,
		VehicleType:  *courierModify.VehicleType,
		LicensePlate: licensePlate,
		Status:       status,
		Rating:       5.0,
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}

	return created, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}

	if courierModify.Name == nil &&
		courierModify.Email == nil &&
		courierModify.Phone == nil &&
		courierModify.VehicleType == nil &&
		courierModify.LicensePlate == nil &&
		courierModify.Status == nil &&
		courierModify.IsActive == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if courierModify.Email != nil && !isValidEmail(*courierModify.Email) {
		return nil, ErrInvalidEmail
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.VehicleType != nil && !courierModify.VehicleType.Valid() {
		return nil, ErrInvalidVehicleType
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return updated, nil
}

func (s *Courier) GetCourier(ctx context.Context, id string) (*entities.Courier, error) {
	courierEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courierEntity, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}
