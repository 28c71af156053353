package dto

import (
	"geleverd/internal/entities"
)

func AddressFromEntity(address entities.Address) Address {
	return Address{
		Street:     address.Street,
		City:       address.City,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
}

func AddressToEntity(address Address) entities.Address {
	return entities.Address{
		Street:     address.Street,
		City:       address.City,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
}

func OrderFromEntity(order *entities.Order) Order {
	return Order{
		ID:                  order.ID,
		TrackingNumber:      order.TrackingNumber,
		CustomerName:        order.CustomerName,
		CustomerEmail:       order.CustomerEmail,
		CustomerPhone:       order.CustomerPhone,
		PickupAddress:       AddressFromEntity(order.PickupAddress),
		DeliveryAddress:     AddressFromEntity(order.DeliveryAddress),
		VehicleType:         order.VehicleType.String(),
		Status:              order.Status.String(),
		Price:               order.Price,
		Distance:            order.Distance,
		CourierID:           order.CourierID,
		CourierName:         order.CourierName,
		PickupTime:          order.PickupTime,
		DeliveryTime:        order.DeliveryTime,
		EstimatedDelivery:   order.EstimatedDelivery,
		SpecialInstructions: order.SpecialInstructions,
		Notes:               order.Notes,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}
}

func OrdersFromEntities(orders []entities.Order) []Order {
	result := make([]Order, len(orders))
	for i := range orders {
		result[i] = OrderFromEntity(&orders[i])
	}
	return result
}

func CourierFromEntity(courier *entities.Courier) Courier {
	return Courier{
		ID:              courier.ID,
		Name:            courier.Name,
		Email:           courier.Email,
		Phone:           courier.Phone,
		VehicleType:     courier.VehicleType.String(),
		LicensePlate:    courier.LicensePlate,
		Status:          courier.Status.String(),
		Rating:          courier.Rating,
		TotalDeliveries: courier.TotalDeliveries,
		IsActive:        courier.IsActive,
		CreatedAt:       courier.CreatedAt,
		UpdatedAt:       courier.UpdatedAt,
	}
}

func CouriersFromEntities(couriers []entities.Courier) []Courier {
	result := make([]Courier, len(couriers))
	for i := range couriers {
		result[i] = CourierFromEntity(&couriers[i])
	}
	return result
}

func AdminFromEntity(admin *entities.Admin) Admin {
	return Admin{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		Role:      admin.Role,
		LastLogin: admin.LastLogin,
		IsActive:  admin.IsActive,
		CreatedAt: admin.CreatedAt,
	}
}
