package order

import (
	"geleverd/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:             o.ID,
		TrackingNumber: o.TrackingNumber,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		CustomerPhone:  o.CustomerPhone,
		PickupAddress: entities.Address{
			Street:     o.PickupStreet,
			City:       o.PickupCity,
			PostalCode: o.PickupPostalCode,
			Country:    o.PickupCountry,
		},
		DeliveryAddress: entities.Address{
			Street:     o.DeliveryStreet,
			City:       o.DeliveryCity,
			PostalCode: o.DeliveryPostalCode,
			Country:    o.DeliveryCountry,
		},
		VehicleType:         entities.VehicleType(o.VehicleType),
		Status:              entities.OrderStatusType(o.Status),
		Price:               o.Price,
		Distance:            o.Distance,
		CourierID:           o.CourierID,
		CourierName:         o.CourierName,
		PickupTime:          o.PickupTime,
		DeliveryTime:        o.DeliveryTime,
		EstimatedDelivery:   o.EstimatedDelivery,
		SpecialInstructions: o.SpecialInstructions,
		Notes:               o.Notes,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func FromDomain(order *entities.Order) *OrderDB {
	if order == nil {
		return nil
	}

	return &OrderDB{
		ID:                  order.ID,
		TrackingNumber:      order.TrackingNumber,
		CustomerID:          order.CustomerID,
		CustomerName:        order.CustomerName,
		CustomerEmail:       order.CustomerEmail,
		CustomerPhone:       order.CustomerPhone,
		PickupStreet:        order.PickupAddress.Street,
		PickupCity:          order.PickupAddress.City,
		PickupPostalCode:    order.PickupAddress.PostalCode,
		PickupCountry:       order.PickupAddress.Country,
		DeliveryStreet:      order.DeliveryAddress.Street,
		DeliveryCity:        order.DeliveryAddress.City,
		DeliveryPostalCode:  order.DeliveryAddress.PostalCode,
		DeliveryCountry:     order.DeliveryAddress.Country,
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

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		ID:                orderModify.ID,
		CourierID:         orderModify.CourierID,
		CourierName:       orderModify.CourierName,
		PickupTime:        orderModify.PickupTime,
		DeliveryTime:      orderModify.DeliveryTime,
		EstimatedDelivery: orderModify.EstimatedDelivery,
		Notes:             orderModify.Notes,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func ToDomainVehicleTypeCounts(countsDB []VehicleTypeCountDB) []entities.VehicleTypeCount {
	if len(countsDB) == 0 {
		return []entities.VehicleTypeCount{}
	}

	result := make([]entities.VehicleTypeCount, len(countsDB))
	for i, countDB := range countsDB {
		result[i] = entities.VehicleTypeCount{
			VehicleType: entities.VehicleType(countDB.VehicleType),
			Count:       countDB.Count,
		}
	}
	return result
}
