package customer

import (
	"geleverd/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	return &entities.Customer{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		TotalOrders: c.TotalOrders,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func FromDomain(customer *entities.Customer) *CustomerDB {
	if customer == nil {
		return nil
	}

	return &CustomerDB{
		ID:          customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		Phone:       customer.Phone,
		Company:     customer.Company,
		TotalOrders: customer.TotalOrders,
		IsActive:    customer.IsActive,
		CreatedAt:   customer.CreatedAt,
	}
}
