package entities

import "time"

// Customer is upserted lazily by email on order creation.
type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Company     *string
	TotalOrders int64
	IsActive    bool
	CreatedAt   time.Time
}

type CustomerModify struct {
	ID       *string
	Name     *string
	Email    *string
	Phone    *string
	Company  *string
	IsActive *bool
}
