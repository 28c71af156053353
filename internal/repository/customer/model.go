package customer

import "time"

type CustomerDB struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Company     *string
	TotalOrders int64
	IsActive    bool
	CreatedAt   time.Time
}
