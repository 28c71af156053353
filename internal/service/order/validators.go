package order

import (
	"strings"

	"geleverd/internal/entities"
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidAddress(address entities.Address) bool {
	return strings.TrimSpace(address.Street) != "" &&
		strings.TrimSpace(address.City) != "" &&
		strings.TrimSpace(address.PostalCode) != ""
}

func isValidStatus(status string) bool {
	switch entities.OrderStatusType(status) {
	case entities.OrderPending, entities.OrderConfirmed, entities.OrderPickedUp,
		entities.OrderInTransit, entities.OrderDelivered, entities.OrderCancelled:
		return true
	default:
		return false
	}
}
