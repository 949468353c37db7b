package order_get

import (
	"github.com/google/uuid"
	"service/internal/pkg/httperr"
)

func validateOrderID(orderID string) []httperr.Issue {
	if uuid.Validate(orderID) != nil {
		return []httperr.Issue{{Field: "orderId", Message: "orderId must be a valid UUID"}}
	}
	return nil
}
