package orders

import (
	"time"

	"github.com/google/uuid"
	"service/internal/entities"
)

// Fixtures returns the development seed data: one order still pending and
// one already delivered. This is fixture data, not persistence.
func Fixtures() []entities.Order {
	now := time.Now().UTC()

	return []entities.Order{
		{
			OrderID:    uuid.NewString(),
			CustomerID: uuid.NewString(),
			Status:     entities.OrderPending,
			CreatedAt:  now,
		},
		{
			OrderID:    uuid.NewString(),
			CustomerID: uuid.NewString(),
			Status:     entities.OrderDelivered,
			CreatedAt:  now,
		},
	}
}
