package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"service/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// CreateOrder registers a new pending order for the customer. The customerId
// format is checked by the transport-level validator before this is called.
func (s *Service) CreateOrder(ctx context.Context, customerID string) (string, error) {
	orderEntity := entities.Order{
		OrderID:    uuid.NewString(),
		CustomerID: customerID,
		Status:     entities.OrderPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repository.Insert(ctx, orderEntity); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	return orderEntity.OrderID, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

// UpdateOrder applies a partial update to a single order. The existence check
// runs before the field allow-list check. A status change is applied only
// while the order is still pending; for any other current status the update
// succeeds but leaves the status untouched.
func (s *Service) UpdateOrder(ctx context.Context, orderID string, update entities.OrderUpdate) (*entities.Order, error) {
	orderEntity, err := s.repository.UpdateByID(ctx, orderID, func(o *entities.Order) error {
		if len(update.UnknownFields) > 0 {
			return fmt.Errorf("%s: %w", strings.Join(update.UnknownFields, ", "), ErrFieldNotUpdatable)
		}

		if update.Status != nil && o.Status == entities.OrderPending {
			o.Status = *update.Status
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	return orderEntity, nil
}

// SearchOrders filters by exact customerId and status match, counts the full
// matching set, then slices [offset, offset+limit) in insertion order.
// Defaults and bounds for offset/limit are the validator's concern.
func (s *Service) SearchOrders(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error) {
	orderEntities, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}

	matched := make([]entities.Order, 0, len(orderEntities))
	for _, orderEntity := range orderEntities {
		if filter.CustomerID != nil && orderEntity.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Status != nil && orderEntity.Status != *filter.Status {
			continue
		}
		matched = append(matched, orderEntity)
	}

	total := len(matched)

	start := filter.Offset
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	return &entities.OrderPage{
		Orders: matched[start:end],
		Total:  total,
		Offset: filter.Offset,
		Limit:  filter.Limit,
	}, nil
}
