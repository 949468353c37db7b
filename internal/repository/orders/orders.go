package orders

import (
	"context"
	"sync"

	"service/internal/entities"
	"service/internal/service/order"
)

// Repository is an in-memory order store. Records are kept in insertion
// order and every method holds the lock for its whole duration, so a
// read-modify-write through UpdateByID cannot interleave with another
// writer on the same record.
type Repository struct {
	mu     sync.RWMutex
	orders []entities.Order
}

func New(seed ...entities.Order) *Repository {
	return &Repository{
		orders: append([]entities.Order(nil), seed...),
	}
}

func (r *Repository) Insert(_ context.Context, orderEntity entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, orderEntity)
	return nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].OrderID == id {
			orderEntity := r.orders[i]
			return &orderEntity, nil
		}
	}

	return nil, order.ErrOrderNotFound
}

// UpdateByID runs fn on a copy of the stored record under the write lock.
// The record is only replaced when fn returns nil; an fn error propagates
// unchanged and leaves the store untouched.
func (r *Repository) UpdateByID(_ context.Context, id string, fn func(*entities.Order) error) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].OrderID == id {
			orderEntity := r.orders[i]
			if err := fn(&orderEntity); err != nil {
				return nil, err
			}
			r.orders[i] = orderEntity
			return &orderEntity, nil
		}
	}

	return nil, order.ErrOrderNotFound
}

func (r *Repository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entities.Order(nil), r.orders...), nil
}
