//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Insert(ctx context.Context, orderEntity entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	UpdateByID(ctx context.Context, id string, fn func(*entities.Order) error) (*entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}
