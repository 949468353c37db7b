package entities

import (
	"time"
)

type Order struct {
	OrderID    string
	CustomerID string
	Status     OrderStatus
	CreatedAt  time.Time
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderUpdate is a partial order modification. Status is the only updatable
// field; any other key found in the payload is carried in UnknownFields so
// the service can reject it after the existence check.
type OrderUpdate struct {
	Status        *OrderStatus
	UnknownFields []string
}

type OrderFilter struct {
	CustomerID *string
	Status     *OrderStatus
	Offset     int
	Limit      int
}

type OrderPage struct {
	Orders []Order
	Total  int
	Offset int
	Limit  int
}
