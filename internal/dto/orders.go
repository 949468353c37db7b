// Package dto holds the transport-level request and response shapes shared
// by the REST handlers.
package dto

import "time"

type OrderCreate struct {
	CustomerID string `json:"customerId"`
}

type OrderCreateResponse struct {
	OrderID string `json:"orderId"`
}

type Order struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderSearchResult struct {
	Data   []Order `json:"data"`
	Total  int     `json:"total"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
