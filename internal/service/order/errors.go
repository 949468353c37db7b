package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrFieldNotUpdatable = errors.New("field cannot be updated")
)
