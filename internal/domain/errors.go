package domain

import "errors"

var (
	// ErrNotFound indicates the referenced entity does not exist on the backend.
	ErrNotFound = errors.New("not found")
	// ErrInvalid indicates the backend rejected the request payload.
	ErrInvalid = errors.New("invalid request")
	// ErrUnavailable indicates a transport failure or a generic backend error.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrEmptyCart indicates an order submission with no line items.
	ErrEmptyCart = errors.New("cart is empty")
)
