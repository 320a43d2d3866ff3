package catalog

import "errors"

var (
	ErrItemNotFound      = errors.New("product not found")
	ErrDuplicateSKU      = errors.New("product sku already exists")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrNegativeQuantity  = errors.New("price, stock and min stock must not be negative")
	ErrWarehouseNotFound = errors.New("warehouse not found")
)
