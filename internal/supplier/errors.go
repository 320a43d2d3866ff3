package supplier

import "errors"

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus    = errors.New("status must be Active, Inactive or Pending")
)
