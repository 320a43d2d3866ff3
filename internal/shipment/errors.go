package shipment

import "errors"

var (
	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrDuplicateTrackingID = errors.New("tracking id already exists")
	ErrInvalidType         = errors.New("type must be Inbound or Outbound")
	ErrInvalidStatus       = errors.New("invalid shipment status")
	ErrInvalidProgress     = errors.New("progress must be between 0 and 100")
	ErrNegativeQuantity    = errors.New("items count and value must not be negative")
)
