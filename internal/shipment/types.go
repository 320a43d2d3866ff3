package shipment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeInbound  Type = "Inbound"
	TypeOutbound Type = "Outbound"
)

func (t Type) Valid() bool {
	return t == TypeInbound || t == TypeOutbound
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusInTransit Status = "In Transit"
	StatusDelivered Status = "Delivered"
	StatusDelayed   Status = "Delayed"
	StatusCustoms   Status = "Customs"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusDelayed, StatusCustoms:
		return true
	}
	return false
}

// --- Domain Model ---

type Shipment struct {
	ID                string
	TrackingID        string
	Type              Type
	Status            Status
	Origin            string
	Destination       string
	Carrier           string
	EstimatedDelivery time.Time
	ItemsCount        int
	Value             decimal.Decimal
	Progress          int
}

// --- UseCase Inputs ---

type CreateInput struct {
	TrackingID        string
	Type              Type
	Status            Status
	Origin            string
	Destination       string
	Carrier           string
	EstimatedDelivery time.Time
	ItemsCount        int
	Value             decimal.Decimal
	Progress          int
}

type ListInput struct {
	Search string
	Type   Type
	Status Status
}

// UpdateInput is a partial update; nil fields keep their current value.
type UpdateInput struct {
	ID                string
	TrackingID        *string
	Type              *Type
	Status            *Status
	Origin            *string
	Destination       *string
	Carrier           *string
	EstimatedDelivery *time.Time
	ItemsCount        *int
	Value             *decimal.Decimal
	Progress          *int
}

// --- UseCase Outputs ---

type Stats struct {
	InTransit int
	Delayed   int
	Delivered int
}
