package repository

import (
	"context"

	"nexstock/internal/shipment"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateShipment(ctx context.Context, s shipment.Shipment) (shipment.Shipment, error)
	// GetOneShipment returns a zero-value Shipment when nothing matches.
	GetOneShipment(ctx context.Context, opt GetOneOptions) (shipment.Shipment, error)
	ListShipments(ctx context.Context, opt ListOptions) ([]shipment.Shipment, error)
	UpdateShipment(ctx context.Context, s shipment.Shipment) (shipment.Shipment, error)
	DeleteShipment(ctx context.Context, id string) error
}

type GetOneOptions struct {
	ID         string
	TrackingID string
}

type ListOptions struct {
	Search string
	Type   shipment.Type
	Status shipment.Status
}
