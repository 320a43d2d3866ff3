package shipment

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Shipment, error)
	List(ctx context.Context, input ListInput) ([]Shipment, error)
	Detail(ctx context.Context, id string) (Shipment, error)
	Update(ctx context.Context, input UpdateInput) (Shipment, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (Stats, error)
}
