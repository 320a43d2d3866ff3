package memory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"nexstock/internal/shipment"
	repo "nexstock/internal/shipment/repository"
	"nexstock/pkg/memstore"
)

func (r *implRepository) CreateShipment(ctx context.Context, s shipment.Shipment) (shipment.Shipment, error) {
	s.ID = uuid.NewString()
	if err := r.shipments.Insert(s); err != nil {
		r.l.Errorf(ctx, "shipment/repository/memory.CreateShipment: %v", err)
		return shipment.Shipment{}, repo.ErrFailedToInsert
	}
	return s, nil
}

func (r *implRepository) GetOneShipment(ctx context.Context, opt repo.GetOneOptions) (shipment.Shipment, error) {
	if opt.ID != "" {
		s, _ := r.shipments.Get(opt.ID)
		return s, nil
	}
	if opt.TrackingID != "" {
		s, _ := r.shipments.Find(func(s shipment.Shipment) bool {
			return strings.EqualFold(s.TrackingID, opt.TrackingID)
		})
		return s, nil
	}
	return shipment.Shipment{}, nil
}

// ListShipments matches search against tracking id, origin, destination and carrier.
func (r *implRepository) ListShipments(ctx context.Context, opt repo.ListOptions) ([]shipment.Shipment, error) {
	search := strings.ToLower(strings.TrimSpace(opt.Search))
	return r.shipments.List(func(s shipment.Shipment) bool {
		if opt.Type != "" && s.Type != opt.Type {
			return false
		}
		if opt.Status != "" && s.Status != opt.Status {
			return false
		}
		if search == "" {
			return true
		}
		for _, field := range []string{s.TrackingID, s.Origin, s.Destination, s.Carrier} {
			if strings.Contains(strings.ToLower(field), search) {
				return true
			}
		}
		return false
	}), nil
}

func (r *implRepository) UpdateShipment(ctx context.Context, s shipment.Shipment) (shipment.Shipment, error) {
	updated, err := r.shipments.Update(s.ID, func(shipment.Shipment) (shipment.Shipment, error) {
		return s, nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return shipment.Shipment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "shipment/repository/memory.UpdateShipment: %v", err)
		return shipment.Shipment{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

func (r *implRepository) DeleteShipment(ctx context.Context, id string) error {
	if err := r.shipments.Delete(id); err != nil && !errors.Is(err, memstore.ErrNotFound) {
		r.l.Errorf(ctx, "shipment/repository/memory.DeleteShipment: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
