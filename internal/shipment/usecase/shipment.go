package usecase

import (
	"context"
	"strings"

	"nexstock/internal/shipment"
	repo "nexstock/internal/shipment/repository"
)

const maxTrackingIDAttempts = 5

// Create adds a shipment. A blank tracking id is generated as TRK-NNNNNN.
// Type defaults to Inbound and status to Pending.
func (uc *implUseCase) Create(ctx context.Context, input shipment.CreateInput) (shipment.Shipment, error) {
	s := shipment.Shipment{
		TrackingID:        strings.TrimSpace(input.TrackingID),
		Type:              input.Type,
		Status:            input.Status,
		Origin:            strings.TrimSpace(input.Origin),
		Destination:       strings.TrimSpace(input.Destination),
		Carrier:           strings.TrimSpace(input.Carrier),
		EstimatedDelivery: input.EstimatedDelivery,
		ItemsCount:        input.ItemsCount,
		Value:             input.Value,
		Progress:          input.Progress,
	}
	if s.Type == "" {
		s.Type = shipment.TypeInbound
	}
	if s.Status == "" {
		s.Status = shipment.StatusPending
	}
	if err := validate(s); err != nil {
		return shipment.Shipment{}, err
	}

	if s.TrackingID == "" {
		id, err := uc.newTrackingID(ctx)
		if err != nil {
			return shipment.Shipment{}, err
		}
		s.TrackingID = id
	} else if err := uc.ensureUniqueTrackingID(ctx, s.TrackingID, ""); err != nil {
		return shipment.Shipment{}, err
	}

	created, err := uc.repo.CreateShipment(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateShipment: %v", err)
		return shipment.Shipment{}, err
	}
	return created, nil
}

func (uc *implUseCase) List(ctx context.Context, input shipment.ListInput) ([]shipment.Shipment, error) {
	if input.Type != "" && !input.Type.Valid() {
		return nil, shipment.ErrInvalidType
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, shipment.ErrInvalidStatus
	}

	shipments, err := uc.repo.ListShipments(ctx, repo.ListOptions{
		Search: input.Search,
		Type:   input.Type,
		Status: input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListShipments: %v", err)
		return nil, err
	}
	return shipments, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (shipment.Shipment, error) {
	s, err := uc.repo.GetOneShipment(ctx, repo.GetOneOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneShipment: %v", err)
		return shipment.Shipment{}, err
	}
	if s.ID == "" {
		return shipment.Shipment{}, shipment.ErrShipmentNotFound
	}
	return s, nil
}

func (uc *implUseCase) Update(ctx context.Context, input shipment.UpdateInput) (shipment.Shipment, error) {
	s, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return shipment.Shipment{}, err
	}
	previousTrackingID := s.TrackingID

	s.TrackingID = strings.TrimSpace(coalesce(input.TrackingID, s.TrackingID))
	s.Type = coalesce(input.Type, s.Type)
	s.Status = coalesce(input.Status, s.Status)
	s.Origin = coalesce(input.Origin, s.Origin)
	s.Destination = coalesce(input.Destination, s.Destination)
	s.Carrier = coalesce(input.Carrier, s.Carrier)
	s.EstimatedDelivery = coalesce(input.EstimatedDelivery, s.EstimatedDelivery)
	s.ItemsCount = coalesce(input.ItemsCount, s.ItemsCount)
	s.Value = coalesce(input.Value, s.Value)
	s.Progress = coalesce(input.Progress, s.Progress)
	if err := validate(s); err != nil {
		return shipment.Shipment{}, err
	}

	if s.TrackingID == "" {
		s.TrackingID = previousTrackingID
	} else if !strings.EqualFold(s.TrackingID, previousTrackingID) {
		if err := uc.ensureUniqueTrackingID(ctx, s.TrackingID, s.ID); err != nil {
			return shipment.Shipment{}, err
		}
	}

	updated, err := uc.repo.UpdateShipment(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateShipment: %v", err)
		return shipment.Shipment{}, err
	}
	if updated.ID == "" {
		return shipment.Shipment{}, shipment.ErrShipmentNotFound
	}
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteShipment(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteShipment: %v", err)
		return err
	}
	return nil
}

// Stats counts in-transit, delayed and delivered shipments.
func (uc *implUseCase) Stats(ctx context.Context) (shipment.Stats, error) {
	all, err := uc.repo.ListShipments(ctx, repo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListShipments: %v", err)
		return shipment.Stats{}, err
	}

	var stats shipment.Stats
	for _, s := range all {
		switch s.Status {
		case shipment.StatusInTransit:
			stats.InTransit++
		case shipment.StatusDelayed:
			stats.Delayed++
		case shipment.StatusDelivered:
			stats.Delivered++
		}
	}
	return stats, nil
}
