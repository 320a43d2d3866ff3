package usecase

import (
	"context"

	"nexstock/internal/shipment"
	repo "nexstock/internal/shipment/repository"
)

func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func validate(s shipment.Shipment) error {
	if !s.Type.Valid() {
		return shipment.ErrInvalidType
	}
	if !s.Status.Valid() {
		return shipment.ErrInvalidStatus
	}
	if s.Progress < 0 || s.Progress > 100 {
		return shipment.ErrInvalidProgress
	}
	if s.ItemsCount < 0 || s.Value.IsNegative() {
		return shipment.ErrNegativeQuantity
	}
	return nil
}

func (uc *implUseCase) ensureUniqueTrackingID(ctx context.Context, trackingID, exceptID string) error {
	existing, err := uc.repo.GetOneShipment(ctx, repo.GetOneOptions{TrackingID: trackingID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureUniqueTrackingID GetOneShipment: %v", err)
		return err
	}
	if existing.ID != "" && existing.ID != exceptID {
		return shipment.ErrDuplicateTrackingID
	}
	return nil
}

// newTrackingID draws tracking ids until one is unused.
func (uc *implUseCase) newTrackingID(ctx context.Context) (string, error) {
	var err error
	for range maxTrackingIDAttempts {
		id := uc.trackingID()
		if err = uc.ensureUniqueTrackingID(ctx, id, ""); err == nil {
			return id, nil
		}
	}
	uc.l.Errorf(ctx, "uc.newTrackingID: %v", err)
	return "", err
}
