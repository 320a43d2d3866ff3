package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert shipment")
	ErrFailedToUpdate = errors.New("failed to update shipment")
	ErrFailedToDelete = errors.New("failed to delete shipment")
)
