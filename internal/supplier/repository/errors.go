package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert supplier")
	ErrFailedToUpdate = errors.New("failed to update supplier")
	ErrFailedToDelete = errors.New("failed to delete supplier")
)
