package repository

import (
	"context"

	"nexstock/internal/payroll"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateRecord(ctx context.Context, r payroll.Record) (payroll.Record, error)
	// GetOneRecord returns a zero-value Record when nothing matches.
	GetOneRecord(ctx context.Context, opt GetOneOptions) (payroll.Record, error)
	ListRecords(ctx context.Context, opt ListOptions) ([]payroll.Record, error)
	UpdateRecord(ctx context.Context, r payroll.Record) (payroll.Record, error)
}

// GetOneOptions looks a record up by ID, or by StaffID and Month together.
type GetOneOptions struct {
	ID      string
	StaffID string
	Month   string
}

type ListOptions struct {
	Month  string
	Search string
}
